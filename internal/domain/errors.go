package domain

import "errors"

// ErrInvalidInput error base de toda falla de validación de entrada.
var ErrInvalidInput = errors.New("entrada inválida")
