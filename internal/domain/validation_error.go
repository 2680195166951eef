package domain

import "strings"

// FieldError un campo del payload que no cumple una restricción declarada.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError rechazo estructurado de una entrada: un FieldError por campo inválido.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
