// Package validator envuelve go-playground/validator para devolver errores por campo
// con el nombre JSON del campo y un mensaje en español.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/jhoicas/BankClients-api/internal/domain"
)

// Validator valida structs con tags `validate`.
type Validator struct {
	v *playground.Validate
}

// New construye el validador. Los campos se reportan con su nombre JSON.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida s. Devuelve nil o *domain.ValidationError con un FieldError por campo.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validar: %w", err)
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath devuelve la ruta sin el nombre del struct raíz: "bankAccounts[0].number".
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "no puede estar vacío"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "debe tener como máximo " + fe.Param() + " elementos"
		}
		return "debe tener como máximo " + fe.Param() + " caracteres"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "debe tener al menos " + fe.Param() + " elementos"
		}
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "no es válido"
	}
}
