package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/dates"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve go-playground/validator con los tags del dominio.
type Validator struct {
	v    *validator.Validate
	sets map[string][]string
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Mensajes con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		return dates.Parse(fl.Field().String()).OK()
	})

	return &Validator{v: v, sets: map[string][]string{}}
}

// RegisterSet agrega un tag que acepta solo los valores dados (admite espacios).
func (x *Validator) RegisterSet(tag string, values []string) {
	allowed := make(map[string]struct{}, len(values))
	for _, s := range values {
		allowed[s] = struct{}{}
	}
	x.sets[tag] = append([]string(nil), values...)

	_ = x.v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})
}

// Struct valida y traduce a *apperr.ValidationError.
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	out := &apperr.ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		out.Fields[fieldPath(fe)] = x.message(fe)
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	// Namespace viene como "createAnimalInput.intake_date"; nos quedamos sin el struct raíz.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func (x *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " item(s)"
	case "calendar_date":
		return "must be YYYY-MM-DD"
	case "uuid", "uuid4":
		return "must be a valid id"
	}
	if values, ok := x.sets[fe.Tag()]; ok {
		return "must be one of: " + strings.Join(values, ", ")
	}
	return "failed " + fe.Tag()
}
