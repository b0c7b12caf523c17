// Package validation evaluates declarative per-field rules against incoming
// request payloads and reports failures as a field -> messages mapping.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to the list of validation messages for it.
// It implements error so services can return it as a tagged failure kind.
type Errors map[string][]string

func (e Errors) Error() string {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return "validation failed"
}

// Add appends a message for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator instance with the custom cpf rule
// registered and field names resolved from json tags.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())

		// Report failures against the wire field name, not the Go field name.
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = instance.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return ValidCPF(fl.Field().String())
		})
	})
	return instance
}

// Check runs struct-tag validation on req and returns the collected field
// errors. An empty map means the payload passed every rule.
func Check(req any) Errors {
	errs := Errors{}

	if err := Validator().Struct(req); err != nil {
		var ferrs validator.ValidationErrors
		if errors.As(err, &ferrs) {
			for _, fe := range ferrs {
				errs.Add(fe.Field(), message(fe))
			}
		} else {
			errs.Add("request", err.Error())
		}
	}

	return errs
}

// message renders a human-readable message for a single rule failure.
func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")

	switch fe.Tag() {
	case "required":
		return "The " + field + " field is required."
	case "email":
		return "The " + field + " must be a valid email address."
	case "max":
		return "The " + field + " may not be greater than " + fe.Param() + " characters."
	case "min":
		return "The " + field + " must be at least " + fe.Param() + " characters."
	case "eqfield":
		return "The " + field + " confirmation does not match."
	case "cpf":
		return "The " + field + " is not a valid CPF."
	default:
		return "The " + field + " is invalid."
	}
}
