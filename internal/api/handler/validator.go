package handler

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors reports field-level constraint violations from payload
// binding, keyed by JSON field name. The central error handler renders it as
// the fieldErrors map of the error envelope.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return "invalid fields: " + strings.Join(msgs, "; ")
}

// userValidator wraps go-playground/validator so Echo can call
// c.Validate(req).
type userValidator struct {
	v *validator.Validate
}

// NewValidator returns a validator ready to be assigned to
// echo.Echo.Validator. Violations are reported under the field's JSON name,
// not its Go name.
func NewValidator() *userValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &userValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (uv *userValidator) Validate(i any) error {
	err := uv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return &FieldErrors{Fields: fields}
	}
	return err
}

// fieldMessage converts a single violation into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}
