package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используются имена полей из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate проверяет структуру по тегам validate и возвращает ошибки по полям
// nil означает, что ошибок нет
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	details := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			details[field] = "this field is required"
		case "min", "gte":
			details[field] = "value must be at least " + fe.Param()
		case "max", "lte":
			details[field] = "value must be at most " + fe.Param()
		case "oneof":
			details[field] = "value must be one of: " + fe.Param()
		case "uuid", "uuid4":
			details[field] = "value must be a UUID"
		default:
			details[field] = "invalid value"
		}
	}
	return details
}
