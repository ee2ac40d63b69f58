package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 on a DTO struct
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationErrorsToMap turns validator errors into a field → messages map
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fieldErr := range ve {
		out[fieldErr.Field()] = append(out[fieldErr.Field()], fieldErr.Tag())
	}
	return out
}
