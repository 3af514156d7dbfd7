package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs go-playground/validator on a request payload.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
