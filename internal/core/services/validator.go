package services

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var nameRegexp = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// NewValidator builds the validator used by the intake workflow, with the
// custom alphaspace rule the name field relies on (letters and spaces only).
func NewValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return nameRegexp.MatchString(fl.Field().String())
	})

	return validate
}
