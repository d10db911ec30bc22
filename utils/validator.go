package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"foodhub/models"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.IsCategory(fl.Field().String())
	})
	return v
}

// ValidationMessage turns the first validator failure into a user-facing
// sentence.
func ValidationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	fe := errs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please enter the food %s.", field)
	case "category":
		return fmt.Sprintf("Unknown category %q.", fe.Value())
	case "gte":
		return fmt.Sprintf("The food %s cannot be negative.", field)
	default:
		return fmt.Sprintf("Invalid %s.", field)
	}
}
