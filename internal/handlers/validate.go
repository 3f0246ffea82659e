package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared struct validator for request payloads.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage turns the first field error into a client-facing
// message. Field names come from the struct, which matches the JSON shape
// closely enough for a form to map them back.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid request"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s is too long (max %s characters)", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
