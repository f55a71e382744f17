package util

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// simpleEmailPattern only checks the local@domain.tld shape. Any Unicode
// space separator, vertical tab or BOM counts as whitespace.
var simpleEmailPattern = regexp.MustCompile(`^[^\s\x{000B}\p{Z}\x{FEFF}@]+@[^\s\x{000B}\p{Z}\x{FEFF}@]+\.[^\s\x{000B}\p{Z}\x{FEFF}@]+$`)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldName)
	if err := validate.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return IsSimpleEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// fieldName reports fields by their json name, then yaml name, so messages
// match what the client or operator actually typed.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "yaml"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsSimpleEmail(email string) bool {
	return simpleEmailPattern.MatchString(email)
}

// FailedFields returns the names of fields that failed the given tag, in
// struct declaration order.
func FailedFields(err error, tag string) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var fields []string
	for _, fieldError := range validationErrors {
		if fieldError.Tag() == tag {
			fields = append(fields, fieldError.Field())
		}
	}
	return fields
}

// MissingFields returns the names of required fields left empty.
func MissingFields(err error) []string {
	return FailedFields(err, "required")
}

// GetValidationErrors formats validation errors into readable messages
func GetValidationErrors(err error) []string {
	var errors []string
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required", "required_with", "required_if":
				errors = append(errors, fieldError.Field()+" is required")
			case "email", "simple_email":
				errors = append(errors, fieldError.Field()+" must be a valid email")
			case "gt", "gte":
				errors = append(errors, fieldError.Field()+" must be at least "+fieldError.Param())
			case "lte":
				errors = append(errors, fieldError.Field()+" must be at most "+fieldError.Param())
			default:
				errors = append(errors, fieldError.Field()+" is invalid")
			}
		}
	}
	return errors
}
