package rules

import "github.com/go-playground/validator/v10"

var formatValidator = validator.New()

// URL accepts an empty value or an absolute http(s) URL.
func URL(field, value string) *FieldError {
	if value == "" {
		return nil
	}
	if err := formatValidator.Var(value, "http_url"); err != nil {
		return &FieldError{Field: field, Kind: ErrInvalidFormat, Message: "Enter a valid URL."}
	}
	return nil
}

func Email(field, value string) *FieldError {
	if err := formatValidator.Var(value, "required,email"); err != nil {
		return &FieldError{Field: field, Kind: ErrInvalidFormat, Message: "Enter a valid email address."}
	}
	return nil
}
