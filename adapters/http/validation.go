package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

var registerOnce sync.Once

// registerJSONFieldNames makes validator report fields by their JSON name so
// binding failures line up with the keys clients sent.
func registerJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

var errorMessageTemplates = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"url":      "Enter a valid URL.",
	"http_url": "Enter a valid URL.",
	"uuid":     "Must be a valid UUID.",
}

var errorMessageWithParam = map[string]string{
	"oneof": "Must be one of: %s.",
	"gte":   "Ensure this value is greater than or equal to %s.",
	"lte":   "Ensure this value is less than or equal to %s.",
	"max":   "Ensure this field has no more than %s characters.",
	"min":   "Ensure this field has at least %s characters.",
}

func translateError(fe validator.FieldError) string {
	if msg, ok := errorMessageTemplates[fe.Tag()]; ok {
		return msg
	}
	if tmpl, ok := errorMessageWithParam[fe.Tag()]; ok {
		param := fe.Param()
		if fe.Tag() == "oneof" {
			param = strings.ReplaceAll(param, " ", ", ")
		}
		return fmt.Sprintf(tmpl, param)
	}
	return fmt.Sprintf("Failed on the '%s' check.", fe.Tag())
}

// bindingError converts a gin binding failure into a 400 with per-field messages
// wherever the failing field can be identified.
func bindingError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], translateError(fe))
		}
		return apperror.NewValidation(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		msg := fmt.Sprintf("Invalid value: expected %s.", describeType(typeErr.Type))
		if typeErr.Type == reflect.TypeOf(Date{}) {
			msg = dateFormatMessage
		}
		return apperror.NewValidation(map[string][]string{typeErr.Field: {msg}})
	}

	if errors.Is(err, io.EOF) {
		return apperror.NewInvalidInput("request body is empty", err)
	}
	return apperror.NewInvalidInput("malformed JSON body", err)
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a different type"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Ptr:
		return describeType(t.Elem())
	default:
		return t.String()
	}
}
