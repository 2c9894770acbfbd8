package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// PasswordSpecialChars lists the characters that satisfy the special-character rule.
	PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`
	PasswordMinLength    = 8

	PasswordPolicyMessage = "Password must be at least 8 characters long and contain at least one special character."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("password_policy", func(fl validator.FieldLevel) bool {
		return PasswordMeetsPolicy(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	// uuid.Parse accepts upper-case hex, unlike the built-in uuid tag
	if err := v.RegisterValidation("uuid_any", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// PasswordMeetsPolicy reports whether password has at least PasswordMinLength
// characters, one of PasswordSpecialChars and no line terminators. Length is
// counted in UTF-16 code units, as browsers count it.
func PasswordMeetsPolicy(password string) bool {
	if len(utf16.Encode([]rune(password))) < PasswordMinLength {
		return false
	}
	if strings.ContainsAny(password, "\n\r\u2028\u2029") {
		return false
	}
	return strings.ContainsAny(password, PasswordSpecialChars)
}

// ValidateStruct returns field -> reason for every failed rule, or nil.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			errs[fe.Field()] = getErrorMessage(fe)
		}
		return errs
	}

	errs["_"] = err.Error()
	return errs
}

// HasTagError reports whether field failed with the given tag.
func HasTagError(data interface{}, field, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(validate.Struct(data), &validationErrors) {
		return false
	}
	for _, fe := range validationErrors {
		if fe.Field() == field && fe.Tag() == tag {
			return true
		}
	}
	return false
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid", "uuid_any":
		return "Must be a valid UUID"
	case "password_policy":
		return PasswordPolicyMessage
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

func FormatValidationErrors(errors map[string]string) string {
	var msgs []string
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
