package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	usernamePattern = regexp.MustCompile(`^@\w{3,}$`)
)

const (
	msgUsername               = "Username must consist of @ followed by at least three alphanumericals"
	msgPasswordStrength       = "Password must contain an uppercase character, a lowercase character and a number"
	msgConfirmation           = "Confirmation does not match password."
	MsgInvalidCurrentPassword = "Password is invalid"
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	})
}

// PasswordIsStrong reports whether password has an ASCII uppercase letter, an
// ASCII lowercase letter and an ASCII digit.
func PasswordIsStrong(password string) bool {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case '0' <= r && r <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}

// fieldCheck is a standalone rule composed with struct validation at the call site.
type fieldCheck func(ve *errorvalues.ValidationError)

func passwordStrength(field, password string) fieldCheck {
	return func(ve *errorvalues.ValidationError) {
		if password != "" && !PasswordIsStrong(password) {
			ve.Add(field, msgPasswordStrength)
		}
	}
}

func passwordsMatch(field, password, confirmation string) fieldCheck {
	return func(ve *errorvalues.ValidationError) {
		if password != confirmation {
			ve.Add(field, msgConfirmation)
		}
	}
}

// validateForm runs struct tag rules on form followed by every extra check and
// collects all failures into one ValidationError.
func validateForm(form any, checks ...fieldCheck) error {
	ve := errorvalues.NewValidationError()
	err := validate.Struct(form)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.New("validation unexpected error: " + err.Error())
		}
		for _, fe := range fieldErrs {
			ve.Add(fe.Field(), fieldMessage(fe))
		}
	}
	for _, check := range checks {
		check(ve)
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "username":
		return msgUsername
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	default:
		return "Invalid value."
	}
}
