package pkgvalidator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/lucy1234dev/server/internal/pkg/pkgerror"
)

const (
	// TagEmail checks an address against the shop's email pattern.
	TagEmail = "flower_email"
	// TagStrongPassword requires 8+ characters with upper, lower and digit.
	TagStrongPassword = "strong_password"
)

// Word characters include any Unicode letter or number, not just ASCII.
//
//nolint:gochecknoglobals // compiled once
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+$`)

// Validator checks structs (via `validate` tags) and single values.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	//nolint:errcheck // tags are static and valid
	v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	//nolint:errcheck // tags are static and valid
	v.RegisterValidation(TagStrongPassword, func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return &Validator{v: v}
}

// Validate checks a struct and returns a pkgerror validation error listing
// every failing field by its json name.
func (val *Validator) Validate(i any) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}

	var fieldsErr validator.ValidationErrors
	if !errors.As(err, &fieldsErr) {
		return pkgerror.NewInvalidInput(err)
	}

	fields := make(map[string]string, len(fieldsErr))
	for _, fe := range fieldsErr {
		fields[fe.Field()] = fe.Tag()
	}

	return pkgerror.NewInvalidFields(fields)
}

// Var checks a single value against a tag expression.
func (val *Validator) Var(field any, tag string) bool {
	return val.v.Var(field, tag) == nil
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsStrongPassword reports whether s has at least 8 characters including an
// ASCII upper-case letter, an ASCII lower-case letter and a digit.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}

	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}
