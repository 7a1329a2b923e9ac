package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// looseEmail is the form-level email check: something@something.something
// anywhere in the input, nothing stricter.
var looseEmail = regexp.MustCompile(`\S+@\S+\.\S+`)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return IsLooseEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		_, ok := ParsePositiveInt(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("step", func(fl validator.FieldLevel) bool {
		step, err := strconv.ParseInt(fl.Param(), 10, 64)
		if err != nil || step <= 0 {
			return false
		}
		return fl.Field().Int()%step == 0
	})
	return v
}

func IsLooseEmail(s string) bool {
	return looseEmail.MatchString(s)
}

// ParsePositiveInt accepts a base 10 integer greater than zero, ignoring
// surrounding whitespace.
func ParsePositiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// FieldMessages maps a json field name and the failing validation tag to the
// message shown next to that field.
type FieldMessages map[string]map[string]string

// Validate runs the struct's validate tags. Failures come back as a
// *ValidationError with at most one message per field.
func Validate(req any, messages FieldMessages) error {
	err := defaultValidator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		fields[field] = messages.lookup(field, fe.Tag())
	}
	return NewValidationError(fields)
}

func (m FieldMessages) lookup(field, tag string) string {
	if byTag, ok := m[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag["*"]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}
