// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRe = regexp.MustCompile(`^[0-9\-\+\s\(\)]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidationError carries every violated field message of one payload.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Errors, "; ")
}

// NewValidationError returns nil when msgs is empty so callers can
// `if err := NewValidationError(msgs); err != nil`.
func NewValidationError(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Errors: msgs}
}

// NewValidator builds the shared validator: json field names in errors,
// plus the "phone" and "emailaddr" tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidationMessages converts validator errors into human readable messages.
// messages is keyed by "<jsonField>.<tag>"; element errors of slices
// ("specialties[2]") share the key of their parent field.
func ValidationMessages(err error, messages map[string]string) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		if err == nil {
			return nil
		}
		return []string{"Invalid input"}
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, "Path `"+field+"` is invalid ("+fe.Tag()+")")
	}
	return out
}
