// Package validation wraps go-playground/validator with the frontend's
// custom rules and adapts it to echo.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	ruPhonePattern = regexp.MustCompile(`^\+7\d{10}$`)
	otpCodePattern = regexp.MustCompile(`^\d{4}$`)
)

// Validator validates structs by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the ruphone, otpcode, role and
// clearable_email tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	_ = v.RegisterValidation("ruphone", func(fl validator.FieldLevel) bool {
		return ruPhonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("otpcode", func(fl validator.FieldLevel) bool {
		return otpCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})
	// An empty value clears the address, anything else must be an email.
	_ = v.RegisterValidation("clearable_email", func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())

		return value == "" || v.Var(value, "email") == nil
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Failures become VALIDATION_FAILED
// errors listing the offending fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field()+":"+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
}

// IsRUPhone reports whether phone is in normalized +7XXXXXXXXXX form.
func IsRUPhone(phone string) bool {
	return ruPhonePattern.MatchString(phone)
}

// IsOTPCode reports whether code is four digits.
func IsOTPCode(code string) bool {
	return otpCodePattern.MatchString(code)
}
