package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	ellserrors "github.com/alexisbeaulieu97/ells/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator. Field
// errors are reported with their yaml key names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks every settings value against its allowed range.
func Validate(s *Settings) error {
	if s == nil {
		return ellserrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return ellserrors.NewValidationError("settings", err.Error(), err)
	}

	fe := ves[0]
	var msg string
	switch fe.Tag() {
	case "oneof":
		msg = fmt.Sprintf("must be one of %s, got %q", strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "required":
		msg = "must not be empty"
	case "log_level":
		msg = fmt.Sprintf("unknown log level %q", fe.Value())
	default:
		msg = fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
	return ellserrors.NewValidationError(fe.Field(), msg, err)
}
