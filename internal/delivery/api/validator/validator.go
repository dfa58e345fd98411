// Package validator adapts go-playground/validator to echo.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	"wearsync/internal/domain/entity"
	"wearsync/internal/domain/provider"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator with the wearsync tags registered:
// "provider" accepts a known provider id and "datatype" a canonical data type.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
		return provider.IsSupported(entity.ProviderID(fl.Field().String()))
	})
	_ = v.RegisterValidation("datatype", func(fl validator.FieldLevel) bool {
		return entity.DataType(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return echo.NewHTTPError(http.StatusBadRequest, formatErrors(validationErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

func formatErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fieldErr.Field()+" is required")
		case "provider":
			messages = append(messages, fieldErr.Field()+" is not a supported provider")
		case "datatype":
			messages = append(messages, fieldErr.Field()+" contains an unknown data type")
		default:
			messages = append(messages, fieldErr.Field()+" failed "+fieldErr.Tag()+" validation")
		}
	}

	return strings.Join(messages, "; ")
}
