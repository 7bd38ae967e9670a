package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	msuuid "github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// UUIDs validate as their canonical string, the zero value as empty
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		id, ok := v.Interface().(msuuid.UUID)
		if !ok || id.IsZero() {
			return ""
		}
		return id.String()
	}, msuuid.UUID{})

	// notblank rejects strings made only of whitespace
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Check validates s and converts rule failures into an apperror.ValidationError.
func Check(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return apperror.Validation("%v", err)
	}
	return apperror.InvalidFields(fieldsOf(vErrs))
}

func ErrorsToJson(validationErrs error) (string, error) {
	var vErrs validator.ValidationErrors
	if !errors.As(validationErrs, &vErrs) {
		return "", validationErrs
	}

	errsJson, err := json.Marshal(fieldsOf(vErrs))
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}

func fieldsOf(vErrs validator.ValidationErrors) map[string]string {
	errsMap := make(map[string]string, len(vErrs))
	for _, fieldErr := range vErrs {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return errsMap
}
