package validator

import (
	"errors"
	"fmt"

	"product-catalog-api/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// ErrInvalid wraps every error returned by Validate.
var ErrInvalid = errors.New("validation failed")

var validate = validator.New()

func init() {
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})

	// status accepts model.Status or a string holding a member name. Pointer
	// fields are dereferenced by the validator before this runs.
	validate.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		switch v := fl.Field().Interface().(type) {
		case model.Status:
			return v.IsValid()
		case string:
			return model.Status(v).IsValid()
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var out []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []*ErrorResponse{{FailedField: "", Tag: err.Error()}}
		}
		for _, err := range verrs {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			out = append(out, &element)
		}
	}
	return out
}

// Validate returns the first failure as an error, or nil.
func Validate(data interface{}) error {
	if errs := ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalid, first.FailedField, first.Tag)
	}
	return nil
}
