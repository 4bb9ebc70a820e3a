package utils

import (
	"user-collection-service/internal/domain/models"

	"github.com/go-playground/validator/v10"
)

var (
	validatorInstance = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	// sortfield accepts an empty value or any sortable field name, case-insensitive.
	_ = v.RegisterValidation("sortfield", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseSortField(fl.Field().String())
		return ok
	})
	return v
}

func Validate(v any) error {
	return validatorInstance.Struct(v)
}
