package validator

import (
	"github.com/go-playground/validator/v10"

	"rentaride/internal/db"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("time_slot", validateTimeSlot)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return db.ValidTimeSlot(fl.Field().String())
}
