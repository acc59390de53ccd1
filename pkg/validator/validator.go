package validator

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// ClockLayout is the strict time-of-day format accepted for reminder times and doctor hours.
const ClockLayout = "15:04"

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("clock", validateClock)
	_ = v.RegisterValidation("weekday", validateWeekday)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				fieldErrors[field] = field + " is required"
			case "email":
				fieldErrors[field] = field + " must be a valid email address"
			case "min":
				fieldErrors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				fieldErrors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				fieldErrors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				fieldErrors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				fieldErrors[field] = field + " must be one of: " + e.Param()
			case "clock":
				fieldErrors[field] = field + " must be a time of day in HH:MM format"
			case "weekday":
				fieldErrors[field] = field + " must be a weekday name"
			case "datetime":
				fieldErrors[field] = field + " must match the format " + e.Param()
			default:
				fieldErrors[field] = field + " is invalid"
			}
		}
	}

	return fieldErrors
}

// IsClock reports whether s is a strict HH:MM time of day.
func IsClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	return weekdays[fl.Field().String()]
}
