package service

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

var (
	dniPattern         = regexp.MustCompile(`^\d{8}$`)
	studentCodePattern = regexp.MustCompile(`^S\d{4}\d{8}$`)
)

func ensureValidator(v *validator.Validate) *validator.Validate {
	if v == nil {
		v = validator.New()
	}
	registerValidations(v)
	return v
}

func registerValidations(v *validator.Validate) {
	_ = v.RegisterValidation("dni", func(fl validator.FieldLevel) bool {
		return dniPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("calendar_category", func(fl validator.FieldLevel) bool {
		return models.EventCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("shift", func(fl validator.FieldLevel) bool {
		return models.Shift(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("enrollment_type", func(fl validator.FieldLevel) bool {
		return models.EnrollmentType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("enrollment_condition", func(fl validator.FieldLevel) bool {
		return models.EnrollmentCondition(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("exoneration", func(fl validator.FieldLevel) bool {
		return models.Exoneration(fl.Field().String()).Valid()
	})
}
