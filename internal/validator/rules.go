package validator

import (
	"edubridge_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Custom rules for the enquiry status vocabularies. Registered on the
// shared Validator at startup.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("enquiry_status", func(fl validator.FieldLevel) bool {
		return models.EnquiryStatus(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("enterprise_status", func(fl validator.FieldLevel) bool {
		return models.EnterpriseEnquiryStatus(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("faculty_status", func(fl validator.FieldLevel) bool {
		return models.FacultyEnquiryStatus(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	return nil
}
