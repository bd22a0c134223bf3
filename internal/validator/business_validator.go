package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
)

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidateRegister validates a registration request
func (bv *BusinessValidator) ValidateRegister(req *RegisterRequest) ValidationErrors {
	return bv.Validate(req)
}

// ValidateLogin validates a login request, including the role enum
func (bv *BusinessValidator) ValidateLogin(req *LoginRequest) ValidationErrors {
	return bv.Validate(req)
}

// ValidateVehicleCreate validates vehicle creation
func (bv *BusinessValidator) ValidateVehicleCreate(req *CreateVehicleRequest) ValidationErrors {
	return bv.Validate(req)
}

// ValidateSessionCreate validates session creation. Start/end ordering and
// the existence of the teacher or vehicle are not checked.
func (bv *BusinessValidator) ValidateSessionCreate(req *CreateSessionRequest) ValidationErrors {
	var errors ValidationErrors

	errors = append(errors, bv.Validate(req)...)

	if req.LearnerIDs == nil {
		errors = append(errors, ValidationError{
			Field:   "learnerIds",
			Message: "is required",
			Rule:    "required",
		})
	}

	return errors
}

// ValidateNotificationCreate validates notification creation
func (bv *BusinessValidator) ValidateNotificationCreate(req *CreateNotificationRequest) ValidationErrors {
	return bv.Validate(req)
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	bv.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).IsValid()
	})

	bv.validate.RegisterValidation("vehicle_status", func(fl validator.FieldLevel) bool {
		return models.VehicleStatus(fl.Field().String()).IsValid()
	})

	bv.validate.RegisterValidation("session_type", func(fl validator.FieldLevel) bool {
		return models.SessionType(fl.Field().String()).IsValid()
	})
}
