package utils

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/timeslots"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("time_slot", validateTimeSlot)
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("staff_role", validateStaffRole)
	validate.RegisterValidation("appointment_status", validateAppointmentStatus)
	validate.RegisterValidation("doctor_role", validateDoctorRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	return timeslots.IsKnown(fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayoutYYYYMMDD, fl.Field().String())
	return err == nil
}

func validateStaffRole(fl validator.FieldLevel) bool {
	return models.IsKnownRole(fl.Field().String())
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	return models.IsKnownAppointmentStatus(fl.Field().String())
}

func validateDoctorRole(fl validator.FieldLevel) bool {
	return models.IsKnownDoctorRole(fl.Field().String())
}
