package exceptions

import (
	"clinic-staff-service/internal/pkg/constvars"
	"fmt"
)

// SlotAlreadyBooked is returned when a doctor's slot is held by another
// appointment. ExistingAppointmentID is empty when the conflict was detected
// by the storage index instead of the read check.
type SlotAlreadyBooked struct {
	ExistingAppointmentID string
}

func (e *SlotAlreadyBooked) Error() string {
	return fmt.Sprintf(constvars.ErrDevSlotAlreadyBooked, e.ExistingAppointmentID)
}

var (
	ErrSlotAlreadyBooked = func(existingAppointmentID string) *CustomError {
		return BuildNewCustomError(&SlotAlreadyBooked{ExistingAppointmentID: existingAppointmentID}, constvars.StatusConflict, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevSlotConflict)
	}
	ErrSlotLockNotAcquired = func(key string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSlotBusy, fmt.Sprintf(constvars.ErrDevSlotLockNotAcquired, key))
	}
	ErrInvalidDate = func(err error, value string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDate, fmt.Sprintf(constvars.ErrDevInvalidDate, value))
	}
	ErrNoOpenAttendance = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientNoOpenAttendance, constvars.ErrDevNoOpenAttendance)
	}
	ErrAttendanceAlreadyOpen = func(attendanceID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientAttendanceAlreadyOpen, fmt.Sprintf(constvars.ErrDevAttendanceAlreadyOpen, attendanceID))
	}
	ErrNotFound = func(resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientResourceNotFound, resource), fmt.Sprintf(constvars.ErrDevResourceNotFound, resource))
	}
	ErrInvalidStatusTransition = func(from, to string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientInvalidStatusTransition, from, to), fmt.Sprintf(constvars.ErrDevInvalidStatusTransition, from, to))
	}
	ErrAppointmentNotElapsed = func(appointmentID, scheduledAt string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientAppointmentNotElapsed, fmt.Sprintf(constvars.ErrDevAppointmentNotElapsed, appointmentID, scheduledAt))
	}
	ErrSlotNotInCatalog = func(label string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientSlotNotInCatalog, label), fmt.Sprintf(constvars.ErrDevSlotNotInCatalog, label))
	}
	ErrDoctorTypeMismatch = func(doctorType, role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientDoctorTypeMismatch, fmt.Sprintf(constvars.ErrDevDoctorTypeMismatch, doctorType, role))
	}
	ErrStatusChangeWithSlotMove = func(status string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientStatusChangeWithSlotMove, fmt.Sprintf(constvars.ErrDevStatusChangeWithSlotMove, status))
	}
	ErrDoctorRoleRequired = func(role string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientDoctorRoleRequired, fmt.Sprintf(constvars.ErrDevDoctorRoleRequired, role))
	}
)
