package appointments

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/timeslots"
	"clinic-staff-service/internal/pkg/timezone"
	"time"
)

// checkTransition allows pending to move to done or cancelled. A status may
// always be set to itself; nothing leaves done or cancelled.
func checkTransition(from, to string) error {
	if from == to {
		return nil
	}
	if from == constvars.AppointmentStatusPending &&
		(to == constvars.AppointmentStatusDone || to == constvars.AppointmentStatusCancelled) {
		return nil
	}
	return exceptions.ErrInvalidStatusTransition(from, to)
}

// canManage reports whether the caller booked the appointment, attends it,
// or is an admin.
func canManage(session *models.Session, appointment *models.Appointment) bool {
	if session.HasRole(constvars.RoleAdmin) {
		return true
	}
	return session.UserID == appointment.CreatorID.Hex() || session.UserID == appointment.DoctorUserID.Hex()
}

func canBook(session *models.Session) bool {
	return session.HasRole(constvars.RoleNurse, constvars.RoleAdmin)
}

// scheduledStart is the instant the appointment's slot begins.
func scheduledStart(normalizer *timezone.Normalizer, appointment *models.Appointment) (time.Time, error) {
	hour, err := timeslots.HourKey(appointment.Time)
	if err != nil {
		return time.Time{}, exceptions.ErrSlotNotInCatalog(appointment.Time)
	}
	return normalizer.AtHour(appointment.Date, hour), nil
}

// matchDoctorType requires the booked doctor type to be the doctor's own role.
func matchDoctorType(doctorType string, doctor *models.User) error {
	if doctorType != doctor.Role {
		return exceptions.ErrDoctorTypeMismatch(doctorType, doctor.Role)
	}
	return nil
}

// applyChanges copies changes onto appointment and reports whether the slot
// moved. A moved slot puts the appointment back to pending whatever its status
// was, and the reset is added to changes.
func applyChanges(changes *models.AppointmentChanges, appointment *models.Appointment) bool {
	before := appointment.Slot()
	changes.ApplyTo(appointment)
	after := appointment.Slot()

	moved := before.DoctorUserID != after.DoctorUserID ||
		!before.Date.Equal(after.Date) ||
		before.Time != after.Time
	if moved {
		pending := constvars.AppointmentStatusPending
		changes.Status = &pending
		appointment.Status = pending
	}
	return moved
}
