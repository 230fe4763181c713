package models

import (
	"clinic-staff-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID                        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorType                string             `json:"doctorType" bson:"doctorType"`
	DoctorUserID              primitive.ObjectID `json:"doctorUserId" bson:"doctorUserId"`
	Date                      time.Time          `json:"date" bson:"date"`
	Time                      string             `json:"time" bson:"time"`
	PatientName               string             `json:"patientName" bson:"patientName"`
	PatientContactInformation string             `json:"patientContactInformation" bson:"patientContactInformation"`
	PatientAddress            string             `json:"patientAddress" bson:"patientAddress"`
	Notes                     string             `json:"notes" bson:"notes"`
	CreatorID                 primitive.ObjectID `json:"creatorId" bson:"creatorId"`
	Status                    string             `json:"status" bson:"status"`
	TimeModel                 `bson:",inline"`
}

// AppointmentDetail is an appointment joined with the public profiles of the
// nurse who booked it and the attending doctor.
type AppointmentDetail struct {
	Appointment `bson:",inline"`
	Creator     *UserProfile `json:"creator,omitempty" bson:"creator,omitempty"`
	Doctor      *UserProfile `json:"doctor,omitempty" bson:"doctor,omitempty"`
}

type AppointmentFilter struct {
	Status       string
	CreatorID    *primitive.ObjectID
	DoctorUserID *primitive.ObjectID
	DayStart     *time.Time
	DayEnd       *time.Time
}

// SlotKey identifies one bookable (doctor, business day, time) cell.
type SlotKey struct {
	DoctorUserID primitive.ObjectID
	Date         time.Time
	Time         string
}

// OccupancyQuery looks for an appointment holding a slot on the business day
// [DayStart, DayEnd). ExcludeID skips the appointment being moved.
type OccupancyQuery struct {
	DoctorUserID primitive.ObjectID
	DayStart     time.Time
	DayEnd       time.Time
	Time         string
	ExcludeID    primitive.ObjectID
}

// AppointmentChanges is a partial write. Nil fields keep their stored value.
// A non-empty ExpectedStatus makes the write apply only while the stored status
// still equals it.
type AppointmentChanges struct {
	DoctorType                *string
	DoctorUserID              *primitive.ObjectID
	Date                      *time.Time
	Time                      *string
	PatientName               *string
	PatientContactInformation *string
	PatientAddress            *string
	Notes                     *string
	Status                    *string
	ExpectedStatus            string
	UpdatedAt                 time.Time
}

func (c *AppointmentChanges) IsEmpty() bool {
	return c.DoctorType == nil && c.DoctorUserID == nil && c.Date == nil && c.Time == nil &&
		c.PatientName == nil && c.PatientContactInformation == nil && c.PatientAddress == nil &&
		c.Notes == nil && c.Status == nil
}

// ApplyTo copies the set fields onto appointment.
func (c *AppointmentChanges) ApplyTo(appointment *Appointment) {
	if c.DoctorType != nil {
		appointment.DoctorType = *c.DoctorType
	}
	if c.DoctorUserID != nil {
		appointment.DoctorUserID = *c.DoctorUserID
	}
	if c.Date != nil {
		appointment.Date = *c.Date
	}
	if c.Time != nil {
		appointment.Time = *c.Time
	}
	if c.PatientName != nil {
		appointment.PatientName = *c.PatientName
	}
	if c.PatientContactInformation != nil {
		appointment.PatientContactInformation = *c.PatientContactInformation
	}
	if c.PatientAddress != nil {
		appointment.PatientAddress = *c.PatientAddress
	}
	if c.Notes != nil {
		appointment.Notes = *c.Notes
	}
	if c.Status != nil {
		appointment.Status = *c.Status
	}
	if !c.UpdatedAt.IsZero() {
		appointment.SetUpdatedAt(c.UpdatedAt)
	}
}

func (a *Appointment) Slot() SlotKey {
	return SlotKey{DoctorUserID: a.DoctorUserID, Date: a.Date, Time: a.Time}
}

func (a *Appointment) OccupiesSlot() bool {
	return a.Status != constvars.AppointmentStatusCancelled
}

func IsKnownAppointmentStatus(status string) bool {
	switch status {
	case constvars.AppointmentStatusPending, constvars.AppointmentStatusDone, constvars.AppointmentStatusCancelled:
		return true
	}
	return false
}
