package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultTimeSlots is a doctor's standing availability, used on days without
// an override.
type DefaultTimeSlots struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorUserID primitive.ObjectID `json:"doctorUserId" bson:"doctorUserId"`
	TimeSlots    []string           `json:"timeSlots" bson:"timeSlots"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DaytimeSlots replaces a doctor's default slots for one business day.
type DaytimeSlots struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorUserID      primitive.ObjectID `json:"doctorUserId" bson:"doctorUserId"`
	Date              time.Time          `json:"date" bson:"date"`
	TimeSlots         []string           `json:"timeSlots" bson:"timeSlots"`
	AllDayUnavailable bool               `json:"allDayUnavailable" bson:"allDayUnavailable"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type OverrideKind int

const (
	OverrideNoRecord OverrideKind = iota
	OverrideAllDayUnavailable
	OverrideExplicitSlots
)

func (k OverrideKind) String() string {
	switch k {
	case OverrideAllDayUnavailable:
		return "all_day_unavailable"
	case OverrideExplicitSlots:
		return "explicit_slots"
	default:
		return "no_record"
	}
}

// Kind classifies an override record. A nil record means no override exists.
// A record with no slots that is not flagged all-day is still an explicit,
// empty, override.
func (d *DaytimeSlots) Kind() OverrideKind {
	switch {
	case d == nil:
		return OverrideNoRecord
	case d.AllDayUnavailable:
		return OverrideAllDayUnavailable
	default:
		return OverrideExplicitSlots
	}
}

const (
	AvailabilitySourceOverride = "override"
	AvailabilitySourceDefault  = "default"
	AvailabilitySourceNone     = "none"
)

type Availability struct {
	DoctorUserID      string   `json:"doctorUserId"`
	Date              string   `json:"date"`
	TimeSlots         []string `json:"timeSlots"`
	Source            string   `json:"source"`
	AllDayUnavailable bool     `json:"allDayUnavailable"`
}

type DoctorAvailability struct {
	Doctor       UserProfile `json:"doctor"`
	Availability `json:"availability"`
	BookedSlots  []string `json:"bookedSlots"`
}
