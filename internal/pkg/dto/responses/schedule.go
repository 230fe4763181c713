package responses

import "clinic-staff-service/internal/pkg/timeslots"

type TimeSlotCatalog struct {
	TimeSlots      []timeslots.Slot `json:"timeSlots"`
	DefaultEnabled []string         `json:"defaultEnabled"`
}
