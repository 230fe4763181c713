package requests

type SaveDefaultTimeSlots struct {
	TimeSlots []string `json:"timeSlots" validate:"dive,time_slot"`
}

// SaveDaytimeSlots accepts the date from the body or, when absent there,
// from the date query parameter.
type SaveDaytimeSlots struct {
	Date              string   `json:"date" validate:"required"`
	TimeSlots         []string `json:"timeSlots" validate:"dive,time_slot"`
	AllDayUnavailable bool     `json:"allDayUnavailable"`
}

type GetAvailability struct {
	DoctorUserID string `validate:"required,object_id"`
	Date         string `validate:"required"`
}

type GetDoctorsAvailability struct {
	DoctorType string `validate:"required,doctor_role"`
	Date       string `validate:"required"`
}
