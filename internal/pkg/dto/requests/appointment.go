package requests

type CreateAppointment struct {
	DoctorType                string `json:"doctorType" validate:"required,doctor_role"`
	DoctorUserID              string `json:"doctorUserId" validate:"required,object_id"`
	Date                      string `json:"date" validate:"required"`
	Time                      string `json:"time" validate:"required,time_slot"`
	PatientName               string `json:"patientName" validate:"required,max=128"`
	PatientContactInformation string `json:"patientContactInformation" validate:"required,max=128"`
	PatientAddress            string `json:"patientAddress" validate:"omitempty,max=256"`
	Notes                     string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateAppointment carries a partial update. Nil fields are left unchanged.
type UpdateAppointment struct {
	DoctorType                *string `json:"doctorType" validate:"omitempty,doctor_role"`
	DoctorUserID              *string `json:"doctorUserId" validate:"omitempty,object_id"`
	Date                      *string `json:"date" validate:"omitempty,min=1"`
	Time                      *string `json:"time" validate:"omitempty,time_slot"`
	PatientName               *string `json:"patientName" validate:"omitempty,min=1,max=128"`
	PatientContactInformation *string `json:"patientContactInformation" validate:"omitempty,min=1,max=128"`
	PatientAddress            *string `json:"patientAddress" validate:"omitempty,max=256"`
	Notes                     *string `json:"notes" validate:"omitempty,max=2000"`
	Status                    *string `json:"status" validate:"omitempty,appointment_status"`
}

type FindAppointments struct {
	Date         string `validate:"omitempty"`
	CreatorID    string `validate:"omitempty,object_id"`
	DoctorUserID string `validate:"omitempty,object_id"`
	Status       string `validate:"omitempty,appointment_status"`
}
