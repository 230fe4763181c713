package constvars

const (
	QueryParamsDate         = "date"
	QueryParamsDoctorID     = "doctorId"
	QueryParamsDoctorUserID = "doctorUserId"
	QueryParamsDoctorType   = "doctorType"
	QueryParamsCreatorID    = "creatorId"
	QueryParamsStatus       = "status"
	QueryParamsRole         = "role"
	QueryParamsUserID       = "userId"
	QueryParamsPeriod       = "period"
	QueryParamsID           = "id"
)

const (
	URLParamAppointmentID = "appointmentID"
)
