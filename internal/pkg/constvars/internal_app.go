package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CLNC_SVC_"
)

// MongoDB collection names.
const (
	MongoDBCollectionUsers            = "users"
	MongoDBCollectionAppointments     = "appointments"
	MongoDBCollectionDefaultTimeSlots = "default_time_slots"
	MongoDBCollectionDaytimeSlots     = "daytime_slots"
	MongoDBCollectionAttendance       = "attendance"
	MongoDBCollectionSettings         = "settings"
)

const (
	RoleAdmin                = "admin"
	RoleNurse                = "nurse"
	RoleSurgeon              = "surgeon"
	RoleInternalFamilyDoctor = "internal_family_doctor"
	RoleNeurologist          = "neurologist"
	RolePediatric            = "pediatric"
)

var DoctorRoles = []string{
	RoleSurgeon,
	RoleInternalFamilyDoctor,
	RoleNeurologist,
	RolePediatric,
}

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusDone      = "done"
	AppointmentStatusCancelled = "cancelled"
)

const (
	AppointmentEventCreated     = "appointment.created"
	AppointmentEventRescheduled = "appointment.rescheduled"
	AppointmentEventDone        = "appointment.done"
	AppointmentEventCancelled   = "appointment.cancelled"
)

const JWTIssuer = "clinic-staff"

const (
	RedisSessionKeyPrefix  = "session:"
	RedisSlotLockKeyFormat = "lock:slot:%s:%s:%s"
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
	UsernameSuffixMax  = 100
	UsernameMaxRetries = 5
	SettingsDocumentID = "site"
	AdminUsername      = "admin"
)
