package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// User messages
	UserCreatedSuccess  = "user created successfully"
	UsersGetSuccess     = "get users successfully"
	DoctorsGetSuccess   = "get doctors successfully"
	ProfileGetSuccess   = "get profile successfully"
	AccountSetupSuccess = "account set up successfully"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Schedule messages
	TimeSlotsGetSuccess         = "get time slots successfully"
	DefaultTimeSlotsGetSuccess  = "get default time slots successfully"
	DefaultTimeSlotsSaveSuccess = "default time slots saved successfully"
	DaytimeSlotsGetSuccess      = "get daytime slots successfully"
	DaytimeSlotsSaveSuccess     = "daytime slots saved successfully"
	AvailabilityGetSuccess      = "get availability successfully"

	// Appointment messages
	AppointmentCreatedSuccess = "appointment created successfully"
	AppointmentUpdatedSuccess = "appointment updated successfully"
	AppointmentGetSuccess     = "get appointment successfully"
	AppointmentsGetSuccess    = "get appointments successfully"

	// Attendance messages
	TimeInSuccess        = "time in recorded successfully"
	TimeOutSuccess       = "time out recorded successfully"
	AttendanceGetSuccess = "get attendance successfully"

	// Settings messages
	SettingsGetSuccess    = "get settings successfully"
	SettingsUpdateSuccess = "settings updated successfully"
)
