package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingQueryParamsKey        = "query_params"
	LoggingRequestKey            = "request"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingResponseBytesKey      = "response_bytes"
	LoggingRedisKey              = "redis_key"
	LoggingLockExpiresAtKey      = "lock_expires_at"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingIsClientRequestIDKey  = "is_client_request_id"
	LoggingStackKey              = "stack"
	LoggingLocationsKey          = "locations"
)

const (
	LoggingUserIDKey        = "user_id"
	LoggingUsernameKey      = "username"
	LoggingRoleKey          = "role"
	LoggingDoctorIDKey      = "doctor_user_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingAttendanceIDKey  = "attendance_id"
	LoggingDateKey          = "date"
	LoggingTimeSlotKey      = "time_slot"
	LoggingSlotsCountKey    = "slots_count"
	LoggingStatusKey        = "status"
	LoggingAvailabilityKey  = "availability"
	LoggingEventTypeKey     = "event_type"
	LoggingQueueKey         = "queue"
	LoggingCountKey         = "count"
	LoggingSlotMovedKey     = "slot_moved"
	LoggingAttemptKey       = "attempt"
)
