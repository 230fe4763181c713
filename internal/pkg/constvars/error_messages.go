package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"alphanum":  "must contain only alphanumeric characters",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"eqfield":   "must match %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"oneof":     "must be one of [%s]",
	"dive":      "is invalid",
	"time_slot": "must be one of the clinic time slots, e.g. 9:00 am",
	"object_id": "must be a valid identifier",
	"date_only": "must be a valid date in YYYY-MM-DD format",

	"staff_role":         "must be admin, nurse or a doctor specialty",
	"appointment_status": "must be pending, done or cancelled",
	"doctor_role":        "must be a doctor specialty",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientSlotAlreadyBooked             = "the selected time slot is already booked"
	ErrClientInvalidDate                   = "invalid date"
	ErrClientNoOpenAttendance              = "you have not timed in today"
	ErrClientAttendanceAlreadyOpen         = "you already timed in today"
	ErrClientInvalidStatusTransition       = "appointment status cannot be changed from %s to %s"
	ErrClientAppointmentNotElapsed         = "appointment can only be marked as done after its scheduled time"
	ErrClientSlotNotInCatalog              = "time slot %q is not offered by the clinic"
	ErrClientDoctorRoleRequired            = "only doctors can manage time slots"
	ErrClientSlotBusy                      = "the selected time slot is being booked, please try again"
	ErrClientDoctorTypeMismatch            = "doctor type does not match the selected doctor"
	ErrClientStatusChangeWithSlotMove      = "a rescheduled appointment is always pending, change its status in a separate request"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed  = "url param %s validation failed"
	ErrDevQueryParamValidationFailed  = "query param %s validation failed"
	ErrDevFailedToHashPassword        = "failed to hash password"
	ErrDevInvalidCredentials          = "invalid credentials"
	ErrDevUnauthorized                = "unauthorized access"
	ErrDevForbiddenRole               = "role %s is not allowed"
	ErrDevPasswordsDoNotMatch         = "passwords do not match"
	ErrDevUsernameAlreadyExists       = "username already exists"
	ErrDevUsernameGenerationExhausted = "username generation exhausted retries"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevResourceNotFound            = "%s not found"
	ErrDevSlotAlreadyBooked           = "slot already booked by appointment %s"
	ErrDevSlotConflict                = "slot conflict"
	ErrDevSlotLockNotAcquired         = "slot lock %s not acquired"
	ErrDevInvalidDate                 = "invalid date %q"
	ErrDevNoOpenAttendance            = "no open attendance record for today"
	ErrDevAttendanceAlreadyOpen       = "attendance record %s already open"
	ErrDevInvalidStatusTransition     = "invalid status transition %s -> %s"
	ErrDevAppointmentNotElapsed       = "appointment %s scheduled at %s has not elapsed"
	ErrDevSlotNotInCatalog            = "time slot %q not in catalog"
	ErrDevDoctorRoleRequired          = "role %s is not a doctor role"
	ErrDevDoctorTypeMismatch          = "doctor type %s does not match doctor role %s"
	ErrDevStatusChangeWithSlotMove    = "status %s requested together with a slot move"
	ErrDevInvalidTimezone             = "invalid timezone %q"
	ErrDevInvalidConfig               = "invalid config: %s"
	ErrDevAuthTokenMissing            = "auth token missing"
	ErrDevAuthTokenInvalid            = "auth token invalid"
	ErrDevAuthTokenInvalidOrExpired   = "auth token invalid or expired"
	ErrDevAuthGenerateToken           = "failed to generate auth token"
	ErrDevAuthSessionClaimMissing     = "auth token has no session claim"
	ErrDevSessionNotFound             = "session not found"
	ErrDevPublishMessage              = "failed to publish message to queue %s"
	ErrDevCreateRabbitMQChannel       = "failed to create rabbitmq channel"
)

// MongoDB error messages for developers
const (
	ErrDevMongoDBInsertDocument   = "failed to insert document into %s"
	ErrDevMongoDBFindDocument     = "failed to find document in %s"
	ErrDevMongoDBFindDocuments    = "failed to find documents in %s"
	ErrDevMongoDBUpdateDocument   = "failed to update document in %s"
	ErrDevMongoDBCountDocuments   = "failed to count documents in %s"
	ErrDevMongoDBDecodeDocument   = "failed to decode document from %s"
	ErrDevMongoDBAggregate        = "failed to aggregate documents in %s"
	ErrDevMongoDBCreateIndex      = "failed to create index on %s"
	ErrDevMongoDBStringToObjectID = "failed to convert string to object id"
)

// Redis error messages for developers
const (
	ErrDevRedisSet       = "failed to set value in redis"
	ErrDevRedisGetNoData = "failed to get data from redis with key %s"
	ErrDevRedisDelete    = "failed to delete value from redis"
	ErrDevRedisUnlock    = "failed to unlock redis lock"
)
