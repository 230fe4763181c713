package routers

import (
	"bytes"
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/delivery/http/controllers"
	"clinic-staff-service/internal/app/delivery/http/middlewares"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/dto/responses"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testSecret = "router-test-secret"

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	args := m.Called(ctx, user)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.LoginUser)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.CreatedUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.CreatedUser)
	return response, args.Error(1)
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.User, error) {
	args := m.Called(ctx, session)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserUsecase) FindUsers(ctx context.Context, request *requests.FindUsers) ([]models.User, error) {
	args := m.Called(ctx, request)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserUsecase) FindDoctors(ctx context.Context, request *requests.FindUsers) ([]models.UserProfile, error) {
	args := m.Called(ctx, request)
	doctors, _ := args.Get(0).([]models.UserProfile)
	return doctors, args.Error(1)
}

func (m *MockUserUsecase) SetupAccount(ctx context.Context, session *models.Session, request *requests.SetupAccount) error {
	return m.Called(ctx, session, request).Error(0)
}

func (m *MockUserUsecase) SeedAdmin(ctx context.Context, password string) (bool, error) {
	args := m.Called(ctx, password)
	return args.Bool(0), args.Error(1)
}

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) GetDefaultTimeSlots(ctx context.Context, session *models.Session) (*models.DefaultTimeSlots, error) {
	args := m.Called(ctx, session)
	record, _ := args.Get(0).(*models.DefaultTimeSlots)
	return record, args.Error(1)
}

func (m *MockScheduleUsecase) SaveDefaultTimeSlots(ctx context.Context, session *models.Session, request *requests.SaveDefaultTimeSlots) (*models.DefaultTimeSlots, error) {
	args := m.Called(ctx, session, request)
	record, _ := args.Get(0).(*models.DefaultTimeSlots)
	return record, args.Error(1)
}

func (m *MockScheduleUsecase) GetDaytimeSlots(ctx context.Context, session *models.Session, date string) (*models.Availability, error) {
	args := m.Called(ctx, session, date)
	availability, _ := args.Get(0).(*models.Availability)
	return availability, args.Error(1)
}

func (m *MockScheduleUsecase) SaveDaytimeSlots(ctx context.Context, session *models.Session, request *requests.SaveDaytimeSlots) (*models.DaytimeSlots, error) {
	args := m.Called(ctx, session, request)
	record, _ := args.Get(0).(*models.DaytimeSlots)
	return record, args.Error(1)
}

func (m *MockScheduleUsecase) Resolve(ctx context.Context, doctorUserID primitive.ObjectID, day time.Time) (*models.Availability, error) {
	args := m.Called(ctx, doctorUserID, day)
	availability, _ := args.Get(0).(*models.Availability)
	return availability, args.Error(1)
}

func (m *MockScheduleUsecase) GetAvailability(ctx context.Context, request *requests.GetAvailability) (*models.Availability, error) {
	args := m.Called(ctx, request)
	availability, _ := args.Get(0).(*models.Availability)
	return availability, args.Error(1)
}

func (m *MockScheduleUsecase) GetDoctorsAvailability(ctx context.Context, request *requests.GetDoctorsAvailability) ([]models.DoctorAvailability, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]models.DoctorAvailability)
	return result, args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, session, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, session, appointmentID, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) Reschedule(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, session, appointmentID, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) MarkDone(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) Find(ctx context.Context, request *requests.FindAppointments) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx, request)
	details, _ := args.Get(0).([]models.AppointmentDetail)
	return details, args.Error(1)
}

type MockAttendanceUsecase struct {
	mock.Mock
}

func (m *MockAttendanceUsecase) TimeIn(ctx context.Context, session *models.Session) (*models.Attendance, error) {
	args := m.Called(ctx, session)
	attendance, _ := args.Get(0).(*models.Attendance)
	return attendance, args.Error(1)
}

func (m *MockAttendanceUsecase) TimeOut(ctx context.Context, session *models.Session) (*models.Attendance, error) {
	args := m.Called(ctx, session)
	attendance, _ := args.Get(0).(*models.Attendance)
	return attendance, args.Error(1)
}

func (m *MockAttendanceUsecase) FindMine(ctx context.Context, session *models.Session, request *requests.FindAttendance) ([]models.AttendanceDetail, error) {
	args := m.Called(ctx, session, request)
	records, _ := args.Get(0).([]models.AttendanceDetail)
	return records, args.Error(1)
}

func (m *MockAttendanceUsecase) FindAll(ctx context.Context, request *requests.FindAttendance) ([]models.AttendanceDetail, error) {
	args := m.Called(ctx, request)
	records, _ := args.Get(0).([]models.AttendanceDetail)
	return records, args.Error(1)
}

type MockSettingsUsecase struct {
	mock.Mock
}

func (m *MockSettingsUsecase) GetSettings(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).(*models.Settings)
	return settings, args.Error(1)
}

func (m *MockSettingsUsecase) UpdateSettings(ctx context.Context, request *requests.UpdateSettings) (*models.Settings, error) {
	args := m.Called(ctx, request)
	settings, _ := args.Get(0).(*models.Settings)
	return settings, args.Error(1)
}

type testServer struct {
	router       *chi.Mux
	sessions     *MockSessionService
	auth         *MockAuthUsecase
	users        *MockUserUsecase
	schedules    *MockScheduleUsecase
	appointments *MockAppointmentUsecase
	attendance   *MockAttendanceUsecase
	settings     *MockSettingsUsecase
}

func newTestServer(t *testing.T) *testServer {
	logger := zap.NewNop()
	accessLogger := logrus.New()
	accessLogger.SetOutput(io.Discard)

	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:  "v1",
			Timezone: "Asia/Manila",
		},
		HTTP: config.HTTP{
			EndpointPrefix:             "api",
			CORSAllowedOrigins:         []string{"*"},
			RequestTimeoutInSecond:     5,
			RequestBodyLimitInMegabyte: 1,
		},
		RateLimit: config.RateLimit{
			RequestsPerSecond:      1000,
			LoginMaxRequests:       3,
			LoginBlockTimeInMinute: 5,
		},
		JWT: config.JWT{Secret: testSecret},
	}

	s := &testServer{
		router:       chi.NewRouter(),
		sessions:     new(MockSessionService),
		auth:         new(MockAuthUsecase),
		users:        new(MockUserUsecase),
		schedules:    new(MockScheduleUsecase),
		appointments: new(MockAppointmentUsecase),
		attendance:   new(MockAttendanceUsecase),
		settings:     new(MockSettingsUsecase),
	}

	SetupRoutes(
		s.router,
		internalConfig,
		accessLogger,
		middlewares.NewMiddlewares(logger, s.sessions, internalConfig),
		controllers.NewAuthController(logger, s.auth, internalConfig),
		controllers.NewUserController(logger, s.users, internalConfig),
		controllers.NewScheduleController(logger, s.schedules, internalConfig),
		controllers.NewAppointmentController(logger, s.appointments, internalConfig),
		controllers.NewAttendanceController(logger, s.attendance, internalConfig),
		controllers.NewSettingsController(logger, s.settings, internalConfig),
	)
	return s
}

// loginAs registers a session for role and returns a bearer header value.
func (s *testServer) loginAs(t *testing.T, sessionID, role string) string {
	session := &models.Session{
		SessionID: sessionID,
		UserID:    primitive.NewObjectID().Hex(),
		Username:  sessionID,
		Role:      role,
	}
	s.sessions.On("GetSession", mock.Anything, sessionID).Return(session, nil)

	token, err := utils.GenerateSessionJWT(sessionID, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return constvars.AuthorizationBearerPrefix + token
}

func (s *testServer) do(method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(constvars.HeaderAuthorization, bearer)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func validAppointmentBody(doctorID string) map[string]interface{} {
	return map[string]interface{}{
		"doctorType":                constvars.RoleSurgeon,
		"doctorUserId":              doctorID,
		"date":                      "2024-07-10",
		"time":                      "9:00 am",
		"patientName":               "Juan Dela Cruz",
		"patientContactInformation": "+63 917 000 0000",
	}
}

func TestAppointmentRoutes(t *testing.T) {
	s := newTestServer(t)
	nurse := s.loginAs(t, "nurse-session", constvars.RoleNurse)
	doctor := s.loginAs(t, "doctor-session", constvars.RoleSurgeon)
	doctorID := primitive.NewObjectID().Hex()

	t.Run("Create requires a session", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/v1/appointments", "", validAppointmentBody(doctorID))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Doctors cannot book", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/v1/appointments", doctor, validAppointmentBody(doctorID))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Unknown time slot is rejected before the usecase", func(t *testing.T) {
		body := validAppointmentBody(doctorID)
		body["time"] = "9:30 am"
		rr := s.do(http.MethodPost, "/api/v1/appointments", nurse, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Create succeeds", func(t *testing.T) {
		created := &models.Appointment{ID: primitive.NewObjectID(), Status: constvars.AppointmentStatusPending, Time: "9:00 am"}
		s.appointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Session"), mock.AnythingOfType("*requests.CreateAppointment")).Return(created, nil).Once()

		rr := s.do(http.MethodPost, "/api/v1/appointments", nurse, validAppointmentBody(doctorID))
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, decode(t, rr).Success)
	})

	t.Run("Conflict reports the existing appointment", func(t *testing.T) {
		s.appointments.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, exceptions.ErrSlotAlreadyBooked("66a000000000000000000001")).Once()

		rr := s.do(http.MethodPost, "/api/v1/appointments", nurse, validAppointmentBody(doctorID))
		require.Equal(t, http.StatusConflict, rr.Code)

		body := decode(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, body.Message)
		assert.JSONEq(t, `{"existingAppointmentId":"66a000000000000000000001"}`, string(body.Data))
	})

	t.Run("Patch by query id", func(t *testing.T) {
		appointmentID := primitive.NewObjectID().Hex()
		updated := &models.Appointment{Status: constvars.AppointmentStatusPending}
		s.appointments.On("Update", mock.Anything, mock.Anything, appointmentID, mock.MatchedBy(func(request *requests.UpdateAppointment) bool {
			return request.Date != nil && *request.Date == "2024-07-11" && request.Time == nil
		})).Return(updated, nil).Once()

		rr := s.do(http.MethodPatch, "/api/v1/appointments?id="+appointmentID, doctor, map[string]string{"date": "2024-07-11"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Patch by path id", func(t *testing.T) {
		appointmentID := primitive.NewObjectID().Hex()
		s.appointments.On("Update", mock.Anything, mock.Anything, appointmentID, mock.Anything).Return(&models.Appointment{}, nil).Once()

		rr := s.do(http.MethodPatch, "/api/v1/appointments/"+appointmentID, nurse, map[string]string{"notes": "bring x-ray"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Patch without an id", func(t *testing.T) {
		rr := s.do(http.MethodPatch, "/api/v1/appointments", nurse, map[string]string{"notes": "x"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Mark done before the slot elapsed", func(t *testing.T) {
		appointmentID := primitive.NewObjectID().Hex()
		s.appointments.On("MarkDone", mock.Anything, mock.Anything, appointmentID).Return(nil, exceptions.ErrAppointmentNotElapsed(appointmentID, "2099-01-01T09:00:00+08:00")).Once()

		rr := s.do(http.MethodPost, "/api/v1/appointments/"+appointmentID+"/done", doctor, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("List passes filters through", func(t *testing.T) {
		s.appointments.On("Find", mock.Anything, &requests.FindAppointments{Date: "2024-07-10", Status: constvars.AppointmentStatusDone}).Return([]models.AppointmentDetail{}, nil).Once()

		rr := s.do(http.MethodGet, "/api/v1/appointments?date=2024-07-10&status=done", nurse, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("List rejects unknown status", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/api/v1/appointments?status=archived", nurse, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	s.appointments.AssertExpectations(t)
}

func TestScheduleRoutes(t *testing.T) {
	s := newTestServer(t)
	nurse := s.loginAs(t, "nurse-session", constvars.RoleNurse)
	doctor := s.loginAs(t, "doctor-session", constvars.RoleNeurologist)
	doctorID := primitive.NewObjectID().Hex()

	t.Run("Time slot catalog is public", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/api/v1/time-slots", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var catalog struct {
			TimeSlots []struct {
				Label string `json:"label"`
			} `json:"timeSlots"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &catalog))
		assert.Len(t, catalog.TimeSlots, 18)
	})

	t.Run("Time slot catalog rejects unknown period", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/api/v1/time-slots?period=night", "", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Availability", func(t *testing.T) {
		availability := &models.Availability{
			DoctorUserID: doctorID,
			Date:         "2024-07-10",
			TimeSlots:    []string{"8:00 am", "9:00 am", "1:00 pm"},
			Source:       models.AvailabilitySourceDefault,
		}
		s.schedules.On("GetAvailability", mock.Anything, &requests.GetAvailability{DoctorUserID: doctorID, Date: "2024-07-10"}).Return(availability, nil).Once()

		rr := s.do(http.MethodGet, "/api/v1/availability?doctorId="+doctorID+"&date=2024-07-10", nurse, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Availability
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &got))
		assert.Equal(t, []string{"8:00 am", "9:00 am", "1:00 pm"}, got.TimeSlots)
	})

	t.Run("Availability needs a doctor id", func(t *testing.T) {
		rr := s.do(http.MethodGet, "/api/v1/availability?date=2024-07-10", nurse, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Daytime slots take the date from the query", func(t *testing.T) {
		saved := &models.DaytimeSlots{TimeSlots: []string{"10:00 am"}}
		s.schedules.On("SaveDaytimeSlots", mock.Anything, mock.Anything, mock.MatchedBy(func(request *requests.SaveDaytimeSlots) bool {
			return request.Date == "2024-07-10" && len(request.TimeSlots) == 1
		})).Return(saved, nil).Once()

		rr := s.do(http.MethodPost, "/api/v1/schedules/daytime-slots?date=2024-07-10", doctor, map[string]interface{}{
			"timeSlots": []string{"10:00 am"},
		})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Daytime slots reject labels outside the catalog", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/v1/schedules/daytime-slots", doctor, map[string]interface{}{
			"date":      "2024-07-10",
			"timeSlots": []string{"5:00 am"},
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	s.schedules.AssertExpectations(t)
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run("Login", func(t *testing.T) {
		s.auth.On("Login", mock.Anything, &requests.LoginUser{Username: "admin", Password: "admin_password"}).Return(&responses.LoginUser{Token: "jwt"}, nil).Once()

		rr := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "admin_password"})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Login rejects unknown fields", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "x", "otp": "1"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Login is rate limited per client", func(t *testing.T) {
		s.auth.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidUsernameOrPassword(nil))

		rr := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		rr = s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "admin", "password": "wrong"})
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("Logout deletes the session", func(t *testing.T) {
		bearer := s.loginAs(t, "nurse-session", constvars.RoleNurse)
		s.auth.On("Logout", mock.Anything, "nurse-session").Return(nil).Once()

		rr := s.do(http.MethodPost, "/api/v1/auth/logout", bearer, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAdminOnlyRoutes(t *testing.T) {
	s := newTestServer(t)
	nurse := s.loginAs(t, "nurse-session", constvars.RoleNurse)
	admin := s.loginAs(t, "admin-session", constvars.RoleAdmin)

	rr := s.do(http.MethodGet, "/api/v1/users", nurse, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = s.do(http.MethodGet, "/api/v1/attendance", nurse, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = s.do(http.MethodPatch, "/api/v1/settings", nurse, map[string]string{"address": "Makati"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	s.settings.On("GetSettings", mock.Anything).Return(&models.Settings{}, nil).Once()
	rr = s.do(http.MethodGet, "/api/v1/settings", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.users.On("FindUsers", mock.Anything, &requests.FindUsers{Role: constvars.RoleNurse}).Return([]models.User{}, nil).Once()
	rr = s.do(http.MethodGet, "/api/v1/users?role=nurse", admin, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.users.AssertExpectations(t)
	s.settings.AssertExpectations(t)
}

func TestAttendanceRoutes(t *testing.T) {
	s := newTestServer(t)
	nurse := s.loginAs(t, "nurse-session", constvars.RoleNurse)

	s.attendance.On("TimeOut", mock.Anything, mock.Anything).Return(nil, exceptions.ErrNoOpenAttendance()).Once()
	rr := s.do(http.MethodPost, "/api/v1/attendance/time-out", nurse, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constvars.ErrClientNoOpenAttendance, decode(t, rr).Message)

	s.attendance.On("TimeIn", mock.Anything, mock.Anything).Return(&models.Attendance{ID: primitive.NewObjectID()}, nil).Once()
	rr = s.do(http.MethodPost, "/api/v1/attendance/time-in", nurse, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.attendance.AssertExpectations(t)
}
