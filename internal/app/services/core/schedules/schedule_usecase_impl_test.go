package schedules

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/timezone"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memoryDefaultTimeSlots struct {
	records map[primitive.ObjectID]models.DefaultTimeSlots
}

func (m *memoryDefaultTimeSlots) FindByDoctor(ctx context.Context, doctorUserID primitive.ObjectID) (*models.DefaultTimeSlots, error) {
	record, ok := m.records[doctorUserID]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (m *memoryDefaultTimeSlots) Upsert(ctx context.Context, record *models.DefaultTimeSlots) (*models.DefaultTimeSlots, error) {
	m.records[record.DoctorUserID] = *record
	saved := *record
	return &saved, nil
}

func (m *memoryDefaultTimeSlots) EnsureIndexes(ctx context.Context) error { return nil }

type daytimeKey struct {
	doctor primitive.ObjectID
	day    int64
}

type memoryDaytimeSlots struct {
	records map[daytimeKey]models.DaytimeSlots
}

func (m *memoryDaytimeSlots) FindByDoctorAndDay(ctx context.Context, doctorUserID primitive.ObjectID, day time.Time) (*models.DaytimeSlots, error) {
	record, ok := m.records[daytimeKey{doctorUserID, day.Unix()}]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (m *memoryDaytimeSlots) Upsert(ctx context.Context, record *models.DaytimeSlots) (*models.DaytimeSlots, error) {
	m.records[daytimeKey{record.DoctorUserID, record.Date.Unix()}] = *record
	saved := *record
	return &saved, nil
}

func (m *memoryDaytimeSlots) EnsureIndexes(ctx context.Context) error { return nil }

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByRoles(ctx context.Context, roles []string) ([]models.User, error) {
	args := m.Called(ctx, roles)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID primitive.ObjectID, hashedPassword string) error {
	return m.Called(ctx, userID, hashedPassword).Error(0)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	saved, _ := args.Get(0).(*models.Appointment)
	return saved, args.Error(1)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepository) FindOccupying(ctx context.Context, query models.OccupancyQuery) (*models.Appointment, error) {
	args := m.Called(ctx, query)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *mockAppointmentRepository) FindBookedTimes(ctx context.Context, doctorUserID primitive.ObjectID, dayStart, dayEnd time.Time) ([]string, error) {
	args := m.Called(ctx, doctorUserID, dayStart, dayEnd)
	times, _ := args.Get(0).([]string)
	return times, args.Error(1)
}

func (m *mockAppointmentRepository) FindDetails(ctx context.Context, filter models.AppointmentFilter) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx, filter)
	details, _ := args.Get(0).([]models.AppointmentDetail)
	return details, args.Error(1)
}

func (m *mockAppointmentRepository) Update(ctx context.Context, appointmentID primitive.ObjectID, changes models.AppointmentChanges) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, changes)
	saved, _ := args.Get(0).(*models.Appointment)
	return saved, args.Error(1)
}

func (m *mockAppointmentRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type scheduleFixture struct {
	usecase      *scheduleUsecase
	users        *mockUserRepository
	appointments *mockAppointmentRepository
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	normalizer, err := timezone.New("Asia/Manila")
	require.NoError(t, err)

	users := &mockUserRepository{}
	appointments := &mockAppointmentRepository{}
	uc := newScheduleUsecase(
		&memoryDefaultTimeSlots{records: map[primitive.ObjectID]models.DefaultTimeSlots{}},
		&memoryDaytimeSlots{records: map[daytimeKey]models.DaytimeSlots{}},
		users,
		appointments,
		normalizer,
		zap.NewNop(),
	)
	uc.Now = func() time.Time { return time.Date(2024, 7, 1, 1, 0, 0, 0, time.UTC) }
	return &scheduleFixture{usecase: uc, users: users, appointments: appointments}
}

func doctorSession(id primitive.ObjectID) *models.Session {
	return &models.Session{UserID: id.Hex(), Username: "jose.rizal10", Role: constvars.RoleSurgeon}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestScheduleUsecase_DefaultThenOverride(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t)
	doctorID := primitive.NewObjectID()
	session := doctorSession(doctorID)

	_, err := f.usecase.SaveDefaultTimeSlots(ctx, session, &requests.SaveDefaultTimeSlots{
		TimeSlots: []string{"2:00 pm", "9:00 am"},
	})
	require.NoError(t, err)

	availability, err := f.usecase.GetDaytimeSlots(ctx, session, "2024-07-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 am", "2:00 pm"}, availability.TimeSlots)
	assert.Equal(t, models.AvailabilitySourceDefault, availability.Source)

	_, err = f.usecase.SaveDaytimeSlots(ctx, session, &requests.SaveDaytimeSlots{
		Date:      "2024-07-10",
		TimeSlots: []string{"9:00 am"},
	})
	require.NoError(t, err)

	availability, err = f.usecase.GetDaytimeSlots(ctx, session, "2024-07-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 am"}, availability.TimeSlots)
	assert.Equal(t, models.AvailabilitySourceOverride, availability.Source)
	assert.Equal(t, "2024-07-10", availability.Date)

	t.Run("other days keep the default", func(t *testing.T) {
		availability, err := f.usecase.GetDaytimeSlots(ctx, session, "2024-07-11")
		require.NoError(t, err)
		assert.Equal(t, []string{"9:00 am", "2:00 pm"}, availability.TimeSlots)
	})

	t.Run("instant inside the business day maps to the same override", func(t *testing.T) {
		// 2024-07-10 07:30 in Manila is 2024-07-09 23:30 UTC.
		availability, err := f.usecase.GetDaytimeSlots(ctx, session, "2024-07-09T23:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, []string{"9:00 am"}, availability.TimeSlots)
	})

	t.Run("another doctor's override is untouched", func(t *testing.T) {
		other := doctorSession(primitive.NewObjectID())
		_, err := f.usecase.SaveDaytimeSlots(ctx, other, &requests.SaveDaytimeSlots{
			Date:              "2024-07-10",
			AllDayUnavailable: true,
		})
		require.NoError(t, err)

		availability, err := f.usecase.GetDaytimeSlots(ctx, session, "2024-07-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"9:00 am"}, availability.TimeSlots)
	})
}

func TestScheduleUsecase_AllDayUnavailable(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t)
	session := doctorSession(primitive.NewObjectID())

	_, err := f.usecase.SaveDefaultTimeSlots(ctx, session, &requests.SaveDefaultTimeSlots{TimeSlots: []string{"9:00 am"}})
	require.NoError(t, err)
	_, err = f.usecase.SaveDaytimeSlots(ctx, session, &requests.SaveDaytimeSlots{
		Date:              "2024-07-10",
		TimeSlots:         []string{"9:00 am", "10:00 am"},
		AllDayUnavailable: true,
	})
	require.NoError(t, err)

	availability, err := f.usecase.GetDaytimeSlots(ctx, session, "2024-07-10")
	require.NoError(t, err)
	assert.Empty(t, availability.TimeSlots)
	assert.True(t, availability.AllDayUnavailable)
}

func TestScheduleUsecase_NoRecords(t *testing.T) {
	f := newScheduleFixture(t)
	session := doctorSession(primitive.NewObjectID())

	availability, err := f.usecase.GetDaytimeSlots(context.Background(), session, "2024-07-10")
	require.NoError(t, err)
	assert.Equal(t, []string{}, availability.TimeSlots)
	assert.Equal(t, models.AvailabilitySourceNone, availability.Source)

	defaults, err := f.usecase.GetDefaultTimeSlots(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, []string{}, defaults.TimeSlots)
}

func TestScheduleUsecase_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t)

	t.Run("nurse cannot save slots", func(t *testing.T) {
		nurse := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleNurse}
		_, err := f.usecase.SaveDefaultTimeSlots(ctx, nurse, &requests.SaveDefaultTimeSlots{})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := f.usecase.SaveDefaultTimeSlots(ctx, doctorSession(primitive.NewObjectID()), &requests.SaveDefaultTimeSlots{
			TimeSlots: []string{"3:30 am"},
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := f.usecase.GetDaytimeSlots(ctx, doctorSession(primitive.NewObjectID()), "10/07/2024")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestScheduleUsecase_GetAvailability(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t)
	doctorID := primitive.NewObjectID()

	_, err := f.usecase.SaveDefaultTimeSlots(ctx, doctorSession(doctorID), &requests.SaveDefaultTimeSlots{
		TimeSlots: []string{"4:00 pm", "8:00 am"},
	})
	require.NoError(t, err)

	f.users.On("FindByID", mock.Anything, doctorID).
		Return(&models.User{ID: doctorID, Role: constvars.RoleSurgeon}, nil)
	missing := primitive.NewObjectID()
	f.users.On("FindByID", mock.Anything, missing).Return(nil, nil)

	availability, err := f.usecase.GetAvailability(ctx, &requests.GetAvailability{
		DoctorUserID: doctorID.Hex(),
		Date:         "2024-07-10",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"8:00 am", "4:00 pm"}, availability.TimeSlots)

	_, err = f.usecase.GetAvailability(ctx, &requests.GetAvailability{
		DoctorUserID: missing.Hex(),
		Date:         "2024-07-10",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestScheduleUsecase_GetDoctorsAvailability(t *testing.T) {
	ctx := context.Background()
	f := newScheduleFixture(t)
	doctorID := primitive.NewObjectID()

	_, err := f.usecase.SaveDefaultTimeSlots(ctx, doctorSession(doctorID), &requests.SaveDefaultTimeSlots{
		TimeSlots: []string{"9:00 am", "10:00 am", "2:00 pm"},
	})
	require.NoError(t, err)

	f.users.On("FindByRoles", mock.Anything, []string{constvars.RoleSurgeon}).
		Return([]models.User{{ID: doctorID, Username: "jose.rizal10", Role: constvars.RoleSurgeon}}, nil)
	f.appointments.On("FindBookedTimes", mock.Anything, doctorID, mock.Anything, mock.Anything).
		Return([]string{"2:00 pm", "9:00 am"}, nil)

	result, err := f.usecase.GetDoctorsAvailability(ctx, &requests.GetDoctorsAvailability{
		DoctorType: constvars.RoleSurgeon,
		Date:       "2024-07-10",
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "jose.rizal10", result[0].Doctor.Username)
	assert.Equal(t, []string{"9:00 am", "10:00 am", "2:00 pm"}, result[0].TimeSlots)
	assert.Equal(t, []string{"9:00 am", "2:00 pm"}, result[0].BookedSlots)

	f.appointments.AssertCalled(t, "FindBookedTimes", mock.Anything, doctorID,
		time.Date(2024, 7, 9, 16, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 10, 16, 0, 0, 0, time.UTC),
	)
}
