package users

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

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

func newTestUsecase(repo *mockUserRepository) *userUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.Account.TemporaryPassword = "clinic-staff-temp"
	return newUserUsecase(repo, internalConfig, zap.NewNop())
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestUserUsecase_CreateUser(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateUser{FirstName: "Maria", LastName: "Santos", Role: constvars.RoleNurse}

	t.Run("retries taken usernames", func(t *testing.T) {
		repo := &mockUserRepository{}
		uc := newTestUsecase(repo)
		candidates := []string{"maria.santos07", "maria.santos42"}
		uc.GenerateUsername = func(firstName, lastName string) (string, error) {
			next := candidates[0]
			candidates = candidates[1:]
			return next, nil
		}

		newID := primitive.NewObjectID()
		repo.On("FindByUsername", mock.Anything, "maria.santos07").Return(&models.User{}, nil).Once()
		repo.On("FindByUsername", mock.Anything, "maria.santos42").Return(nil, nil).Once()
		repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(newID.Hex(), nil).Once()

		created, err := uc.CreateUser(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "maria.santos42", created.User.Username)
		assert.Equal(t, newID, created.User.ID)
		assert.Equal(t, "clinic-staff-temp", created.TemporaryPassword)
		assert.True(t, created.User.AccountSetupRequired)
		assert.True(t, utils.CheckPasswordHash("clinic-staff-temp", created.User.Password))
		repo.AssertExpectations(t)
	})

	t.Run("gives up after too many collisions", func(t *testing.T) {
		repo := &mockUserRepository{}
		uc := newTestUsecase(repo)
		uc.GenerateUsername = func(firstName, lastName string) (string, error) { return "maria.santos07", nil }
		repo.On("FindByUsername", mock.Anything, "maria.santos07").Return(&models.User{}, nil)

		_, err := uc.CreateUser(ctx, request)
		require.Error(t, err)
		repo.AssertNumberOfCalls(t, "FindByUsername", constvars.UsernameMaxRetries)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("insert race falls through to the next candidate", func(t *testing.T) {
		repo := &mockUserRepository{}
		uc := newTestUsecase(repo)
		repo.On("FindByUsername", mock.Anything, mock.Anything).Return(nil, nil)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return("", exceptions.ErrUsernameAlreadyExist(nil)).Once()
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil).Once()

		created, err := uc.CreateUser(ctx, request)
		require.NoError(t, err)
		assert.Regexp(t, `^maria\.santos\d{2}$`, created.User.Username)
	})
}

func TestUserUsecase_FindDoctors(t *testing.T) {
	ctx := context.Background()
	repo := &mockUserRepository{}
	uc := newTestUsecase(repo)

	doctor := models.User{ID: primitive.NewObjectID(), Username: "jose.rizal10", Password: "hash", Role: constvars.RoleNeurologist}
	repo.On("FindByRoles", mock.Anything, constvars.DoctorRoles).Return([]models.User{doctor}, nil)
	repo.On("FindByRoles", mock.Anything, []string{constvars.RoleNeurologist}).Return([]models.User{doctor}, nil)

	profiles, err := uc.FindDoctors(ctx, &requests.FindUsers{})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "jose.rizal10", profiles[0].Username)

	_, err = uc.FindDoctors(ctx, &requests.FindUsers{Role: constvars.RoleNeurologist})
	require.NoError(t, err)

	_, err = uc.FindDoctors(ctx, &requests.FindUsers{Role: constvars.RoleNurse})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusCode(t, err))
}

func TestUserUsecase_SetupAccount(t *testing.T) {
	ctx := context.Background()
	repo := &mockUserRepository{}
	uc := newTestUsecase(repo)
	userID := primitive.NewObjectID()
	session := &models.Session{UserID: userID.Hex(), Role: constvars.RoleNurse}

	repo.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil)
	repo.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("s3cure-pass", hash)
	})).Return(nil)

	err := uc.SetupAccount(ctx, session, &requests.SetupAccount{NewPassword: "s3cure-pass", ConfirmPassword: "s3cure-pass"})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	err = uc.SetupAccount(ctx, session, &requests.SetupAccount{NewPassword: "s3cure-pass", ConfirmPassword: "other"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
}

func TestUserUsecase_SeedAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the first admin", func(t *testing.T) {
		repo := &mockUserRepository{}
		uc := newTestUsecase(repo)
		repo.On("CountByRole", mock.Anything, constvars.RoleAdmin).Return(int64(0), nil)
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Username == constvars.AdminUsername &&
				user.Role == constvars.RoleAdmin &&
				utils.CheckPasswordHash("admin_password", user.Password)
		})).Return(primitive.NewObjectID().Hex(), nil)

		created, err := uc.SeedAdmin(ctx, "admin_password")
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("keeps an existing admin", func(t *testing.T) {
		repo := &mockUserRepository{}
		uc := newTestUsecase(repo)
		repo.On("CountByRole", mock.Anything, constvars.RoleAdmin).Return(int64(1), nil)

		created, err := uc.SeedAdmin(ctx, "admin_password")
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLookupUserStagesHidesSecrets(t *testing.T) {
	stages := LookupUserStages(constvars.MongoDBCollectionUsers, "creatorId", "creator")
	require.Len(t, stages, 2)

	projection := PublicProfileProjection()
	for _, field := range []string{"password", "email", "emailVerified"} {
		assert.Equal(t, 0, projection[field])
	}
}
