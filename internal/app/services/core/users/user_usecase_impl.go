package users

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/dto/responses"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository   contracts.UserRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
	Now              func() time.Time
	GenerateUsername func(firstName, lastName string) (string, error)
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = newUserUsecase(userRepository, internalConfig, logger)
	})
	return userUsecaseInstance
}

func newUserUsecase(userRepository contracts.UserRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *userUsecase {
	return &userUsecase{
		UserRepository:   userRepository,
		InternalConfig:   internalConfig,
		Log:              logger,
		Now:              time.Now,
		GenerateUsername: utils.GenerateUsername,
	}
}

// CreateUser registers a staff member under a generated username and the
// configured temporary password. The account must be set up on first login.
func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.CreatedUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	temporaryPassword := uc.InternalConfig.Account.TemporaryPassword
	hashedPassword, err := utils.HashPassword(temporaryPassword)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Password:             hashedPassword,
		FirstName:            request.FirstName,
		LastName:             request.LastName,
		Email:                request.Email,
		MobileNumber:         request.MobileNumber,
		Address:              request.Address,
		Role:                 request.Role,
		AccountSetupRequired: true,
	}
	user.SetCreatedAtUpdatedAt(uc.Now().UTC())

	for attempt := 1; attempt <= constvars.UsernameMaxRetries; attempt++ {
		user.Username, err = uc.GenerateUsername(request.FirstName, request.LastName)
		if err != nil {
			return nil, exceptions.ErrUsernameGenerationExhausted(err)
		}

		existing, err := uc.UserRepository.FindByUsername(ctx, user.Username)
		if err != nil {
			uc.Log.Error("userUsecase.CreateUser error checking username",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if existing != nil {
			uc.Log.Info("userUsecase.CreateUser username taken, retrying",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUsernameKey, user.Username),
				zap.Int(constvars.LoggingAttemptKey, attempt),
			)
			continue
		}

		userID, err := uc.UserRepository.CreateUser(ctx, user)
		if err != nil {
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict {
				continue
			}
			uc.Log.Error("userUsecase.CreateUser error inserting user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		user.ID, err = utils.ParseObjectID(userID)
		if err != nil {
			return nil, err
		}

		uc.Log.Info("userUsecase.CreateUser succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.String(constvars.LoggingUsernameKey, user.Username),
		)
		return &responses.CreatedUser{User: user, TemporaryPassword: temporaryPassword}, nil
	}

	err = exceptions.ErrUsernameGenerationExhausted(nil)
	uc.Log.Error("userUsecase.CreateUser error generating unique username",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	return nil, err
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.GetProfile error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) FindUsers(ctx context.Context, request *requests.FindUsers) ([]models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	var roles []string
	if request.Role != "" {
		roles = []string{request.Role}
	}

	users, err := uc.UserRepository.FindByRoles(ctx, roles)
	if err != nil {
		uc.Log.Error("userUsecase.FindUsers error fetching users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.FindUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return users, nil
}

// FindDoctors lists doctors of one specialty, or of every specialty when the
// role filter is empty.
func (uc *userUsecase) FindDoctors(ctx context.Context, request *requests.FindUsers) ([]models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	roles := constvars.DoctorRoles
	if request.Role != "" {
		if !models.IsDoctorRole(request.Role) {
			return nil, exceptions.ErrDoctorRoleRequired(request.Role)
		}
		roles = []string{request.Role}
	}

	users, err := uc.UserRepository.FindByRoles(ctx, roles)
	if err != nil {
		uc.Log.Error("userUsecase.FindDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}

	uc.Log.Info("userUsecase.FindDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(profiles)),
	)
	return profiles, nil
}

func (uc *userUsecase) SetupAccount(ctx context.Context, session *models.Session, request *requests.SetupAccount) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.SetupAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if request.NewPassword != request.ConfirmPassword {
		return exceptions.ErrPasswordDoNotMatch(nil)
	}

	user, err := uc.findUser(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("userUsecase.SetupAccount error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.UserRepository.UpdatePassword(ctx, user.ID, hashedPassword)
	if err != nil {
		uc.Log.Error("userUsecase.SetupAccount error updating password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("userUsecase.SetupAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}

// SeedAdmin creates the admin account when no admin exists yet. It reports
// whether an account was created.
func (uc *userUsecase) SeedAdmin(ctx context.Context, password string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.SeedAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	count, err := uc.UserRepository.CountByRole(ctx, constvars.RoleAdmin)
	if err != nil {
		return false, err
	}
	if count > 0 {
		uc.Log.Info("userUsecase.SeedAdmin admin already present",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCountKey, count),
		)
		return false, nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return false, exceptions.ErrHashPassword(err)
	}

	admin := &models.User{
		Username:  constvars.AdminUsername,
		Password:  hashedPassword,
		FirstName: "Clinic",
		LastName:  "Administrator",
		Role:      constvars.RoleAdmin,
	}
	admin.SetCreatedAtUpdatedAt(uc.Now().UTC())

	if _, err := uc.UserRepository.CreateUser(ctx, admin); err != nil {
		uc.Log.Error("userUsecase.SeedAdmin error inserting admin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, err
	}

	uc.Log.Info("userUsecase.SeedAdmin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, constvars.AdminUsername),
	)
	return true, nil
}

func (uc *userUsecase) findUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := utils.ParseObjectID(userID)
	if err != nil {
		return nil, err
	}
	user, err := uc.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNotFound("user")
	}
	return user, nil
}
