package settings

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type settingsUsecase struct {
	SettingsRepository contracts.SettingsRepository
	Log                *zap.Logger
	Now                func() time.Time
}

var (
	settingsUsecaseInstance contracts.SettingsUsecase
	onceSettingsUsecase     sync.Once
)

func NewSettingsUsecase(settingsRepository contracts.SettingsRepository, logger *zap.Logger) contracts.SettingsUsecase {
	onceSettingsUsecase.Do(func() {
		settingsUsecaseInstance = &settingsUsecase{
			SettingsRepository: settingsRepository,
			Log:                logger,
			Now:                time.Now,
		}
	})
	return settingsUsecaseInstance
}

// GetSettings returns empty settings until an admin saves them.
func (uc *settingsUsecase) GetSettings(ctx context.Context) (*models.Settings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settingsUsecase.GetSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	settings, err := uc.SettingsRepository.Find(ctx)
	if err != nil {
		uc.Log.Error("settingsUsecase.GetSettings error fetching settings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if settings == nil {
		settings = &models.Settings{ID: constvars.SettingsDocumentID}
	}
	return settings, nil
}

func (uc *settingsUsecase) UpdateSettings(ctx context.Context, request *requests.UpdateSettings) (*models.Settings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settingsUsecase.UpdateSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	settings, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if request.Email != nil {
		settings.Email = *request.Email
	}
	if request.MobileNumber != nil {
		settings.MobileNumber = *request.MobileNumber
	}
	if request.Address != nil {
		settings.Address = *request.Address
	}
	settings.UpdatedAt = uc.Now().UTC()

	saved, err := uc.SettingsRepository.Upsert(ctx, settings)
	if err != nil {
		uc.Log.Error("settingsUsecase.UpdateSettings error saving settings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("settingsUsecase.UpdateSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return saved, nil
}
