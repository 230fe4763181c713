package contracts

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/dto/requests"
	"context"
)

type SettingsRepository interface {
	Find(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, settings *models.Settings) (*models.Settings, error)
}

type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, request *requests.UpdateSettings) (*models.Settings, error)
}
