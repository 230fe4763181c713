package contracts

import (
	"clinic-staff-service/internal/app/models"
	"context"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
