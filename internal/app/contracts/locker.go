package contracts

import (
	"clinic-staff-service/internal/app/models"
	"context"
	"time"
)

type SlotLocker interface {
	// Acquire returns nil without error when another holder owns the slot.
	Acquire(ctx context.Context, slot models.SlotKey, ttl time.Duration) (*models.SlotLock, error)
	Release(ctx context.Context, lock *models.SlotLock) error
}
