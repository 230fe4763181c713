package locker

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/timezone"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	slotLockerInstance contracts.SlotLocker
	onceSlotLocker     sync.Once
)

type slotLocker struct {
	RedisRepository contracts.RedisRepository
	Normalizer      *timezone.Normalizer
	Log             *zap.Logger
	Now             func() time.Time
}

func NewSlotLocker(redisRepository contracts.RedisRepository, normalizer *timezone.Normalizer, logger *zap.Logger) contracts.SlotLocker {
	onceSlotLocker.Do(func() {
		slotLockerInstance = newSlotLocker(redisRepository, normalizer, logger)
	})
	return slotLockerInstance
}

func newSlotLocker(redisRepository contracts.RedisRepository, normalizer *timezone.Normalizer, logger *zap.Logger) *slotLocker {
	return &slotLocker{
		RedisRepository: redisRepository,
		Normalizer:      normalizer,
		Log:             logger,
		Now:             time.Now,
	}
}

// SlotLockKey names the redis key guarding one doctor's time slot on a business day.
func SlotLockKey(normalizer *timezone.Normalizer, slot models.SlotKey) string {
	return fmt.Sprintf(constvars.RedisSlotLockKeyFormat, slot.DoctorUserID.Hex(), normalizer.FormatDay(slot.Date), slot.Time)
}

func (l *slotLocker) Acquire(ctx context.Context, slot models.SlotKey, ttl time.Duration) (*models.SlotLock, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := SlotLockKey(l.Normalizer, slot)
	l.Log.Info("slotLocker.Acquire called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, ttl),
	)

	lock := &models.SlotLock{
		Key:       key,
		Token:     uuid.NewString(),
		ExpiresAt: l.Now().Add(ttl),
	}
	stored, err := l.RedisRepository.SetIfAbsent(ctx, key, lock.Token, ttl)
	if err != nil {
		l.Log.Error("slotLocker.Acquire error calling RedisRepository.SetIfAbsent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !stored {
		l.Log.Info("slotLocker.Acquire slot held elsewhere",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil, nil
	}

	l.Log.Info("slotLocker.Acquire succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return lock, nil
}

// Release is a no-op for a lock that already expired or changed hands.
func (l *slotLocker) Release(ctx context.Context, lock *models.SlotLock) error {
	if lock == nil {
		return nil
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	deleted, err := l.RedisRepository.DeleteIfEquals(ctx, lock.Key, lock.Token)
	if err != nil {
		l.Log.Error("slotLocker.Release error calling RedisRepository.DeleteIfEquals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lock.Key),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		l.Log.Warn("slotLocker.Release lock was no longer held",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lock.Key),
			zap.Time(constvars.LoggingLockExpiresAtKey, lock.ExpiresAt),
		)
	}
	return nil
}
