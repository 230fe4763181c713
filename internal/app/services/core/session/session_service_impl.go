package session

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
	Now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = newSessionService(redisRepository, ttl, logger)
	})
	return sessionServiceInstance
}

func newSessionService(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) *sessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
		Now:             time.Now,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
	)

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID.Hex(),
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: svc.Now().Add(svc.TTL).UTC(),
	}

	err := svc.RedisRepository.SetJSON(ctx, sessionKey(session.SessionID), session, svc.TTL)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session := new(models.Session)
	found, err := svc.RedisRepository.GetJSON(ctx, sessionKey(sessionID), session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrSessionNotFound(errors.New(sessionID))
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.DeleteSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionKeyPrefix + sessionID
}
