package contracts

import (
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, sessionID string) error
}
