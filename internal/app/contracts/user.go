package contracts

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByRoles(ctx context.Context, roles []string) ([]models.User, error)
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, hashedPassword string) error
	CountByRole(ctx context.Context, role string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.CreatedUser, error)
	GetProfile(ctx context.Context, session *models.Session) (*models.User, error)
	FindUsers(ctx context.Context, request *requests.FindUsers) ([]models.User, error)
	FindDoctors(ctx context.Context, request *requests.FindUsers) ([]models.UserProfile, error)
	SetupAccount(ctx context.Context, session *models.Session, request *requests.SetupAccount) error
	SeedAdmin(ctx context.Context, password string) (bool, error)
}
