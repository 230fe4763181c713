package contracts

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/dto/requests"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DefaultTimeSlotsRepository interface {
	FindByDoctor(ctx context.Context, doctorUserID primitive.ObjectID) (*models.DefaultTimeSlots, error)
	Upsert(ctx context.Context, record *models.DefaultTimeSlots) (*models.DefaultTimeSlots, error)
	EnsureIndexes(ctx context.Context) error
}

type DaytimeSlotsRepository interface {
	FindByDoctorAndDay(ctx context.Context, doctorUserID primitive.ObjectID, day time.Time) (*models.DaytimeSlots, error)
	Upsert(ctx context.Context, record *models.DaytimeSlots) (*models.DaytimeSlots, error)
	EnsureIndexes(ctx context.Context) error
}

type ScheduleUsecase interface {
	GetDefaultTimeSlots(ctx context.Context, session *models.Session) (*models.DefaultTimeSlots, error)
	SaveDefaultTimeSlots(ctx context.Context, session *models.Session, request *requests.SaveDefaultTimeSlots) (*models.DefaultTimeSlots, error)
	GetDaytimeSlots(ctx context.Context, session *models.Session, date string) (*models.Availability, error)
	SaveDaytimeSlots(ctx context.Context, session *models.Session, request *requests.SaveDaytimeSlots) (*models.DaytimeSlots, error)
	Resolve(ctx context.Context, doctorUserID primitive.ObjectID, day time.Time) (*models.Availability, error)
	GetAvailability(ctx context.Context, request *requests.GetAvailability) (*models.Availability, error)
	GetDoctorsAvailability(ctx context.Context, request *requests.GetDoctorsAvailability) ([]models.DoctorAvailability, error)
}
