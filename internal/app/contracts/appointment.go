package contracts

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/dto/requests"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error)
	FindOccupying(ctx context.Context, query models.OccupancyQuery) (*models.Appointment, error)
	FindBookedTimes(ctx context.Context, doctorUserID primitive.ObjectID, dayStart, dayEnd time.Time) ([]string, error)
	FindDetails(ctx context.Context, filter models.AppointmentFilter) ([]models.AppointmentDetail, error)
	Update(ctx context.Context, appointmentID primitive.ObjectID, changes models.AppointmentChanges) (*models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}

type AppointmentUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	Reschedule(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	MarkDone(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error)
	Cancel(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Find(ctx context.Context, request *requests.FindAppointments) ([]models.AppointmentDetail, error)
}

type AppointmentEventPublisher interface {
	Publish(ctx context.Context, eventType string, appointment *models.Appointment) error
}
