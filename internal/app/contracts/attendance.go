package contracts

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/dto/requests"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AttendanceRepository interface {
	Insert(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error)
	FindOpen(ctx context.Context, userID primitive.ObjectID, dayStart, dayEnd time.Time) (*models.Attendance, error)
	CloseOpen(ctx context.Context, attendanceID primitive.ObjectID, timeOut time.Time) (*models.Attendance, error)
	FindDetails(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error)
	EnsureIndexes(ctx context.Context) error
}

type AttendanceUsecase interface {
	TimeIn(ctx context.Context, session *models.Session) (*models.Attendance, error)
	TimeOut(ctx context.Context, session *models.Session) (*models.Attendance, error)
	FindMine(ctx context.Context, session *models.Session, request *requests.FindAttendance) ([]models.AttendanceDetail, error)
	FindAll(ctx context.Context, request *requests.FindAttendance) ([]models.AttendanceDetail, error)
}
