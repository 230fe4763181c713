package attendances

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/timezone"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type attendanceUsecase struct {
	AttendanceRepository contracts.AttendanceRepository
	Normalizer           *timezone.Normalizer
	Log                  *zap.Logger
	Now                  func() time.Time
}

var (
	attendanceUsecaseInstance contracts.AttendanceUsecase
	onceAttendanceUsecase     sync.Once
)

func NewAttendanceUsecase(
	attendanceRepository contracts.AttendanceRepository,
	normalizer *timezone.Normalizer,
	logger *zap.Logger,
) contracts.AttendanceUsecase {
	onceAttendanceUsecase.Do(func() {
		attendanceUsecaseInstance = newAttendanceUsecase(attendanceRepository, normalizer, logger)
	})
	return attendanceUsecaseInstance
}

func newAttendanceUsecase(attendanceRepository contracts.AttendanceRepository, normalizer *timezone.Normalizer, logger *zap.Logger) *attendanceUsecase {
	return &attendanceUsecase{
		AttendanceRepository: attendanceRepository,
		Normalizer:           normalizer,
		Log:                  logger,
		Now:                  time.Now,
	}
}

// TimeIn opens today's record. The storage index keeps a second open record
// for the same business day from being inserted by a concurrent request.
func (uc *attendanceUsecase) TimeIn(ctx context.Context, session *models.Session) (*models.Attendance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.TimeIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	userID, err := utils.ParseObjectID(session.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	dayStart, dayEnd := uc.Normalizer.DayBounds(now)

	open, err := uc.AttendanceRepository.FindOpen(ctx, userID, dayStart, dayEnd)
	if err != nil {
		uc.Log.Error("attendanceUsecase.TimeIn error fetching open attendance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if open != nil {
		err := exceptions.ErrAttendanceAlreadyOpen(open.ID.Hex())
		uc.Log.Error("attendanceUsecase.TimeIn error attendance already open",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAttendanceIDKey, open.ID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	created, err := uc.AttendanceRepository.Insert(ctx, &models.Attendance{
		UserID: userID,
		Day:    uc.Normalizer.FormatDay(now),
		TimeIn: now,
	})
	if err != nil {
		uc.Log.Error("attendanceUsecase.TimeIn error inserting attendance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("attendanceUsecase.TimeIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttendanceIDKey, created.ID.Hex()),
	)
	return created, nil
}

// TimeOut closes today's open record. The stored time-out is always later
// than the time-in, even when both land in the same millisecond.
func (uc *attendanceUsecase) TimeOut(ctx context.Context, session *models.Session) (*models.Attendance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.TimeOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	userID, err := utils.ParseObjectID(session.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	dayStart, dayEnd := uc.Normalizer.DayBounds(now)

	open, err := uc.AttendanceRepository.FindOpen(ctx, userID, dayStart, dayEnd)
	if err != nil {
		uc.Log.Error("attendanceUsecase.TimeOut error fetching open attendance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if open == nil {
		err := exceptions.ErrNoOpenAttendance()
		uc.Log.Error("attendanceUsecase.TimeOut error no open attendance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !now.After(open.TimeIn) {
		now = open.TimeIn.Add(time.Millisecond)
	}

	closed, err := uc.AttendanceRepository.CloseOpen(ctx, open.ID, now)
	if err != nil {
		uc.Log.Error("attendanceUsecase.TimeOut error closing attendance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAttendanceIDKey, open.ID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	if closed == nil {
		return nil, exceptions.ErrNoOpenAttendance()
	}

	uc.Log.Info("attendanceUsecase.TimeOut succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttendanceIDKey, closed.ID.Hex()),
	)
	return closed, nil
}

func (uc *attendanceUsecase) FindMine(ctx context.Context, session *models.Session, request *requests.FindAttendance) ([]models.AttendanceDetail, error) {
	scoped := *request
	scoped.UserID = session.UserID
	return uc.find(ctx, "attendanceUsecase.FindMine", &scoped)
}

func (uc *attendanceUsecase) FindAll(ctx context.Context, request *requests.FindAttendance) ([]models.AttendanceDetail, error) {
	return uc.find(ctx, "attendanceUsecase.FindAll", request)
}

func (uc *attendanceUsecase) find(ctx context.Context, caller string, request *requests.FindAttendance) ([]models.AttendanceDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	var filter models.AttendanceFilter

	userID, err := utils.ParseOptionalObjectID(request.UserID)
	if err != nil {
		return nil, err
	}
	filter.UserID = userID

	if request.Date != "" {
		day, err := uc.Normalizer.ParseDay(request.Date)
		if err != nil {
			return nil, err
		}
		dayStart, dayEnd := uc.Normalizer.DayBounds(day)
		filter.DayStart, filter.DayEnd = &dayStart, &dayEnd
	}

	details, err := uc.AttendanceRepository.FindDetails(ctx, filter)
	if err != nil {
		uc.Log.Error(caller+" error fetching attendance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(details)),
	)
	return details, nil
}

// now is truncated to what MongoDB can store.
func (uc *attendanceUsecase) now() time.Time {
	return uc.Now().UTC().Truncate(time.Millisecond)
}
