package schedules

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/timeslots"
	"clinic-staff-service/internal/pkg/timezone"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	DefaultTimeSlotsRepository contracts.DefaultTimeSlotsRepository
	DaytimeSlotsRepository     contracts.DaytimeSlotsRepository
	UserRepository             contracts.UserRepository
	AppointmentRepository      contracts.AppointmentRepository
	Normalizer                 *timezone.Normalizer
	Log                        *zap.Logger
	Now                        func() time.Time
}

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	defaultTimeSlotsRepository contracts.DefaultTimeSlotsRepository,
	daytimeSlotsRepository contracts.DaytimeSlotsRepository,
	userRepository contracts.UserRepository,
	appointmentRepository contracts.AppointmentRepository,
	normalizer *timezone.Normalizer,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = newScheduleUsecase(
			defaultTimeSlotsRepository,
			daytimeSlotsRepository,
			userRepository,
			appointmentRepository,
			normalizer,
			logger,
		)
	})
	return scheduleUsecaseInstance
}

func newScheduleUsecase(
	defaultTimeSlotsRepository contracts.DefaultTimeSlotsRepository,
	daytimeSlotsRepository contracts.DaytimeSlotsRepository,
	userRepository contracts.UserRepository,
	appointmentRepository contracts.AppointmentRepository,
	normalizer *timezone.Normalizer,
	logger *zap.Logger,
) *scheduleUsecase {
	return &scheduleUsecase{
		DefaultTimeSlotsRepository: defaultTimeSlotsRepository,
		DaytimeSlotsRepository:     daytimeSlotsRepository,
		UserRepository:             userRepository,
		AppointmentRepository:      appointmentRepository,
		Normalizer:                 normalizer,
		Log:                        logger,
		Now:                        time.Now,
	}
}

func (uc *scheduleUsecase) GetDefaultTimeSlots(ctx context.Context, session *models.Session) (*models.DefaultTimeSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetDefaultTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorID, err := doctorIDFromSession(session)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetDefaultTimeSlots error resolving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	record, err := uc.DefaultTimeSlotsRepository.FindByDoctor(ctx, doctorID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetDefaultTimeSlots error fetching default time slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	if record == nil {
		record = &models.DefaultTimeSlots{DoctorUserID: doctorID}
	}
	record.TimeSlots = timeslots.Sort(nonNil(record.TimeSlots))

	uc.Log.Info("scheduleUsecase.GetDefaultTimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotsCountKey, len(record.TimeSlots)),
	)
	return record, nil
}

func (uc *scheduleUsecase) SaveDefaultTimeSlots(ctx context.Context, session *models.Session, request *requests.SaveDefaultTimeSlots) (*models.DefaultTimeSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.SaveDefaultTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorID, err := doctorIDFromSession(session)
	if err != nil {
		uc.Log.Error("scheduleUsecase.SaveDefaultTimeSlots error resolving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	slots, err := normalizeCatalogSlots(request.TimeSlots)
	if err != nil {
		uc.Log.Error("scheduleUsecase.SaveDefaultTimeSlots error validating time slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	saved, err := uc.DefaultTimeSlotsRepository.Upsert(ctx, &models.DefaultTimeSlots{
		DoctorUserID: doctorID,
		TimeSlots:    slots,
		UpdatedAt:    uc.Now().UTC(),
	})
	if err != nil {
		uc.Log.Error("scheduleUsecase.SaveDefaultTimeSlots error upserting default time slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.SaveDefaultTimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID.Hex()),
		zap.Int(constvars.LoggingSlotsCountKey, len(saved.TimeSlots)),
	)
	return saved, nil
}

func (uc *scheduleUsecase) GetDaytimeSlots(ctx context.Context, session *models.Session, date string) (*models.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetDaytimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	doctorID, err := doctorIDFromSession(session)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetDaytimeSlots error resolving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	day, err := uc.Normalizer.ParseDay(date)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetDaytimeSlots error parsing date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.Resolve(ctx, doctorID, day)
}

func (uc *scheduleUsecase) SaveDaytimeSlots(ctx context.Context, session *models.Session, request *requests.SaveDaytimeSlots) (*models.DaytimeSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.SaveDaytimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	doctorID, err := doctorIDFromSession(session)
	if err != nil {
		uc.Log.Error("scheduleUsecase.SaveDaytimeSlots error resolving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	day, err := uc.Normalizer.ParseDay(request.Date)
	if err != nil {
		uc.Log.Error("scheduleUsecase.SaveDaytimeSlots error parsing date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	slots, err := normalizeCatalogSlots(request.TimeSlots)
	if err != nil {
		uc.Log.Error("scheduleUsecase.SaveDaytimeSlots error validating time slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	saved, err := uc.DaytimeSlotsRepository.Upsert(ctx, &models.DaytimeSlots{
		DoctorUserID:      doctorID,
		Date:              day,
		TimeSlots:         slots,
		AllDayUnavailable: request.AllDayUnavailable,
		UpdatedAt:         uc.Now().UTC(),
	})
	if err != nil {
		uc.Log.Error("scheduleUsecase.SaveDaytimeSlots error upserting daytime slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.SaveDaytimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID.Hex()),
		zap.String(constvars.LoggingDateKey, uc.Normalizer.FormatDay(day)),
		zap.Int(constvars.LoggingSlotsCountKey, len(saved.TimeSlots)),
	)
	return saved, nil
}

// Resolve returns the slots a doctor offers on the business day starting at
// day. Missing records are not an error.
func (uc *scheduleUsecase) Resolve(ctx context.Context, doctorUserID primitive.ObjectID, day time.Time) (*models.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	day = uc.Normalizer.StartOfDay(day)

	override, err := uc.DaytimeSlotsRepository.FindByDoctorAndDay(ctx, doctorUserID, day)
	if err != nil {
		uc.Log.Error("scheduleUsecase.Resolve error fetching daytime slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorUserID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	var defaults *models.DefaultTimeSlots
	if override.Kind() == models.OverrideNoRecord {
		defaults, err = uc.DefaultTimeSlotsRepository.FindByDoctor(ctx, doctorUserID)
		if err != nil {
			uc.Log.Error("scheduleUsecase.Resolve error fetching default time slots",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, doctorUserID.Hex()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	resolved := resolveSlots(override, defaults)
	return &models.Availability{
		DoctorUserID:      doctorUserID.Hex(),
		Date:              uc.Normalizer.FormatDay(day),
		TimeSlots:         resolved.Slots,
		Source:            resolved.Source,
		AllDayUnavailable: resolved.AllDayUnavailable,
	}, nil
}

func (uc *scheduleUsecase) GetAvailability(ctx context.Context, request *requests.GetAvailability) (*models.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorUserID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	doctorID, err := utils.ParseObjectID(request.DoctorUserID)
	if err != nil {
		return nil, err
	}

	day, err := uc.Normalizer.ParseDay(request.Date)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetAvailability error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, exceptions.ErrNotFound("doctor")
	}

	availability, err := uc.Resolve(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("scheduleUsecase.GetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, availability.Source),
		zap.Int(constvars.LoggingSlotsCountKey, len(availability.TimeSlots)),
	)
	return availability, nil
}

func (uc *scheduleUsecase) GetDoctorsAvailability(ctx context.Context, request *requests.GetDoctorsAvailability) ([]models.DoctorAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetDoctorsAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.DoctorType),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	day, err := uc.Normalizer.ParseDay(request.Date)
	if err != nil {
		return nil, err
	}
	dayStart, dayEnd := uc.Normalizer.DayBounds(day)

	doctors, err := uc.UserRepository.FindByRoles(ctx, []string{request.DoctorType})
	if err != nil {
		uc.Log.Error("scheduleUsecase.GetDoctorsAvailability error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]models.DoctorAvailability, 0, len(doctors))
	for _, doctor := range doctors {
		availability, err := uc.Resolve(ctx, doctor.ID, day)
		if err != nil {
			return nil, err
		}

		booked, err := uc.AppointmentRepository.FindBookedTimes(ctx, doctor.ID, dayStart, dayEnd)
		if err != nil {
			uc.Log.Error("scheduleUsecase.GetDoctorsAvailability error fetching booked times",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
				zap.Error(err),
			)
			return nil, err
		}

		result = append(result, models.DoctorAvailability{
			Doctor:       doctor.Profile(),
			Availability: *availability,
			BookedSlots:  timeslots.Sort(nonNil(booked)),
		})
	}

	uc.Log.Info("scheduleUsecase.GetDoctorsAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func doctorIDFromSession(session *models.Session) (primitive.ObjectID, error) {
	if session == nil {
		return primitive.NilObjectID, exceptions.ErrNotAuthorized(nil)
	}
	if !session.IsDoctor() {
		return primitive.NilObjectID, exceptions.ErrDoctorRoleRequired(session.Role)
	}
	return utils.ParseObjectID(session.UserID)
}

func normalizeCatalogSlots(labels []string) ([]string, error) {
	slots := timeslots.Normalize(labels)
	for _, label := range slots {
		if !timeslots.IsKnown(label) {
			return nil, exceptions.ErrSlotNotInCatalog(label)
		}
	}
	return slots, nil
}
