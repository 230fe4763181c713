package appointments

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/timezone"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	SlotLocker            contracts.SlotLocker
	EventPublisher        contracts.AppointmentEventPublisher
	ConflictGuard         *ConflictGuard
	Normalizer            *timezone.Normalizer
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	Now                   func() time.Time
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	slotLocker contracts.SlotLocker,
	eventPublisher contracts.AppointmentEventPublisher,
	normalizer *timezone.Normalizer,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = newAppointmentUsecase(
			appointmentRepository,
			userRepository,
			slotLocker,
			eventPublisher,
			normalizer,
			internalConfig,
			logger,
		)
	})
	return appointmentUsecaseInstance
}

func newAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	slotLocker contracts.SlotLocker,
	eventPublisher contracts.AppointmentEventPublisher,
	normalizer *timezone.Normalizer,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		SlotLocker:            slotLocker,
		EventPublisher:        eventPublisher,
		ConflictGuard:         NewConflictGuard(appointmentRepository, normalizer),
		Normalizer:            normalizer,
		InternalConfig:        internalConfig,
		Log:                   logger,
		Now:                   time.Now,
	}
}

func (uc *appointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorUserID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeSlotKey, request.Time),
	)

	if !canBook(session) {
		err := exceptions.ErrForbiddenRole(nil, session.Role)
		uc.Log.Error("appointmentUsecase.Create error role not allowed to book",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, session.Role),
			zap.Error(err),
		)
		return nil, err
	}

	creatorID, err := utils.ParseObjectID(session.UserID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.findDoctor(ctx, request.DoctorUserID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if err := matchDoctorType(request.DoctorType, doctor); err != nil {
		uc.Log.Error("appointmentUsecase.Create error doctor type mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, doctor.Role),
			zap.Error(err),
		)
		return nil, err
	}

	day, err := uc.Normalizer.ParseDay(request.Date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error parsing date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment := &models.Appointment{
		DoctorType:                request.DoctorType,
		DoctorUserID:              doctor.ID,
		Date:                      day,
		Time:                      request.Time,
		PatientName:               request.PatientName,
		PatientContactInformation: request.PatientContactInformation,
		PatientAddress:            request.PatientAddress,
		Notes:                     request.Notes,
		CreatorID:                 creatorID,
		Status:                    constvars.AppointmentStatusPending,
	}
	appointment.SetCreatedAtUpdatedAt(uc.Now().UTC())

	var created *models.Appointment
	err = uc.withSlotLock(ctx, appointment.Slot(), func() error {
		if err := uc.ConflictGuard.AssertAvailable(ctx, appointment.Slot(), primitive.NilObjectID); err != nil {
			return err
		}
		created, err = uc.AppointmentRepository.Insert(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error booking slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
			zap.String(constvars.LoggingTimeSlotKey, request.Time),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.AppointmentEventCreated, created)

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID.Hex()),
	)
	return created, nil
}

func (uc *appointmentUsecase) Update(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	return uc.update(ctx, "appointmentUsecase.Update", session, appointmentID, request, request.Status)
}

// Reschedule edits fields only. A requested status is not applied.
func (uc *appointmentUsecase) Reschedule(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	return uc.update(ctx, "appointmentUsecase.Reschedule", session, appointmentID, request, nil)
}

// MarkDone is refused until the scheduled slot has started.
func (uc *appointmentUsecase) MarkDone(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	status := constvars.AppointmentStatusDone
	return uc.update(ctx, "appointmentUsecase.MarkDone", session, appointmentID, &requests.UpdateAppointment{}, &status)
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	status := constvars.AppointmentStatusCancelled
	return uc.update(ctx, "appointmentUsecase.Cancel", session, appointmentID, &requests.UpdateAppointment{}, &status)
}

// update checks the field edits and the status change against the stored
// record, then saves both in one write. Nothing is stored when any check
// fails. A write that changes the status only applies while the stored status
// is still the one read here.
func (uc *appointmentUsecase) update(ctx context.Context, caller string, session *models.Session, appointmentID string, request *requests.UpdateAppointment, status *string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	current, err := uc.findManageable(ctx, session, appointmentID)
	if err != nil {
		uc.Log.Error(caller+" error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	changes, err := uc.buildChanges(ctx, current, request)
	if err != nil {
		uc.Log.Error(caller+" error reading changes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	edited := *current
	moved := applyChanges(&changes, &edited)

	eventType := ""
	if moved {
		eventType = constvars.AppointmentEventRescheduled
	}
	if status != nil {
		eventType, err = uc.planStatus(current, &edited, &changes, moved, *status)
		if err != nil {
			uc.Log.Error(caller+" error changing status",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStatusKey, current.Status),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if changes.IsEmpty() {
		return current, nil
	}
	changes.UpdatedAt = uc.Now().UTC()
	if changes.Status != nil {
		changes.ExpectedStatus = current.Status
	}

	var saved *models.Appointment
	write := func() error {
		saved, err = uc.AppointmentRepository.Update(ctx, current.ID, changes)
		return err
	}
	if moved {
		err = uc.withSlotLock(ctx, edited.Slot(), func() error {
			if err := uc.ConflictGuard.AssertAvailable(ctx, edited.Slot(), current.ID); err != nil {
				return err
			}
			return write()
		})
	} else {
		err = write()
	}
	if err != nil {
		uc.Log.Error(caller+" error saving appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	if eventType != "" {
		uc.publish(ctx, eventType, saved)
	}

	uc.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, saved.Status),
		zap.Bool(constvars.LoggingSlotMovedKey, moved),
	)
	return saved, nil
}

// planStatus adds the requested status to changes and returns the event to
// publish for it. A moved slot is always pending, so only pending may be asked
// for alongside a move.
func (uc *appointmentUsecase) planStatus(current, edited *models.Appointment, changes *models.AppointmentChanges, moved bool, status string) (string, error) {
	if moved {
		if status != constvars.AppointmentStatusPending {
			return "", exceptions.ErrStatusChangeWithSlotMove(status)
		}
		return constvars.AppointmentEventRescheduled, nil
	}

	if err := checkTransition(current.Status, status); err != nil {
		return "", err
	}
	if status == current.Status {
		return "", nil
	}

	eventType := constvars.AppointmentEventCancelled
	if status == constvars.AppointmentStatusDone {
		startsAt, err := scheduledStart(uc.Normalizer, edited)
		if err != nil {
			return "", err
		}
		if uc.Now().Before(startsAt) {
			return "", exceptions.ErrAppointmentNotElapsed(current.ID.Hex(), startsAt.Format(time.RFC3339))
		}
		eventType = constvars.AppointmentEventDone
	}

	changes.Status = &status
	edited.Status = status
	return eventType, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.find(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) Find(ctx context.Context, request *requests.FindAppointments) ([]models.AppointmentDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request),
	)

	filter := models.AppointmentFilter{Status: request.Status}

	if request.Date != "" {
		day, err := uc.Normalizer.ParseDay(request.Date)
		if err != nil {
			return nil, err
		}
		dayStart, dayEnd := uc.Normalizer.DayBounds(day)
		filter.DayStart, filter.DayEnd = &dayStart, &dayEnd
	}

	creatorID, err := utils.ParseOptionalObjectID(request.CreatorID)
	if err != nil {
		return nil, err
	}
	filter.CreatorID = creatorID

	doctorUserID, err := utils.ParseOptionalObjectID(request.DoctorUserID)
	if err != nil {
		return nil, err
	}
	filter.DoctorUserID = doctorUserID

	details, err := uc.AppointmentRepository.FindDetails(ctx, filter)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Find error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.Find succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(details)),
	)
	return details, nil
}

func (uc *appointmentUsecase) find(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	id, err := utils.ParseObjectID(appointmentID)
	if err != nil {
		return nil, err
	}
	appointment, err := uc.AppointmentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrNotFound("appointment")
	}
	return appointment, nil
}

func (uc *appointmentUsecase) findManageable(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.find(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !canManage(session, appointment) {
		return nil, exceptions.ErrForbiddenRole(nil, session.Role)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) findDoctor(ctx context.Context, doctorUserID string) (*models.User, error) {
	id, err := utils.ParseObjectID(doctorUserID)
	if err != nil {
		return nil, err
	}
	doctor, err := uc.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, exceptions.ErrNotFound("doctor")
	}
	return doctor, nil
}

// buildChanges resolves the request against current. Editing the doctor or
// the doctor type checks the resulting pair against the doctor's role.
func (uc *appointmentUsecase) buildChanges(ctx context.Context, current *models.Appointment, request *requests.UpdateAppointment) (models.AppointmentChanges, error) {
	changes := models.AppointmentChanges{
		DoctorType:                request.DoctorType,
		Time:                      request.Time,
		PatientName:               request.PatientName,
		PatientContactInformation: request.PatientContactInformation,
		PatientAddress:            request.PatientAddress,
		Notes:                     request.Notes,
	}

	if request.Date != nil {
		day, err := uc.Normalizer.ParseDay(*request.Date)
		if err != nil {
			return changes, err
		}
		changes.Date = &day
	}

	if request.DoctorUserID == nil && request.DoctorType == nil {
		return changes, nil
	}

	doctorUserID := current.DoctorUserID.Hex()
	if request.DoctorUserID != nil {
		doctorUserID = *request.DoctorUserID
	}
	doctor, err := uc.findDoctor(ctx, doctorUserID)
	if err != nil {
		return changes, err
	}

	doctorType := current.DoctorType
	if request.DoctorType != nil {
		doctorType = *request.DoctorType
	}
	if err := matchDoctorType(doctorType, doctor); err != nil {
		return changes, err
	}

	if request.DoctorUserID != nil {
		changes.DoctorUserID = &doctor.ID
	}
	return changes, nil
}

// withSlotLock runs fn while holding the redis lock for slot, so the
// occupancy check and the write that follows it are not interleaved with
// another booking of the same slot.
func (uc *appointmentUsecase) withSlotLock(ctx context.Context, slot models.SlotKey, fn func() error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ttl := time.Duration(uc.InternalConfig.Scheduling.SlotLockExpTimeInSecond) * time.Second

	lock, err := uc.SlotLocker.Acquire(ctx, slot, ttl)
	if err != nil {
		return err
	}
	if lock == nil {
		return exceptions.ErrSlotLockNotAcquired(fmt.Sprintf("%s %s %s", slot.DoctorUserID.Hex(), uc.Normalizer.FormatDay(slot.Date), slot.Time))
	}
	defer func() {
		if err := uc.SlotLocker.Release(ctx, lock); err != nil {
			uc.Log.Error("appointmentUsecase.withSlotLock error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lock.Key),
				zap.Error(err),
			)
		}
	}()

	return fn()
}

func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := uc.EventPublisher.Publish(ctx, eventType, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
