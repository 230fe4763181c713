package controllers

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/dto/responses"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/timeslots"
	"clinic-staff-service/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type ScheduleController struct {
	Log             *zap.Logger
	ScheduleUsecase contracts.ScheduleUsecase
	InternalConfig  *config.InternalConfig
}

func NewScheduleController(logger *zap.Logger, scheduleUsecase contracts.ScheduleUsecase, internalConfig *config.InternalConfig) *ScheduleController {
	return &ScheduleController{
		Log:             logger,
		ScheduleUsecase: scheduleUsecase,
		InternalConfig:  internalConfig,
	}
}

// GetTimeSlots serves the clinic's slot catalog, optionally narrowed to one
// period of the day.
func (ctrl *ScheduleController) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	period := utils.GetQueryParam(r, constvars.QueryParamsPeriod)
	ctrl.Log.Info("ScheduleController.GetTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, period))

	response := responses.TimeSlotCatalog{
		TimeSlots:      timeslots.AllSlots(),
		DefaultEnabled: timeslots.DefaultEnabled(),
	}
	if period != "" {
		if !timeslots.IsValidPeriod(period) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(errors.New(period), constvars.QueryParamsPeriod))
			return
		}
		response.TimeSlots = timeslots.SlotsByPeriod(timeslots.Period(period))
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TimeSlotsGetSuccess, response)
}

func (ctrl *ScheduleController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	request := &requests.GetAvailability{
		DoctorUserID: utils.GetQueryParam(r, constvars.QueryParamsDoctorID),
		Date:         utils.GetQueryParam(r, constvars.QueryParamsDate),
	}
	ctrl.Log.Info("ScheduleController.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	availability, err := ctrl.ScheduleUsecase.GetAvailability(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "ScheduleController.GetAvailability ScheduleUsecase.GetAvailability", err)
		return
	}

	ctrl.Log.Info("ScheduleController.GetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotsCountKey, len(availability.TimeSlots)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityGetSuccess, availability)
}

func (ctrl *ScheduleController) GetDoctorsAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	request := &requests.GetDoctorsAvailability{
		DoctorType: utils.GetQueryParam(r, constvars.QueryParamsDoctorType),
		Date:       utils.GetQueryParam(r, constvars.QueryParamsDate),
	}
	ctrl.Log.Info("ScheduleController.GetDoctorsAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	result, err := ctrl.ScheduleUsecase.GetDoctorsAvailability(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "ScheduleController.GetDoctorsAvailability ScheduleUsecase.GetDoctorsAvailability", err)
		return
	}

	ctrl.Log.Info("ScheduleController.GetDoctorsAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityGetSuccess, result)
}

func (ctrl *ScheduleController) GetDefaultTimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("ScheduleController.GetDefaultTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	record, err := ctrl.ScheduleUsecase.GetDefaultTimeSlots(ctx, session)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "ScheduleController.GetDefaultTimeSlots ScheduleUsecase.GetDefaultTimeSlots", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DefaultTimeSlotsGetSuccess, record)
}

func (ctrl *ScheduleController) SaveDefaultTimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("ScheduleController.SaveDefaultTimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	request := new(requests.SaveDefaultTimeSlots)
	if err := decodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	record, err := ctrl.ScheduleUsecase.SaveDefaultTimeSlots(ctx, session, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "ScheduleController.SaveDefaultTimeSlots ScheduleUsecase.SaveDefaultTimeSlots", err)
		return
	}

	ctrl.Log.Info("ScheduleController.SaveDefaultTimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotsCountKey, len(record.TimeSlots)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DefaultTimeSlotsSaveSuccess, record)
}

func (ctrl *ScheduleController) GetDaytimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	date := utils.GetQueryParam(r, constvars.QueryParamsDate)
	ctrl.Log.Info("ScheduleController.GetDaytimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDateKey, date))

	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(nil, constvars.QueryParamsDate))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	availability, err := ctrl.ScheduleUsecase.GetDaytimeSlots(ctx, session, date)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "ScheduleController.GetDaytimeSlots ScheduleUsecase.GetDaytimeSlots", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DaytimeSlotsGetSuccess, availability)
}

func (ctrl *ScheduleController) SaveDaytimeSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("ScheduleController.SaveDaytimeSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	request := new(requests.SaveDaytimeSlots)
	if err := utils.ParseJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if request.Date == "" {
		request.Date = utils.GetQueryParam(r, constvars.QueryParamsDate)
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	record, err := ctrl.ScheduleUsecase.SaveDaytimeSlots(ctx, session, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "ScheduleController.SaveDaytimeSlots ScheduleUsecase.SaveDaytimeSlots", err)
		return
	}

	ctrl.Log.Info("ScheduleController.SaveDaytimeSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.Bool(constvars.LoggingAvailabilityKey, !record.AllDayUnavailable))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DaytimeSlotsSaveSuccess, record)
}
