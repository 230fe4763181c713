package controllers

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("AppointmentController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	request := new(requests.CreateAppointment)
	if err := decodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Create(ctx, session, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "AppointmentController.Create AppointmentUsecase.Create", err)
		return
	}

	ctrl.Log.Info("AppointmentController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, appointment)
}

// Update applies a partial edit. The appointment id comes from the path or,
// for the collection route, from the id query parameter.
func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := appointmentIDFromRequest(r)
	ctrl.Log.Info("AppointmentController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.QueryParamsID))
		return
	}

	request := new(requests.UpdateAppointment)
	if err := decodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Update(ctx, session, appointmentID, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "AppointmentController.Update AppointmentUsecase.Update", err)
		return
	}

	ctrl.Log.Info("AppointmentController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, appointment.Status))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, appointment)
}

func (ctrl *AppointmentController) MarkDone(w http.ResponseWriter, r *http.Request) {
	ctrl.changeStatus(w, r, "AppointmentController.MarkDone", ctrl.AppointmentUsecase.MarkDone)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctrl.changeStatus(w, r, "AppointmentController.Cancel", ctrl.AppointmentUsecase.Cancel)
}

func (ctrl *AppointmentController) changeStatus(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	change func(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error),
) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	appointment, err := change(ctx, session, appointmentID)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, operation, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, appointment.Status))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, appointment)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.FindByID(ctx, appointmentID)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "AppointmentController.FindByID AppointmentUsecase.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentGetSuccess, appointment)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	request := &requests.FindAppointments{
		Date:         utils.GetQueryParam(r, constvars.QueryParamsDate),
		CreatorID:    utils.GetQueryParam(r, constvars.QueryParamsCreatorID),
		DoctorUserID: utils.GetQueryParam(r, constvars.QueryParamsDoctorUserID),
		Status:       utils.GetQueryParam(r, constvars.QueryParamsStatus),
	}
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.Find(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "AppointmentController.FindAll AppointmentUsecase.Find", err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentsGetSuccess, appointments)
}

func appointmentIDFromRequest(r *http.Request) string {
	if appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID); appointmentID != "" {
		return appointmentID
	}
	return utils.GetQueryParam(r, constvars.QueryParamsID)
}
