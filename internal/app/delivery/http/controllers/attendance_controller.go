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

	"go.uber.org/zap"
)

type AttendanceController struct {
	Log               *zap.Logger
	AttendanceUsecase contracts.AttendanceUsecase
	InternalConfig    *config.InternalConfig
}

func NewAttendanceController(logger *zap.Logger, attendanceUsecase contracts.AttendanceUsecase, internalConfig *config.InternalConfig) *AttendanceController {
	return &AttendanceController{
		Log:               logger,
		AttendanceUsecase: attendanceUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *AttendanceController) TimeIn(w http.ResponseWriter, r *http.Request) {
	ctrl.record(w, r, "AttendanceController.TimeIn", constvars.TimeInSuccess, ctrl.AttendanceUsecase.TimeIn)
}

func (ctrl *AttendanceController) TimeOut(w http.ResponseWriter, r *http.Request) {
	ctrl.record(w, r, "AttendanceController.TimeOut", constvars.TimeOutSuccess, ctrl.AttendanceUsecase.TimeOut)
}

func (ctrl *AttendanceController) record(
	w http.ResponseWriter,
	r *http.Request,
	operation, successMessage string,
	action func(ctx context.Context, session *models.Session) (*models.Attendance, error),
) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	attendance, err := action(ctx, session)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, operation, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttendanceIDKey, attendance.ID.Hex()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, attendance)
}

func (ctrl *AttendanceController) FindMine(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := &requests.FindAttendance{Date: utils.GetQueryParam(r, constvars.QueryParamsDate)}
	ctrl.Log.Info("AttendanceController.FindMine called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDateKey, request.Date))

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	records, err := ctrl.AttendanceUsecase.FindMine(ctx, session, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "AttendanceController.FindMine AttendanceUsecase.FindMine", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AttendanceGetSuccess, records)
}

func (ctrl *AttendanceController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	request := &requests.FindAttendance{
		Date:   utils.GetQueryParam(r, constvars.QueryParamsDate),
		UserID: utils.GetQueryParam(r, constvars.QueryParamsUserID),
	}
	ctrl.Log.Info("AttendanceController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	records, err := ctrl.AttendanceUsecase.FindAll(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "AttendanceController.FindAll AttendanceUsecase.FindAll", err)
		return
	}

	ctrl.Log.Info("AttendanceController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(records)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AttendanceGetSuccess, records)
}
