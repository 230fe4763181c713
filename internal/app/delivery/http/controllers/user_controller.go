package controllers

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("UserController.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateUser)
	if err := decodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	response, err := ctrl.UserUsecase.CreateUser(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "UserController.CreateUser UserUsecase.CreateUser", err)
		return
	}

	ctrl.Log.Info("UserController.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, response.User.Username))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UserCreatedSuccess, response)
}

func (ctrl *UserController) FindUsers(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	request := &requests.FindUsers{Role: utils.GetQueryParam(r, constvars.QueryParamsRole)}
	ctrl.Log.Info("UserController.FindUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamsRole))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	users, err := ctrl.UserUsecase.FindUsers(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "UserController.FindUsers UserUsecase.FindUsers", err)
		return
	}

	ctrl.Log.Info("UserController.FindUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UsersGetSuccess, users)
}

func (ctrl *UserController) FindDoctors(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	request := &requests.FindUsers{Role: utils.GetQueryParam(r, constvars.QueryParamsRole)}
	ctrl.Log.Info("UserController.FindDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.QueryParamsRole))
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	doctors, err := ctrl.UserUsecase.FindDoctors(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "UserController.FindDoctors UserUsecase.FindDoctors", err)
		return
	}

	ctrl.Log.Info("UserController.FindDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(doctors)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsGetSuccess, doctors)
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("UserController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	user, err := ctrl.UserUsecase.GetProfile(ctx, session)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "UserController.GetProfile UserUsecase.GetProfile", err)
		return
	}

	ctrl.Log.Info("UserController.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, user)
}

func (ctrl *UserController) SetupAccount(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, err := utils.GetSessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("UserController.SetupAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	request := new(requests.SetupAccount)
	if err := decodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	if err := ctrl.UserUsecase.SetupAccount(ctx, session, request); err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "UserController.SetupAccount UserUsecase.SetupAccount", err)
		return
	}

	ctrl.Log.Info("UserController.SetupAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AccountSetupSuccess, nil)
}
