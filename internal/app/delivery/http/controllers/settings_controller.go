package controllers

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/requests"
	"clinic-staff-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type SettingsController struct {
	Log             *zap.Logger
	SettingsUsecase contracts.SettingsUsecase
	InternalConfig  *config.InternalConfig
}

func NewSettingsController(logger *zap.Logger, settingsUsecase contracts.SettingsUsecase, internalConfig *config.InternalConfig) *SettingsController {
	return &SettingsController{
		Log:             logger,
		SettingsUsecase: settingsUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SettingsController.GetSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	settings, err := ctrl.SettingsUsecase.GetSettings(ctx)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "SettingsController.GetSettings SettingsUsecase.GetSettings", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SettingsGetSuccess, settings)
}

func (ctrl *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SettingsController.UpdateSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.UpdateSettings)
	if err := decodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := utils.DetachRequestContext(r, ctrl.InternalConfig.HTTP.RequestTimeoutInSecond)
	defer cancel()

	settings, err := ctrl.SettingsUsecase.UpdateSettings(ctx, request)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, requestID, "SettingsController.UpdateSettings SettingsUsecase.UpdateSettings", err)
		return
	}

	ctrl.Log.Info("SettingsController.UpdateSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SettingsUpdateSuccess, settings)
}
