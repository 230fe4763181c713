package controllers

import (
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// buildUsecaseError logs a failed usecase call and writes the error response.
func buildUsecaseError(log *zap.Logger, w http.ResponseWriter, requestID, operation string, err error) {
	log.Error(operation+" error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))

	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// decodeAndValidate parses the JSON body into request and runs the struct
// validator on it.
func decodeAndValidate(r *http.Request, request interface{}) error {
	if err := utils.ParseJSONBody(r, request); err != nil {
		return err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
