package utils

import (
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/dto/responses"
	"clinic-staff-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BuildErrorResponse writes err as {success:false, message}. Only the client
// message of a CustomError leaves the process; anything else becomes a 500.
// A booking conflict also carries the id of the appointment holding the slot.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := responses.ResponseDTO{Message: constvars.ErrClientSomethingWrongWithApplication}
	code := constvars.StatusInternalServerError

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		response.Message = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any(constvars.LoggingLocationsKey, customErr.Locations),
		)
	} else {
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, code))
	}

	var booked *exceptions.SlotAlreadyBooked
	if errors.As(err, &booked) && booked.ExistingAppointmentID != "" {
		response.Data = responses.SlotConflict{ExistingAppointmentID: booked.ExistingAppointmentID}
	}
	writeJSON(w, code, response)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
