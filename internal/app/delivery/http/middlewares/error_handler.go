package middlewares

import (
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/utils"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a handler panic into a 500 response. http.ErrAbortHandler
// is re-raised untouched.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			err, ok := recovered.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", recovered)
			}
			m.Log.Error("Recovered from handler panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
				zap.Stack(constvars.LoggingStackKey),
			)
			utils.BuildErrorResponse(m.Log, w, err)
		}()
		next.ServeHTTP(w, r)
	})
}
