package middlewares

import (
	"clinic-staff-service/internal/app/config"
	"clinic-staff-service/internal/pkg/timezone"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access line per request, stamped in the clinic's
// business timezone. An unknown zone falls back to UTC.
func (m *Middlewares) RequestLogger(appConfig config.App, log *logrus.Logger) func(next http.Handler) http.Handler {
	normalizer, err := timezone.New(appConfig.Timezone)
	if err != nil {
		log.WithError(err).Warn("access log falling back to UTC")
		normalizer, _ = timezone.New("UTC")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"at":       normalizer.ToBusinessZone(start).Format(time.RFC3339),
				"remote":   r.RemoteAddr,
				"method":   r.Method,
				"uri":      r.RequestURI,
				"status":   rec.statusCode,
				"bytes":    rec.bytesWritten,
				"duration": time.Since(start).String(),
			}).Info("access")
		})
	}
}
