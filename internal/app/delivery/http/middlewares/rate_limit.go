package middlewares

import (
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit caps every client IP at RateLimit.RequestsPerSecond per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.RateLimit.RequestsPerSecond,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}

// LoginRateLimit blocks an IP for RateLimit.LoginBlockTimeInMinute after it spends
// its login burst.
func (m *Middlewares) LoginRateLimit() func(next http.Handler) http.Handler {
	limiter := NewRateLimiter(
		m.Log,
		m.InternalConfig.RateLimit.LoginMaxRequests,
		time.Minute,
		time.Duration(m.InternalConfig.RateLimit.LoginBlockTimeInMinute)*time.Minute,
	)
	return limiter.Limit
}
