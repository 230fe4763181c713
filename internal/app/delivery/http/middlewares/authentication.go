package middlewares

import (
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"clinic-staff-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to a stored session and puts the
// session in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		token, ok := utils.GetBearerToken(r)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate token rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles must run after Authenticate.
func (m *Middlewares) RequireRoles(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := utils.GetSessionFromContext(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if !session.HasRole(roles...) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrForbiddenRole(nil, session.Role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
