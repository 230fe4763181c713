package utils

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst, rejecting unknown fields
// and trailing data.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return exceptions.ErrCannotParseJSON(errors.New("request body is empty"))
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	if decoder.More() {
		return exceptions.ErrCannotParseJSON(errors.New("request body must contain a single JSON object"))
	}
	return nil
}

func GetQueryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func GetBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
	return token, token != ""
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetSessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrNotAuthorized(nil)
	}
	return session, nil
}

// DetachRequestContext starts a context for usecase work that is not
// canceled with the client connection but keeps the request values.
func DetachRequestContext(r *http.Request, timeout int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), secondsToDuration(timeout))
}
