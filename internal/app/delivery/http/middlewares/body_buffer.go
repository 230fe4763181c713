package middlewares

import (
	"net/http"
)

// BodyLimit caps request bodies at HTTP.RequestBodyLimitInMegabyte. Reading
// past the limit fails inside the JSON decoder and surfaces as a parse error.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.HTTP.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
