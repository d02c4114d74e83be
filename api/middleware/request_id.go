package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/typed-api-response/api/responses"
	"github.com/angelmondragon/typed-api-response/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID propagates or mints a request id, echoes it in the response
// headers and makes it available to envelope meta and to the logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := responses.ContextWithRequestID(r.Context(), reqID)
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
