package middleware

import (
	"net/http"

	"github.com/angelmondragon/typed-api-response/api/responses"
	"github.com/angelmondragon/typed-api-response/pkg/capture"
	pkgerrors "github.com/angelmondragon/typed-api-response/pkg/errors"
)

// Recoverer converts a handler panic into an internal-error envelope.
func Recoverer(wr *responses.Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := capture.Do(func() { next.ServeHTTP(w, r) })
			if err != nil {
				wr.WriteError(r.Context(), w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}
		})
	}
}
