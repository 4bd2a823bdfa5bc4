package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/morningfm/front/pkg/ctxutil"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an id, honoring one supplied by the
// caller. The id rides the request context and is echoed back in the
// response so clients can quote it when reporting a failure.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		r = r.WithContext(ctxutil.WithRequestID(r.Context(), id))
		next.ServeHTTP(w, r)
	})
}
