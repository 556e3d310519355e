package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/baechuer/user-directory/internal/pkg/reqctx"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID propagates an inbound request id or mints a fresh one, echoing
// it on the response and into the request context for logs and error bodies.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := reqctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
