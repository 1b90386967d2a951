package rest

import (
	"context"
	"net/http"

	"aqar-service/internal/core/port"
)

// SessionCookieName is the HttpOnly cookie carrying the opaque session
// token.
const SessionCookieName = "aqar_session"

type contextKey string

const adminIDKey = contextKey("adminID")

// SessionAuthMiddleware guards the admin routes. Requests without a valid,
// unexpired session get a JSON 401.
func SessionAuthMiddleware(sessions port.SessionStorePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			adminID, ok := sessions.Get(cookie.Value)
			if !ok {
				WriteJSONError(w, http.StatusUnauthorized, "session is invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// adminIDFromContext returns the authenticated admin id placed there by the
// middleware.
func adminIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(adminIDKey).(int)
	return id, ok
}
