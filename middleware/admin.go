package middleware

import (
	"log/slog"
	"net/http"

	"github.com/galacticos-fc/clubsite/services"
)

// RequireAdmin re-resolves the caller's role from the store on every request,
// so a role change takes effect without waiting for token expiry. Every
// non-admin outcome gets the same 401 as a missing session; the response
// never confirms the admin area exists.
func RequireAdmin(access services.AccessService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := OptionalUserID(r.Context())

			decision, _, err := access.CheckAdminAccess(r.Context(), userID)
			if err != nil {
				slog.Error("admin access check failed", "error", err, "user_id", userID)
			}
			if decision != services.AccessGranted {
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
