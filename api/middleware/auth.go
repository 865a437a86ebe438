package middleware

import (
	"context"
	"dulcemasa_server/lib"
	"dulcemasa_server/structs"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing request-scoped data
type contextKey string

const AdminContextKey contextKey = "admin"

// AdminAuthMiddleware guards the back office. It resolves the session cookie
// to a verified email and checks it against the allow-list. Handlers behind
// it re-run the same check through GetAdminFromContext, so a route wired
// outside this middleware still cannot skip the gate.
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := lib.ResolveAdmin(r, mw.cfg.Admin)
		if err != nil {
			if errors.Is(err, lib.ErrForbidden) {
				mw.logger.Warn("Authenticated caller not on the admin allow-list",
					gecho.Field("path", r.URL.Path),
				)
				gecho.Forbidden(w, gecho.WithMessage("Admin access required"), gecho.Send())
				return
			}
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing session"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminFromContext extracts the resolved admin identity from the request context
func GetAdminFromContext(ctx context.Context) (*structs.AdminIdentity, bool) {
	admin, ok := ctx.Value(AdminContextKey).(*structs.AdminIdentity)
	return admin, ok
}
