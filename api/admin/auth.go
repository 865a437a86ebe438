package admin

import (
	"dulcemasa_server/api/middleware"
	"dulcemasa_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// requireAdmin re-runs the allow-list check inside the handler. The
// middleware already gates the route; this second check keeps a handler safe
// even if it is ever mounted on an unguarded router.
func (ar *AdminRoutesManager) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.GetAdminFromContext(r.Context()); ok {
		return true
	}

	if _, err := lib.ResolveAdmin(r, ar.cfg.Admin); err != nil {
		if errors.Is(err, lib.ErrForbidden) {
			gecho.Forbidden(w, gecho.WithMessage("Admin access required"), gecho.Send())
		} else {
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing session"), gecho.Send())
		}
		return false
	}
	return true
}
