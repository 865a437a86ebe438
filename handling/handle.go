package handling

import (
	"dulcemasa_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError maps a service error onto the wire. Sentinel errors carry the
// status; anything unrecognized is a 500 and gets logged with a caller frame.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(ve.Errors),
			gecho.Send(),
		)
		return
	}

	switch {
	case errors.Is(err, lib.ErrInvalidInput):
		gecho.BadRequest(w, gecho.WithMessage(msg), gecho.WithData(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrUnauthorized):
		gecho.Unauthorized(w, gecho.WithMessage(msg), gecho.Send())
	case errors.Is(err, lib.ErrForbidden):
		gecho.Forbidden(w, gecho.WithMessage(msg), gecho.Send())
	default:
		logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
		gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
	}
}
