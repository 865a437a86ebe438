package admin

import (
	"dulcemasa_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// UploadCategoryCover handles POST /admin/categorias/{id}/imagen. The
// previous cover blob is replaced, never accumulated.
func (ar *AdminRoutesManager) UploadCategoryCover(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.categories.invalidId", ar.logger, w)
		return
	}

	contentType, data, err := readUpload(r)
	if err != nil {
		handling.HandleError(err, "error.images.invalidUpload", ar.logger, w)
		return
	}

	url, err := ar.imageService.UploadCategoryCover(r.Context(), id, contentType, data)
	if err != nil {
		handling.HandleError(err, "error.images.failedToUpload", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"imagen_url": url}),
		gecho.WithMessage("Cover uploaded successfully"),
		gecho.Send(),
	)
}

// RemoveCategoryCover handles DELETE /admin/categorias/{id}/imagen. The
// pointer is always cleared, whatever happens to the blob.
func (ar *AdminRoutesManager) RemoveCategoryCover(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.categories.invalidId", ar.logger, w)
		return
	}

	if err := ar.imageService.RemoveCategoryCover(r.Context(), id); err != nil {
		handling.HandleError(err, "error.images.failedToRemove", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"ok": true}),
		gecho.WithMessage("Cover removed successfully"),
		gecho.Send(),
	)
}
