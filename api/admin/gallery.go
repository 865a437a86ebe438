package admin

import (
	"dulcemasa_server/handling"
	"dulcemasa_server/lib"
	"dulcemasa_server/services"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MonkyMars/gecho"
)

// ListGalleryImages handles GET /admin/productos/{id}/imagenes. The merged
// view includes the legacy cover pseudo-entry when present.
func (ar *AdminRoutesManager) ListGalleryImages(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.products.invalidId", ar.logger, w)
		return
	}

	images, err := ar.imageService.ListImages(r.Context(), id)
	if err != nil {
		handling.HandleError(err, "error.images.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"imagenes": images,
			"count":    len(images),
		}),
		gecho.Send(),
	)
}

// AddGalleryImage handles POST /admin/productos/{id}/imagenes. Two body
// shapes: multipart when the server should upload the blob, JSON
// {url, path, orden?, es_portada?} when the client already uploaded it
// straight to storage.
func (ar *AdminRoutesManager) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.products.invalidId", ar.logger, w)
		return
	}

	ctx := r.Context()

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		contentType, data, err := readUpload(r)
		if err != nil {
			handling.HandleError(err, "error.images.invalidUpload", ar.logger, w)
			return
		}

		var order *int
		if raw := r.FormValue("orden"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				gecho.BadRequest(w, gecho.WithMessage("error.images.invalidOrder"), gecho.Send())
				return
			}
			order = &n
		}
		setCover := r.FormValue("es_portada") == "true"

		image, err := ar.imageService.UploadGalleryImage(ctx, id, contentType, data, order, setCover)
		if err != nil {
			handling.HandleError(err, "error.images.failedToUpload", ar.logger, w)
			return
		}

		gecho.Success(w,
			gecho.WithData(image),
			gecho.WithMessage("Image uploaded successfully"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[services.GalleryImageInput](r)
	if err != nil {
		handling.HandleError(err, "error.images.invalidBody", ar.logger, w)
		return
	}
	if !strings.HasPrefix(body.StoragePath, "productos/"+id.String()+"/") {
		handling.HandleError(fmt.Errorf("path does not belong to this product: %w", lib.ErrInvalidInput), "error.images.invalidBody", ar.logger, w)
		return
	}

	image, err := ar.imageService.AddGalleryImage(ctx, id, body)
	if err != nil {
		handling.HandleError(err, "error.images.failedToRegister", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(image),
		gecho.WithMessage("Image registered successfully"),
		gecho.Send(),
	)
}

// DeleteGalleryImage handles DELETE /admin/productos/{id}/imagenes/{imagenId}.
func (ar *AdminRoutesManager) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	productID, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.products.invalidId", ar.logger, w)
		return
	}
	imageID, err := handling.ParseUUIDParam(r, "imagenId")
	if err != nil {
		handling.HandleError(err, "error.images.invalidId", ar.logger, w)
		return
	}

	if err := ar.imageService.DeleteGalleryImage(r.Context(), productID, imageID); err != nil {
		handling.HandleError(err, "error.images.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"ok": true}),
		gecho.WithMessage("Image deleted successfully"),
		gecho.Send(),
	)
}
