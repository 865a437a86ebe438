package admin

import (
	"dulcemasa_server/handling"
	"dulcemasa_server/lib"
	"dulcemasa_server/services"
	"fmt"
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// ListProducts handles GET /admin/productos: every product, active or not,
// with its merged gallery.
func (ar *AdminRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	products, err := ar.productService.ListAdmin(r.Context())
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"productos": products,
			"count":     len(products),
		}),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	body, err := lib.ExtractAndValidateBody[services.ProductCreateInput](r)
	if err != nil {
		handling.HandleError(err, "error.products.invalidBody", ar.logger, w)
		return
	}

	product, err := ar.productService.Create(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "error.products.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.WithMessage("Product created successfully"),
		gecho.Send(),
	)
}

// UpdateProduct handles PUT /admin/productos/{id}. The body is a partial
// patch; absent fields are untouched and explicit nulls clear nullable
// columns.
func (ar *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.products.invalidId", ar.logger, w)
		return
	}

	body, err := lib.ExtractAndValidateBody[services.ProductUpdateInput](r)
	if err != nil {
		handling.HandleError(err, "error.products.invalidBody", ar.logger, w)
		return
	}

	product, err := ar.productService.Update(r.Context(), id, body)
	if err != nil {
		handling.HandleError(err, "error.products.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.WithMessage("Product updated successfully"),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.products.invalidId", ar.logger, w)
		return
	}

	if err := ar.productService.Delete(r.Context(), id); err != nil {
		handling.HandleError(err, "error.products.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"ok": true}),
		gecho.WithMessage("Product deleted successfully"),
		gecho.Send(),
	)
}

// coverInput sets or clears the legacy cover pointer directly. A null url
// clears it. When the blob lives under this product's gallery prefix the
// path is accepted as a sanity check, nothing more.
type coverInput struct {
	URL  lib.Optional[string] `json:"url"`
	Path string               `json:"path"`
}

// SetProductCover handles POST /admin/productos/{id}/imagen.
func (ar *AdminRoutesManager) SetProductCover(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.products.invalidId", ar.logger, w)
		return
	}

	body, err := lib.ExtractAndValidateBody[coverInput](r)
	if err != nil {
		handling.HandleError(err, "error.images.invalidBody", ar.logger, w)
		return
	}
	if !body.URL.Set {
		handling.HandleError(fmt.Errorf("url field is required: %w", lib.ErrInvalidInput), "error.images.invalidBody", ar.logger, w)
		return
	}
	if body.URL.Valid && body.Path != "" && !strings.HasPrefix(body.Path, "productos/"+id.String()+"/") {
		handling.HandleError(fmt.Errorf("path does not belong to this product: %w", lib.ErrInvalidInput), "error.images.invalidBody", ar.logger, w)
		return
	}

	if err := ar.imageService.SetProductCover(r.Context(), id, body.URL.Ptr()); err != nil {
		handling.HandleError(err, "error.images.failedToSetCover", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"imagen_url": body.URL.Ptr()}),
		gecho.WithMessage("Cover updated successfully"),
		gecho.Send(),
	)
}
