package admin

import (
	"dulcemasa_server/handling"
	"dulcemasa_server/lib"
	"dulcemasa_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListCategories handles GET /admin/categorias. Inactive categories are
// included; the back office sees everything.
func (ar *AdminRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	categories, err := ar.categoryService.ListAll(r.Context())
	if err != nil {
		handling.HandleError(err, "error.categories.failedToFetch", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categorias": categories,
			"count":      len(categories),
		}),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	body, err := lib.ExtractAndValidateBody[services.CategoryInput](r)
	if err != nil {
		handling.HandleError(err, "error.categories.invalidBody", ar.logger, w)
		return
	}

	category, err := ar.categoryService.Create(r.Context(), body)
	if err != nil {
		handling.HandleError(err, "error.categories.failedToCreate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(category),
		gecho.WithMessage("Category created successfully"),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.categories.invalidId", ar.logger, w)
		return
	}

	body, err := lib.ExtractAndValidateBody[services.CategoryInput](r)
	if err != nil {
		handling.HandleError(err, "error.categories.invalidBody", ar.logger, w)
		return
	}

	category, err := ar.categoryService.Update(r.Context(), id, body)
	if err != nil {
		handling.HandleError(err, "error.categories.failedToUpdate", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(category),
		gecho.WithMessage("Category updated successfully"),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !ar.requireAdmin(w, r) {
		return
	}

	id, err := handling.ParseUUIDParam(r, "id")
	if err != nil {
		handling.HandleError(err, "error.categories.invalidId", ar.logger, w)
		return
	}

	if err := ar.categoryService.Delete(r.Context(), id); err != nil {
		handling.HandleError(err, "error.categories.failedToDelete", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"ok": true}),
		gecho.WithMessage("Category deleted successfully"),
		gecho.Send(),
	)
}
