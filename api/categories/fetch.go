package categories

import (
	"dulcemasa_server/handling"
	"dulcemasa_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchActiveCategories handles GET /categorias for the storefront. Only
// active categories are listed, in display order.
func (crm *CategoryRoutesManager) FetchActiveCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := crm.categoryService.ListActive(ctx)
	if err != nil {
		handling.HandleError(err, "error.categories.failedToFetch", crm.logger, w)
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

// FetchCategoryProducts handles GET /categorias/{slug}/productos. A slug
// that resolves to no active category is a 404, never an empty list.
func (crm *CategoryRoutesManager) FetchCategoryProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := lib.Slugify(chi.URLParam(r, "slug"))
	if slug == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.categories.invalidSlug"),
			gecho.Send(),
		)
		return
	}

	category, err := crm.categoryService.GetActiveBySlug(ctx, slug)
	if err != nil {
		handling.HandleError(err, "error.categories.notFound", crm.logger, w)
		return
	}

	products, err := crm.productService.ListPublicByCategory(ctx, slug)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetch", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categoria": category,
			"productos": products,
			"count":     len(products),
		}),
		gecho.Send(),
	)
}
