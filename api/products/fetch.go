package products

import (
	"dulcemasa_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// FetchPublicProducts handles GET /productos?categoriaSlug=... The flat
// listing mirrors /categorias/{slug}/productos for clients that keep the
// slug in a query string.
func (prm *ProductRoutesManager) FetchPublicProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug, err := handling.CategorySlugQuery(r)
	if err != nil {
		handling.HandleError(err, "error.products.invalidQueryParameters", prm.logger, w)
		return
	}

	products, err := prm.productService.ListPublicByCategory(ctx, slug)
	if err != nil {
		handling.HandleError(err, "error.products.failedToFetch", prm.logger, w)
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
