package admin

import (
	"dulcemasa_server/api/middleware"
	"dulcemasa_server/services"
	"dulcemasa_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	categoryService *services.CategoryService
	productService  *services.ProductService
	imageService    *services.ImageService
	mw              *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	categoryService *services.CategoryService,
	productService *services.ProductService,
	imageService *services.ImageService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:          logger,
		cfg:             cfg,
		categoryService: categoryService,
		productService:  productService,
		imageService:    imageService,
		mw:              mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(ar.mw.AdminAuthMiddleware)

		r.Get("/categorias", ar.ListCategories)
		r.Post("/categorias", ar.CreateCategory)
		r.Put("/categorias/{id}", ar.UpdateCategory)
		r.Delete("/categorias/{id}", ar.DeleteCategory)
		r.Post("/categorias/{id}/imagen", ar.UploadCategoryCover)
		r.Delete("/categorias/{id}/imagen", ar.RemoveCategoryCover)

		r.Get("/productos", ar.ListProducts)
		r.Post("/productos", ar.CreateProduct)
		r.Put("/productos/{id}", ar.UpdateProduct)
		r.Delete("/productos/{id}", ar.DeleteProduct)
		r.Post("/productos/{id}/imagen", ar.SetProductCover)
		r.Get("/productos/{id}/imagenes", ar.ListGalleryImages)
		r.Post("/productos/{id}/imagenes", ar.AddGalleryImage)
		r.Delete("/productos/{id}/imagenes/{imagenId}", ar.DeleteGalleryImage)
	})
}
