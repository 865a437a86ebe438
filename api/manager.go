package api

import (
	"dulcemasa_server/api/admin"
	"dulcemasa_server/api/categories"
	"dulcemasa_server/api/health"
	"dulcemasa_server/api/middleware"
	"dulcemasa_server/api/products"
	"dulcemasa_server/services"
	"dulcemasa_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	categoryRoutes *categories.CategoryRoutesManager
	productRoutes  *products.ProductRoutesManager
	adminRoutes    *admin.AdminRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		categoryRoutes: categories.NewCategoryRoutesManager(logger, sm.CategoryService, sm.ProductService),
		productRoutes:  products.NewProductRoutesManager(logger, sm.ProductService),
		adminRoutes:    admin.NewAdminRoutesManager(logger, cfg, sm.CategoryService, sm.ProductService, sm.ImageService, mw),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.categoryRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
