package services

import (
	"dulcemasa_server/database"
	"dulcemasa_server/storage"
	"dulcemasa_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	CacheService    *CacheService
	HealthService   *HealthService
	CategoryService *CategoryService
	ProductService  *ProductService
	ImageService    *ImageService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB, store *storage.Client) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	imageService := NewImageService(logger, db, store, cacheService)
	categoryService := NewCategoryService(logger, cfg, db, store, cacheService)
	productService := NewProductService(logger, cfg, db, cacheService, imageService)

	return &ServiceManager{
		CacheService:    cacheService,
		HealthService:   healthService,
		CategoryService: categoryService,
		ProductService:  productService,
		ImageService:    imageService,
	}
}
