package middleware

import (
	"dulcemasa_server/config"
	"dulcemasa_server/services"
	"dulcemasa_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger       gecho.Logger
	cfg          *structs.Config
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, cacheService *services.CacheService) *Middleware {
	return &Middleware{
		logger:       *config.GetLogger(),
		cfg:          cfg,
		cacheService: cacheService,
	}
}
