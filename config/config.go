package config

import (
	"dulcemasa_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Dulcemasa_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8085"),
				SiteOrigin:     getEnvAsString("SITE_ORIGIN", "http://localhost:3000"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"localhost", "http://localhost:3000"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "dulcemasa_db"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:      getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:     getEnvAsString("REDIS_USERNAME", ""),
				Password:     getEnvAsString("REDIS_PASSWORD", ""),
				DB:           getEnvAsInt("REDIS_DB", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				DialTimeout:  getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:  getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout: getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				CatalogTTL:   getEnvAsTimeDuration("CACHE_CATALOG_TTL", 60*time.Second),
			},
			Admin: &structs.AdminConfig{
				SessionSecret: getEnvAsString("AUTH_SESSION_SECRET", ""),
				SessionCookie: getEnvAsString("AUTH_SESSION_COOKIE", "dm_session"),
				AdminEmails:   getEnvAsSlice("ADMIN_EMAILS", []string{}),
			},
			Storage: &structs.StorageConfig{
				Bucket:   getEnvAsString("STORAGE_BUCKET", "images"),
				Region:   getEnvAsString("STORAGE_REGION", "us-east-1"),
				Key:      getEnvAsString("STORAGE_KEY", ""),
				Secret:   getEnvAsString("STORAGE_SECRET", ""),
				Endpoint: getEnvAsString("STORAGE_ENDPOINT", ""),
				BaseURL:  getEnvAsString("STORAGE_BASE_URL", ""),
			},
			Contact: &structs.ContactConfig{
				WhatsAppPhone: getEnvAsString("CONTACT_WHATSAPP", ""),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:      getEnvAsBool("RATE_LIMIT_ENABLED", true),
				AdminLimit:   getEnvAsInt("RATE_LIMIT_ADMIN", 120),
				AdminWindow:  getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", 60*time.Second),
				PublicLimit:  getEnvAsInt("RATE_LIMIT_PUBLIC", 300),
				PublicWindow: getEnvAsTimeDuration("RATE_LIMIT_PUBLIC_WINDOW", 60*time.Second),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
