package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Admin     *AdminConfig
	Storage   *StorageConfig
	Contact   *ContactConfig
	RateLimit *RateLimitConfig
}

type RateLimitConfig struct {
	Enabled bool

	// Admin covers the back office, uploads included.
	AdminLimit  int
	AdminWindow time.Duration

	// Public covers the read-only catalog.
	PublicLimit  int
	PublicWindow time.Duration
}

type ServerConfig struct {
	AppName        string        // Dulcemasa
	Environment    string        // development, production
	Port           string        // :8085
	SiteOrigin     string        // public storefront origin, used for absolute links
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CatalogTTL   time.Duration // TTL for cached public catalog reads
}

// AdminConfig drives the access gate. The session secret belongs to the
// external auth provider; this service only verifies, it never issues tokens.
type AdminConfig struct {
	SessionSecret string
	SessionCookie string
	// AdminEmails is the allow-list. Empty means the allow-list is disabled
	// and every authenticated caller is admitted.
	AdminEmails []string
}

type StorageConfig struct {
	Bucket   string
	Region   string
	Key      string
	Secret   string
	Endpoint string // empty for real AWS; set for Supabase/MinIO/R2
	BaseURL  string // public base URL of the bucket
}

type ContactConfig struct {
	WhatsAppPhone string // international format without '+', e.g. 5491122334455
}
