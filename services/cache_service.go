package services

import (
	"context"
	"dulcemasa_server/config"
	"dulcemasa_server/structs"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

const catalogKeyPrefix = "catalog:"

// CacheService fronts the public catalog reads with Redis. Every failure
// degrades to the database; the cache is never load-bearing.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			MaxRetries: 3,
		})
	})
	return redisClient
}

func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

func (cs *CacheService) Ping(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

// GetJSON reads a cached value into dest. The boolean reports a hit.
func (cs *CacheService) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := cs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON caches a value under key for ttl
func (cs *CacheService) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.client.Set(ctx, key, raw, ttl).Err()
}

// CatalogKey namespaces a public-catalog cache key
func CatalogKey(parts ...string) string {
	key := catalogKeyPrefix
	for i, part := range parts {
		if i > 0 {
			key += ":"
		}
		key += part
	}
	return key
}

// InvalidateCatalog drops every cached catalog read. Called after any admin
// mutation; TTLs are short so a missed invalidation heals itself anyway.
func (cs *CacheService) InvalidateCatalog(ctx context.Context) {
	iter := cs.client.Scan(ctx, 0, catalogKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		cs.logger.Warn("Catalog cache scan failed", gecho.Field("error", err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := cs.client.Del(ctx, keys...).Err(); err != nil {
		cs.logger.Warn("Catalog cache invalidation failed", gecho.Field("error", err), gecho.Field("keys", len(keys)))
	}
}

// IncrementRateLimit atomically increments a rate limit counter
func (cs *CacheService) IncrementRateLimit(ctx context.Context, ip, endpoint string, ttl time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	val, err := cs.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// Set expiration only on first increment
	if val == 1 {
		if err := cs.client.Expire(ctx, key, ttl).Err(); err != nil {
			return int(val), err
		}
	}
	return int(val), nil
}

// CatalogTTL returns the configured TTL for public catalog cache entries
func (cs *CacheService) CatalogTTL() time.Duration {
	return cs.config.Cache.CatalogTTL
}
