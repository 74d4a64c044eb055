package utils

import (
	"context"
	"log"
	"time"

	"glamora/config"

	"github.com/go-redis/redis/v8"
)

// PreviewCacheClient caches computed availability previews. Entries are
// short-lived and recomputable; losing them is never a correctness problem.
var PreviewCacheClient *redis.Client

// InitPreviewCache initializes the Redis client for availability previews.
func InitPreviewCache() {
	PreviewCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPreviewDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := PreviewCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Preview Cache): %v", err)
	}
}

// GetPreviewCacheClient returns the preview cache client.
func GetPreviewCacheClient() *redis.Client {
	if PreviewCacheClient == nil {
		InitPreviewCache()
	}
	return PreviewCacheClient
}

// PreviewCacheTTL returns the configured preview entry lifetime.
func PreviewCacheTTL() time.Duration {
	return time.Duration(config.AppConfig.PreviewCacheTTLSeconds) * time.Second
}
