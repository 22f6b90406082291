package config

import (
	"os"
	"strings"
	"time"
)

// Asset sources
const (
	AssetSourceDir   = "dir"
	AssetSourceStore = "store"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
	LogLevel  string

	// AssetSource selects where the chart image is resolved from: a local
	// directory, or the GridFS store behind a Redis cache.
	AssetSource   string
	AssetDir      string
	AssetCacheTTL time.Duration

	JWTSecret       string
	AdvisorUsername string
	AdvisorPassword string
}

func Load() *Config {
	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "riskprofile"),
		RedisAddr:       strings.TrimPrefix(getEnv("REDIS_ADDR", "localhost:6379"), "redis://"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AssetSource:     getEnv("ASSET_SOURCE", AssetSourceDir),
		AssetDir:        getEnv("ASSET_DIR", "assets"),
		AssetCacheTTL:   getDuration("ASSET_CACHE_TTL", time.Hour),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		AdvisorUsername: getEnv("ADVISOR_USERNAME", "admin"),
		AdvisorPassword: getEnv("ADVISOR_PASSWORD", "password123"),
	}
}

// UsesStore reports whether assets come from MongoDB and Redis.
func (c *Config) UsesStore() bool {
	return c.AssetSource == AssetSourceStore
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
