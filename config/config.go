package config

import (
	"sync"
	"time"
	"watchmarket_server/structs"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = load()
	})
	return configInstance
}

func load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:        getEnvAsString("APP_NAME", "WatchMarket_no_env"),
			Environment:    getEnvAsString("APP_ENV", "development"),
			Port:           getEnvAsString("APP_PORT", ":8082"),
			ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
			WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
			IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
			MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
		},
		Cors: &structs.CorsConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:8081", "http://localhost:19006"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
		},
		Storage: &structs.StorageConfig{
			Backend: structs.StorageBackend(getEnvAsString("STORAGE_BACKEND", string(structs.StorageBolt))),
			Bolt: &structs.BoltConfig{
				Path:        getEnvAsString("BOLT_PATH", "watchmarket.db"),
				Bucket:      getEnvAsString("BOLT_BUCKET", "storage"),
				OpenTimeout: getEnvAsTimeDuration("BOLT_OPEN_TIMEOUT", 2*time.Second),
			},
			Redis: &structs.RedisConfig{
				Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				KeyPrefix:       getEnvAsString("REDIS_KEY_PREFIX", "watchmarket:"),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
				PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 4*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			},
			Pg: &structs.PostgresConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "watchmarket_db"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
		},
		Catalog: &structs.CatalogConfig{
			WriteMode: structs.WriteMode(getEnvAsString("CATALOG_WRITE_MODE", string(structs.WriteOptimistic))),
		},
		Listing: &structs.ListingConfig{
			LoadMoreDelay: getEnvAsTimeDuration("LISTING_LOAD_MORE_DELAY", 1500*time.Millisecond),
		},
		Auth: &structs.AuthConfig{
			TokenSecret: getEnvAsString("AUTH_TOKEN_SECRET", "default_token_secret"),
			TokenExpiry: getEnvAsTimeDuration("AUTH_TOKEN_EXPIRY", 30*24*time.Hour),
		},
		Brands: &structs.BrandsConfig{
			BaseURL:         getEnvAsString("BRANDS_BASE_URL", "{{ v1_url }}"),
			Endpoint:        getEnvAsString("BRANDS_ENDPOINT", "/web/brands"),
			PerPage:         getEnvAsInt("BRANDS_PER_PAGE", 200),
			RequestTimeout:  getEnvAsTimeDuration("BRANDS_REQUEST_TIMEOUT", 10*time.Second),
			RefreshSchedule: getEnvAsString("BRANDS_REFRESH_SCHEDULE", "@every 6h"),
		},
		Email: &structs.EmailConfig{
			ApiKey: getEnvAsString("RESEND_API_KEY", ""),
			From:   getEnvAsString("EMAIL_FROM", "WatchMarket <no-reply@watchmarket.app>"),
		},
	}
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
