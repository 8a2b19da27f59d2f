package structs

import "time"

type Config struct {
	Server  *ServerConfig
	Cors    *CorsConfig
	Storage *StorageConfig
	Catalog *CatalogConfig
	Listing *ListingConfig
	Auth    *AuthConfig
	Brands  *BrandsConfig
	Email   *EmailConfig
}

type ServerConfig struct {
	AppName        string        // WatchMarket
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// StorageBackend selects the durable key-value store implementation
type StorageBackend string

const (
	StorageBolt     StorageBackend = "bolt"
	StorageRedis    StorageBackend = "redis"
	StoragePostgres StorageBackend = "postgres"
	StorageMemory   StorageBackend = "memory"
)

type StorageConfig struct {
	Backend StorageBackend
	Bolt    *BoltConfig
	Redis   *RedisConfig
	Pg      *PostgresConfig
}

type BoltConfig struct {
	Path        string
	Bucket      string
	OpenTimeout time.Duration
}

type RedisConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	KeyPrefix       string
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

type PostgresConfig struct {
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

// WriteMode decides whether a failed durable write is reported to the caller
type WriteMode string

const (
	WriteOptimistic   WriteMode = "optimistic"
	WriteAcknowledged WriteMode = "acknowledged"
)

type CatalogConfig struct {
	WriteMode WriteMode
}

type ListingConfig struct {
	LoadMoreDelay time.Duration
}

type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
}

type BrandsConfig struct {
	BaseURL         string
	Endpoint        string
	PerPage         int
	RequestTimeout  time.Duration
	RefreshSchedule string
}

type EmailConfig struct {
	ApiKey string
	From   string
}
