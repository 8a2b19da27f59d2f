package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"watchmarket_server/config"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is the durable key-value storage the catalog, session and theme live in.
// Get reports found=false for a missing key instead of an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
	Backend() structs.StorageBackend
}

var instance Store

// Connect opens the backend selected by STORAGE_BACKEND
func Connect(ctx context.Context, cfg *structs.StorageConfig, logger *gecho.Logger) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Backend {
	case structs.StorageBolt, "":
		store, err = NewBoltStore(cfg.Bolt)
	case structs.StorageRedis:
		store, err = NewRedisStore(ctx, cfg.Redis, logger)
	case structs.StoragePostgres:
		store, err = NewPostgresStore(ctx, cfg.Pg, logger)
	case structs.StorageMemory:
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Connected to storage successfully", gecho.Field("backend", store.Backend()))
	return store, nil
}

// Initialize sets up the global storage instance using centralized configuration
func Initialize(ctx context.Context) error {
	store, err := Connect(ctx, config.GetConfig().Storage, config.GetLogger())
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	instance = store
	return nil
}

// GetInstance returns the global storage instance
func GetInstance() Store {
	if instance == nil {
		log.Fatal("Storage instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// CloseInstance closes the global storage instance
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}
