package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"watchmarket_server/structs"
	"watchmarket_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// PostgresStore keeps keys as rows of the kv_entries table
type PostgresStore struct {
	db      *bun.DB
	timeout time.Duration
}

func NewPostgresStore(ctx context.Context, cfg *structs.PostgresConfig, logger *gecho.Logger) (*PostgresStore, error) {
	connector := pgdriver.NewConnector(
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Name),
		pgdriver.WithInsecure(true),
		pgdriver.WithReadTimeout(cfg.ReadTimeout),
		pgdriver.WithWriteTimeout(cfg.WriteTimeout),
	)

	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(cfg.MaxConns)
	sqldb.SetMaxIdleConns(cfg.MinConns)
	sqldb.SetConnMaxLifetime(cfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(cfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())
	db.AddQueryHook(&connectionHealthHook{logger: logger})

	store := &PostgresStore{db: db, timeout: cfg.WriteTimeout}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err := db.NewCreateTable().
		Model((*tables.KVEntry)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return store, nil
}

func (p *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout > 0 {
		return context.WithTimeout(ctx, p.timeout)
	}
	return ctx, func() {}
}

func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var entry tables.KVEntry

	err := WithRetry(ctx, func() error {
		return p.db.NewSelect().
			Model(&entry).
			Where("? = ?", bun.Ident("key"), key).
			Limit(1).
			Scan(ctx)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to select %s: %w (took %v)", key, err, time.Since(start))
	}

	return entry.Value, true, nil
}

func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	entry := &tables.KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}

	err := WithRetry(ctx, func() error {
		_, err := p.db.NewInsert().
			Model(entry).
			On("CONFLICT (key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w (took %v)", key, err, time.Since(start))
	}
	return nil
}

func (p *PostgresStore) Remove(ctx context.Context, key string) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	err := WithRetry(ctx, func() error {
		_, err := p.db.NewDelete().
			Model((*tables.KVEntry)(nil)).
			Where("? = ?", bun.Ident("key"), key).
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w (took %v)", key, err, time.Since(start))
	}
	return nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}

func (p *PostgresStore) Backend() structs.StorageBackend { return structs.StoragePostgres }

// connectionHealthHook implements bun.QueryHook to monitor connection health
type connectionHealthHook struct {
	logger *gecho.Logger
}

func (h *connectionHealthHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *connectionHealthHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	if duration := time.Since(event.StartTime); duration > time.Second {
		h.logger.Warn("Slow database query detected",
			gecho.Field("query", event.Query),
			gecho.Field("duration", duration),
		)
	}

	if event.Err != nil && strings.Contains(event.Err.Error(), "EOF") {
		h.logger.Error("Database connection EOF error - connection may have been closed by server",
			gecho.Field("error", event.Err),
			gecho.Field("query", event.Query),
		)
	}
}
