package tables

import "time"

// KVEntry is one durable key-value pair in the postgres storage backend
type KVEntry struct {
	tableName struct{}  `bun:"table:kv_entries,alias:kv"`
	Key       string    `bun:"key,pk" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
