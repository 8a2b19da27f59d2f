package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"watchmarket_server/database"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/asaskevich/EventBus"
)

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
}

var errStoreDown = errors.New("store down")

// flakyStore wraps a memory store and fails the configured operations
type flakyStore struct {
	*database.MemoryStore

	mu        sync.Mutex
	failGet   bool
	failSet   bool
	setCalls  int
	lastSetOf map[string]string
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: database.NewMemoryStore(), lastSetOf: map[string]string{}}
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return "", false, errStoreDown
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	f.setCalls++
	fail := f.failSet
	if !fail {
		f.lastSetOf[key] = value
	}
	f.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *flakyStore) SetCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

func newTestCatalog(t *testing.T, store database.Store, mode structs.WriteMode) *CatalogService {
	t.Helper()
	cs := NewCatalogService(testLogger(), store, EventBus.New(), &structs.CatalogConfig{WriteMode: mode})
	cs.Load(context.Background())
	return cs
}

func watchDraft(title, price string) structs.ProductDraft {
	return structs.ProductDraft{
		Title:       title,
		Description: "Automatic, full set",
		Color:       "#2c3e50",
		Price:       structs.MustParsePrice(price),
		OwnerId:     "1",
		Brand:       "Rolex",
		ComesWith:   []string{"Box", "Papers"},
		WatchInfo:   &structs.WatchInfo{Model: "Submariner", Year: "2019"},
	}
}
