package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"watchmarket_server/database"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/asaskevich/EventBus"
)

const (
	UserProductsKey  = "userProducts"
	NextProductIdKey = "nextProductId"

	CatalogChangedTopic = "catalog:changed"
)

type CatalogOp string

const (
	CatalogLoaded  CatalogOp = "load"
	CatalogCreated CatalogOp = "create"
	CatalogUpdated CatalogOp = "update"
	CatalogDeleted CatalogOp = "delete"
)

// CatalogEvent is published on CatalogChangedTopic after every in-memory change.
// Products is a private snapshot; handlers must not call back into catalog mutations.
type CatalogEvent struct {
	Op        CatalogOp
	ProductId int
	Products  []structs.Product
	NextId    int
}

// CatalogService owns the user's products and the id counter.
// mu guards the in-memory state; writeMu orders durable writes and events
// so they follow the order of the mutations.
type CatalogService struct {
	logger *gecho.Logger
	store  database.Store
	bus    EventBus.Bus
	mode   structs.WriteMode

	mu       sync.RWMutex
	products []structs.Product
	nextId   int
	loaded   bool

	writeMu sync.Mutex

	subMu  sync.Mutex
	subs   map[int]func(CatalogEvent)
	subSeq int
}

func NewCatalogService(logger *gecho.Logger, store database.Store, bus EventBus.Bus, cfg *structs.CatalogConfig) *CatalogService {
	mode := cfg.WriteMode
	if mode != structs.WriteOptimistic && mode != structs.WriteAcknowledged {
		logger.Warn("Unknown catalog write mode, using optimistic", gecho.Field("mode", mode))
		mode = structs.WriteOptimistic
	}

	cs := &CatalogService{
		logger:   logger,
		store:    store,
		bus:      bus,
		mode:     mode,
		products: []structs.Product{},
		nextId:   defaultNextId(),
		subs:     make(map[int]func(CatalogEvent)),
	}
	if err := bus.Subscribe(CatalogChangedTopic, cs.dispatch); err != nil {
		logger.Error("Failed to attach catalog dispatcher", gecho.Field("error", err))
	}
	return cs
}

func defaultNextId() int {
	return structs.SeedMaxId() + 1
}

// Load hydrates the collection and the counter. Each key falls back on its own;
// failures are logged and never returned.
func (cs *CatalogService) Load(ctx context.Context) {
	products := cs.loadProducts(ctx)
	nextId := cs.loadNextId(ctx)

	floor := structs.SeedMaxId()
	for _, p := range products {
		floor = max(floor, p.Id)
	}
	if nextId <= floor {
		cs.logger.Warn("Stored product counter is behind existing ids, raising it",
			gecho.Field("stored", nextId),
			gecho.Field("raised_to", floor+1),
		)
		nextId = floor + 1
	}

	cs.mu.Lock()
	cs.products = products
	cs.nextId = nextId
	cs.loaded = true
	event := cs.eventLocked(CatalogLoaded, 0)
	cs.writeMu.Lock()
	cs.mu.Unlock()
	defer cs.writeMu.Unlock()

	cs.bus.Publish(CatalogChangedTopic, event)

	cs.logger.Info("Catalog loaded",
		gecho.Field("products", len(products)),
		gecho.Field("next_id", nextId),
	)
}

func (cs *CatalogService) loadProducts(ctx context.Context) []structs.Product {
	raw, found, err := cs.store.Get(ctx, UserProductsKey)
	if err != nil {
		cs.logger.Error("Failed to read stored products, starting empty", gecho.Field("error", err))
		return []structs.Product{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []structs.Product{}
	}

	var products []structs.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		cs.logger.Error("Stored products are corrupt, starting empty", gecho.Field("error", err))
		return []structs.Product{}
	}
	if products == nil {
		products = []structs.Product{}
	}
	return products
}

func (cs *CatalogService) loadNextId(ctx context.Context) int {
	raw, found, err := cs.store.Get(ctx, NextProductIdKey)
	if err != nil {
		cs.logger.Error("Failed to read stored product counter, using default", gecho.Field("error", err))
		return defaultNextId()
	}
	if !found {
		return defaultNextId()
	}

	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		cs.logger.Error("Stored product counter is corrupt, using default", gecho.Field("value", raw))
		return defaultNextId()
	}
	return id
}

func (cs *CatalogService) IsLoaded() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.loaded
}

// List returns the user's products in insertion order
func (cs *CatalogService) List() []structs.Product {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return structs.CloneProducts(cs.products)
}

// ListDefaults returns the demo catalog
func (cs *CatalogService) ListDefaults() []structs.Product {
	return structs.SeedProducts()
}

// Get finds a user product by id
func (cs *CatalogService) Get(id int) (structs.Product, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if idx := cs.indexLocked(id); idx >= 0 {
		return cs.products[idx].Clone(), true
	}
	return structs.Product{}, false
}

// NextID previews the id the next Create will assign
func (cs *CatalogService) NextID() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.nextId
}

// Create assigns the current counter as id, appends the product and advances the counter
func (cs *CatalogService) Create(ctx context.Context, draft structs.ProductDraft) (structs.Product, error) {
	cs.mu.Lock()
	product := draft.WithId(cs.nextId)
	cs.products = append(cs.products, product)
	cs.nextId++
	event := cs.eventLocked(CatalogCreated, product.Id)
	cs.writeMu.Lock()
	cs.mu.Unlock()
	defer cs.writeMu.Unlock()

	cs.bus.Publish(CatalogChangedTopic, event)

	err := cs.persist(ctx, CatalogCreated, event.Products, &event.NextId)
	return product.Clone(), err
}

// Update replaces the product with the same id in place. found is false when
// no product has that id; nothing is written then.
func (cs *CatalogService) Update(ctx context.Context, product structs.Product) (bool, error) {
	cs.mu.Lock()
	idx := cs.indexLocked(product.Id)
	if idx < 0 {
		cs.mu.Unlock()
		CatalogOperations.WithLabelValues(string(CatalogUpdated), "not_found").Inc()
		cs.logger.Debug("Update for unknown product ignored", gecho.Field("product_id", product.Id))
		return false, nil
	}
	cs.products[idx] = product.Clone()
	event := cs.eventLocked(CatalogUpdated, product.Id)
	cs.writeMu.Lock()
	cs.mu.Unlock()
	defer cs.writeMu.Unlock()

	cs.bus.Publish(CatalogChangedTopic, event)

	return true, cs.persist(ctx, CatalogUpdated, event.Products, nil)
}

// Delete removes the product and writes back the remainder, even when empty
func (cs *CatalogService) Delete(ctx context.Context, id int) (bool, error) {
	cs.mu.Lock()
	idx := cs.indexLocked(id)
	if idx < 0 {
		cs.mu.Unlock()
		CatalogOperations.WithLabelValues(string(CatalogDeleted), "not_found").Inc()
		cs.logger.Debug("Delete for unknown product ignored", gecho.Field("product_id", id))
		return false, nil
	}
	cs.products = append(cs.products[:idx:idx], cs.products[idx+1:]...)
	event := cs.eventLocked(CatalogDeleted, id)
	cs.writeMu.Lock()
	cs.mu.Unlock()
	defer cs.writeMu.Unlock()

	cs.bus.Publish(CatalogChangedTopic, event)

	return true, cs.persist(ctx, CatalogDeleted, event.Products, nil)
}

// Subscribe registers fn for catalog changes and returns the matching unsubscribe.
// The bus matches handlers by code pointer, so subscribers are kept here and
// fanned out from a single bus handler.
func (cs *CatalogService) Subscribe(fn func(CatalogEvent)) func() {
	cs.subMu.Lock()
	cs.subSeq++
	id := cs.subSeq
	cs.subs[id] = fn
	cs.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			cs.subMu.Lock()
			delete(cs.subs, id)
			cs.subMu.Unlock()
		})
	}
}

func (cs *CatalogService) dispatch(event CatalogEvent) {
	cs.subMu.Lock()
	ids := make([]int, 0, len(cs.subs))
	for id := range cs.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	handlers := make([]func(CatalogEvent), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, cs.subs[id])
	}
	cs.subMu.Unlock()

	for _, fn := range handlers {
		fn(event)
	}
}

func (cs *CatalogService) indexLocked(id int) int {
	for i, p := range cs.products {
		if p.Id == id {
			return i
		}
	}
	return -1
}

func (cs *CatalogService) eventLocked(op CatalogOp, id int) CatalogEvent {
	return CatalogEvent{
		Op:        op,
		ProductId: id,
		Products:  structs.CloneProducts(cs.products),
		NextId:    cs.nextId,
	}
}

// persist writes the whole collection and, when given, the counter.
// In optimistic mode failures are only logged.
func (cs *CatalogService) persist(ctx context.Context, op CatalogOp, products []structs.Product, nextId *int) error {
	var errs []error

	data, err := json.Marshal(products)
	if err != nil {
		errs = append(errs, fmt.Errorf("encode %s: %w", UserProductsKey, err))
	} else if err := cs.store.Set(ctx, UserProductsKey, string(data)); err != nil {
		StorageWriteFailures.WithLabelValues(UserProductsKey).Inc()
		errs = append(errs, err)
	}

	if nextId != nil {
		if err := cs.store.Set(ctx, NextProductIdKey, strconv.Itoa(*nextId)); err != nil {
			StorageWriteFailures.WithLabelValues(NextProductIdKey).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		CatalogOperations.WithLabelValues(string(op), "ok").Inc()
		return nil
	}

	err = errors.Join(errs...)
	CatalogOperations.WithLabelValues(string(op), "persist_failed").Inc()
	cs.logger.Error("Failed to persist catalog",
		gecho.Field("op", op),
		gecho.Field("mode", cs.mode),
		gecho.Field("error", err),
	)

	if cs.mode == structs.WriteAcknowledged {
		return fmt.Errorf("%w: %w", lib.ErrPersistence, err)
	}
	return nil
}
