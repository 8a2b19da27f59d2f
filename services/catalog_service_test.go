package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"watchmarket_server/database"
	"watchmarket_server/lib"
	"watchmarket_server/structs"
)

func TestCatalogLoadEmptyStore(t *testing.T) {
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)

	if !cs.IsLoaded() {
		t.Fatal("catalog should be loaded")
	}
	if got := cs.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %d products", len(got))
	}
	if got, want := cs.NextID(), structs.SeedMaxId()+1; got != want {
		t.Fatalf("next id = %d, want %d", got, want)
	}
}

func TestCatalogCreateAssignsMonotonicIds(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)

	first, err := cs.Create(ctx, watchDraft("Submariner", "$9,500.00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := cs.Create(ctx, watchDraft("Speedmaster", "$5200"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.Id != structs.SeedMaxId()+1 {
		t.Fatalf("first id = %d, want %d", first.Id, structs.SeedMaxId()+1)
	}
	if second.Id != first.Id+1 {
		t.Fatalf("second id = %d, want %d", second.Id, first.Id+1)
	}
	if cs.NextID() != second.Id+1 {
		t.Fatalf("counter = %d, want %d", cs.NextID(), second.Id+1)
	}

	list := cs.List()
	if len(list) != 2 || list[0].Id != first.Id || list[1].Id != second.Id {
		t.Fatalf("list not in insertion order: %+v", list)
	}
}

func TestCatalogCreateUsesPreviewedId(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)

	last := 0
	for i := 0; i < 5; i++ {
		preview := cs.NextID()
		p, _ := cs.Create(ctx, watchDraft("W"+strconv.Itoa(i), "$10"))
		if p.Id != preview || p.Id <= last {
			t.Fatalf("create %d got id %d, preview %d, previous %d", i, p.Id, preview, last)
		}
		last = p.Id
	}
}

func TestCatalogIdsNeverReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)

	p, _ := cs.Create(ctx, watchDraft("Datejust", "$7000"))
	if found, err := cs.Delete(ctx, p.Id); !found || err != nil {
		t.Fatalf("delete = %v, %v", found, err)
	}
	next, _ := cs.Create(ctx, watchDraft("Explorer", "$6000"))
	if next.Id == p.Id {
		t.Fatalf("id %d reused after delete", p.Id)
	}
}

func TestCatalogRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	cs := newTestCatalog(t, store, structs.WriteOptimistic)

	created, _ := cs.Create(ctx, watchDraft("Nautilus", "$35,000.5"))
	cs.Create(ctx, watchDraft("Royal Oak", "$30000"))

	reloaded := newTestCatalog(t, store, structs.WriteOptimistic)
	list := reloaded.List()
	if len(list) != 2 {
		t.Fatalf("reloaded %d products, want 2", len(list))
	}
	got := list[0]
	if got.Id != created.Id || got.Title != "Nautilus" || !got.Price.Equal(created.Price) {
		t.Fatalf("reloaded product differs: %+v", got)
	}
	if got.Price.String() != "$35000.5" {
		t.Fatalf("price = %s, want $35000.5", got.Price)
	}
	if got.WatchInfo == nil || got.WatchInfo.Model != "Submariner" {
		t.Fatalf("watch info lost: %+v", got.WatchInfo)
	}
	if reloaded.NextID() != cs.NextID() {
		t.Fatalf("counter = %d, want %d", reloaded.NextID(), cs.NextID())
	}
}

func TestCatalogUpdateKeepsIdentityAndPosition(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)

	a, _ := cs.Create(ctx, watchDraft("A", "$1"))
	b, _ := cs.Create(ctx, watchDraft("B", "$2"))
	c, _ := cs.Create(ctx, watchDraft("C", "$3"))

	b.Title = "B2"
	b.Price = structs.MustParsePrice("$20")
	found, err := cs.Update(ctx, b)
	if !found || err != nil {
		t.Fatalf("update = %v, %v", found, err)
	}

	list := cs.List()
	ids := []int{list[0].Id, list[1].Id, list[2].Id}
	if ids[0] != a.Id || ids[1] != b.Id || ids[2] != c.Id {
		t.Fatalf("order changed: %v", ids)
	}
	if list[1].Title != "B2" || list[1].Price.String() != "$20" {
		t.Fatalf("update not applied: %+v", list[1])
	}
	if cs.NextID() != c.Id+1 {
		t.Fatalf("update moved the counter to %d", cs.NextID())
	}
}

func TestCatalogUpdateAndDeleteUnknownIdWriteNothing(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore()
	cs := newTestCatalog(t, store, structs.WriteOptimistic)
	cs.Create(ctx, watchDraft("A", "$1"))
	before := store.SetCalls()
	counter := cs.NextID()

	found, err := cs.Update(ctx, structs.Product{Id: 999, Title: "ghost"})
	if found || err != nil {
		t.Fatalf("update unknown = %v, %v", found, err)
	}
	found, err = cs.Delete(ctx, 999)
	if found || err != nil {
		t.Fatalf("delete unknown = %v, %v", found, err)
	}
	if store.SetCalls() != before {
		t.Fatalf("store written for unknown id")
	}
	if cs.NextID() != counter {
		t.Fatalf("counter moved from %d to %d", counter, cs.NextID())
	}
	if len(cs.List()) != 1 {
		t.Fatal("collection changed")
	}
}

func TestCatalogDeleteIsIdempotentAndPersistsEmptyList(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	cs := newTestCatalog(t, store, structs.WriteOptimistic)

	p, _ := cs.Create(ctx, watchDraft("Only", "$100"))
	if found, _ := cs.Delete(ctx, p.Id); !found {
		t.Fatal("first delete should find the product")
	}
	if found, _ := cs.Delete(ctx, p.Id); found {
		t.Fatal("second delete should be a no-op")
	}

	raw, ok, _ := store.Get(ctx, UserProductsKey)
	if !ok || raw != "[]" {
		t.Fatalf("stored products = %q (found %v), want []", raw, ok)
	}
	if len(newTestCatalog(t, store, structs.WriteOptimistic).List()) != 0 {
		t.Fatal("deleted product came back after reload")
	}
}

func TestCatalogListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)
	cs.Create(ctx, watchDraft("A", "$1"))

	list := cs.List()
	list[0].Title = "mutated"
	list[0].ComesWith[0] = "mutated"

	fresh := cs.List()
	if fresh[0].Title != "A" || fresh[0].ComesWith[0] != "Box" {
		t.Fatalf("caller mutation leaked into the catalog: %+v", fresh[0])
	}
}

func TestCatalogConcurrentCreatesGetUniqueIds(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := cs.Create(ctx, watchDraft("W"+strconv.Itoa(i), "$10"))
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- p.Id
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n || len(cs.List()) != n {
		t.Fatalf("got %d ids and %d products, want %d", len(seen), len(cs.List()), n)
	}
	if cs.NextID() != structs.SeedMaxId()+1+n {
		t.Fatalf("counter = %d", cs.NextID())
	}
}

func TestCatalogHydrationFallbacks(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		products   string
		nextId     string
		wantCount  int
		wantNextId int
	}{
		{"corrupt products", "{not json", "40", 0, 40},
		{"corrupt counter", `[{"id":35,"title":"x","price":"$1"}]`, "abc", 1, 36},
		{"counter behind ids", `[{"id":50,"title":"x","price":"$1"}]`, "33", 1, 51},
		{"counter behind seed", "", "5", 0, structs.SeedMaxId() + 1},
		{"null products", "null", "31", 0, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := database.NewMemoryStore()
			if tt.products != "" {
				store.Set(ctx, UserProductsKey, tt.products)
			}
			store.Set(ctx, NextProductIdKey, tt.nextId)

			cs := newTestCatalog(t, store, structs.WriteOptimistic)
			if got := len(cs.List()); got != tt.wantCount {
				t.Fatalf("products = %d, want %d", got, tt.wantCount)
			}
			if got := cs.NextID(); got != tt.wantNextId {
				t.Fatalf("next id = %d, want %d", got, tt.wantNextId)
			}
		})
	}
}

func TestCatalogLoadReadFailureStartsEmpty(t *testing.T) {
	store := newFlakyStore()
	store.failGet = true
	cs := newTestCatalog(t, store, structs.WriteOptimistic)

	if !cs.IsLoaded() || len(cs.List()) != 0 || cs.NextID() != structs.SeedMaxId()+1 {
		t.Fatalf("unexpected state after failed read: loaded=%v next=%d", cs.IsLoaded(), cs.NextID())
	}
}

func TestCatalogWriteModes(t *testing.T) {
	ctx := context.Background()

	t.Run("optimistic hides write failures", func(t *testing.T) {
		store := newFlakyStore()
		cs := newTestCatalog(t, store, structs.WriteOptimistic)
		store.failSet = true

		p, err := cs.Create(ctx, watchDraft("A", "$1"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, ok := cs.Get(p.Id); !ok {
			t.Fatal("product missing from memory")
		}
	})

	t.Run("acknowledged reports write failures", func(t *testing.T) {
		store := newFlakyStore()
		cs := newTestCatalog(t, store, structs.WriteAcknowledged)
		store.failSet = true

		p, err := cs.Create(ctx, watchDraft("A", "$1"))
		if !errors.Is(err, lib.ErrPersistence) {
			t.Fatalf("err = %v, want ErrPersistence", err)
		}
		if _, ok := cs.Get(p.Id); !ok {
			t.Fatal("in-memory change should stand after a failed write")
		}

		_, err = cs.Delete(ctx, p.Id)
		if !errors.Is(err, lib.ErrPersistence) {
			t.Fatalf("delete err = %v, want ErrPersistence", err)
		}
	})

	t.Run("unknown mode falls back to optimistic", func(t *testing.T) {
		store := newFlakyStore()
		cs := newTestCatalog(t, store, structs.WriteMode("bogus"))
		store.failSet = true
		if _, err := cs.Create(ctx, watchDraft("A", "$1")); err != nil {
			t.Fatalf("create: %v", err)
		}
	})
}

func TestCatalogSubscribeAndUnsubscribe(t *testing.T) {
	ctx := context.Background()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)

	var first, second []CatalogEvent
	unsubFirst := cs.Subscribe(func(e CatalogEvent) { first = append(first, e) })
	unsubSecond := cs.Subscribe(func(e CatalogEvent) { second = append(second, e) })
	defer unsubSecond()

	p, _ := cs.Create(ctx, watchDraft("A", "$1"))
	unsubFirst()
	unsubFirst()
	cs.Delete(ctx, p.Id)

	if len(first) != 1 || first[0].Op != CatalogCreated || first[0].ProductId != p.Id {
		t.Fatalf("first subscriber events = %+v", first)
	}
	if len(second) != 2 || second[1].Op != CatalogDeleted || len(second[1].Products) != 0 {
		t.Fatalf("second subscriber events = %+v", second)
	}
	if len(second[0].Products) != 1 || second[0].NextId != p.Id+1 {
		t.Fatalf("create event snapshot = %+v", second[0])
	}
}
