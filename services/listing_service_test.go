package services

import (
	"context"
	"errors"
	"testing"
	"time"
	"watchmarket_server/database"
	"watchmarket_server/lib"
	"watchmarket_server/structs"
)

var phonePortrait = structs.Viewport{Width: 390, Height: 844}

func newTestListing(t *testing.T, delay time.Duration) (*ListingService, *CatalogService) {
	t.Helper()
	cs := newTestCatalog(t, database.NewMemoryStore(), structs.WriteOptimistic)
	return NewListingService(testLogger(), cs, &structs.ListingConfig{LoadMoreDelay: delay}), cs
}

func newTestPresenter(t *testing.T, ls *ListingService) *ListingPresenter {
	t.Helper()
	p, err := ls.NewPresenter(phonePortrait)
	if err != nil {
		t.Fatalf("new presenter: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestPresenterInitialState(t *testing.T) {
	ls, _ := newTestListing(t, time.Millisecond)
	st := newTestPresenter(t, ls).State()

	if st.ViewMode != structs.ViewGrid || st.CurrentPage != 1 || st.Loading {
		t.Fatalf("unexpected initial state: mode=%s page=%d loading=%v", st.ViewMode, st.CurrentPage, st.Loading)
	}
	if len(st.VisibleItems) != 8 || !st.HasMoreItems || st.TotalItems != 30 {
		t.Fatalf("visible=%d more=%v total=%d", len(st.VisibleItems), st.HasMoreItems, st.TotalItems)
	}
	if len(st.Categories) == 0 {
		t.Fatal("categories missing")
	}
}

func TestPresenterLoadMoreUntilExhausted(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestListing(t, time.Millisecond)
	p := newTestPresenter(t, ls)

	for want := 2; want <= 4; want++ {
		ok, err := p.LoadMore(ctx)
		if !ok || err != nil {
			t.Fatalf("load more to page %d = %v, %v", want, ok, err)
		}
		if got := p.State().CurrentPage; got != want {
			t.Fatalf("page = %d, want %d", got, want)
		}
	}

	st := p.State()
	if len(st.VisibleItems) != 30 || st.HasMoreItems {
		t.Fatalf("visible=%d more=%v after exhausting", len(st.VisibleItems), st.HasMoreItems)
	}
	if ok, err := p.LoadMore(ctx); ok || err != nil {
		t.Fatalf("load more past the end = %v, %v", ok, err)
	}
	if p.State().CurrentPage != 4 {
		t.Fatal("page advanced past the end")
	}
}

func TestPresenterLoadMoreIsSingleFlight(t *testing.T) {
	ls, _ := newTestListing(t, 100*time.Millisecond)
	p := newTestPresenter(t, ls)

	done := make(chan bool, 1)
	go func() {
		ok, _ := p.LoadMore(context.Background())
		done <- ok
	}()

	deadline := time.Now().Add(time.Second)
	for !p.State().Loading {
		if time.Now().After(deadline) {
			t.Fatal("first load never started")
		}
		time.Sleep(time.Millisecond)
	}

	if ok, err := p.LoadMore(context.Background()); ok || err != nil {
		t.Fatalf("overlapping load = %v, %v", ok, err)
	}
	if !<-done {
		t.Fatal("first load did not complete")
	}
	if p.State().CurrentPage != 2 {
		t.Fatalf("page = %d, want 2", p.State().CurrentPage)
	}
}

func TestPresenterCloseAbortsPendingLoad(t *testing.T) {
	ls, _ := newTestListing(t, time.Hour)
	p, err := ls.NewPresenter(phonePortrait)
	if err != nil {
		t.Fatal(err)
	}

	errc := make(chan error, 1)
	go func() {
		_, err := p.LoadMore(context.Background())
		errc <- err
	}()

	deadline := time.Now().Add(time.Second)
	for !p.State().Loading {
		if time.Now().After(deadline) {
			t.Fatal("load never started")
		}
		time.Sleep(time.Millisecond)
	}
	p.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, lib.ErrPresenterClosed) {
			t.Fatalf("err = %v, want ErrPresenterClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("LoadMore did not return after Close")
	}
	if p.State().CurrentPage != 1 {
		t.Fatal("page advanced after Close")
	}
	if err := p.Resize(phonePortrait); !errors.Is(err, lib.ErrPresenterClosed) {
		t.Fatalf("resize after close = %v", err)
	}
}

func TestPresenterLoadMoreHonoursContext(t *testing.T) {
	ls, _ := newTestListing(t, time.Hour)
	p := newTestPresenter(t, ls)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.LoadMore(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if st := p.State(); st.Loading || st.CurrentPage != 1 {
		t.Fatalf("loading=%v page=%d after cancel", st.Loading, st.CurrentPage)
	}
}

func TestPresenterToggleKeepsPageAndFocusResets(t *testing.T) {
	ls, _ := newTestListing(t, time.Millisecond)
	p := newTestPresenter(t, ls)

	p.LoadMore(context.Background())
	mode, err := p.ToggleViewMode()
	if err != nil || mode != structs.ViewList {
		t.Fatalf("toggle = %s, %v", mode, err)
	}
	st := p.State()
	if st.CurrentPage != 2 || st.Layout.NumColumns != 1 {
		t.Fatalf("page=%d columns=%d after toggle", st.CurrentPage, st.Layout.NumColumns)
	}

	if mode, _ := p.ToggleViewMode(); mode != structs.ViewGrid {
		t.Fatalf("second toggle = %s", mode)
	}

	p.Focus()
	if p.State().CurrentPage != 1 {
		t.Fatal("focus should reset to the first page")
	}
}

func TestPresenterResizeRecomputesPageSize(t *testing.T) {
	ls, _ := newTestListing(t, time.Millisecond)
	p := newTestPresenter(t, ls)

	if err := p.Resize(structs.Viewport{Width: 844, Height: 390}); err != nil {
		t.Fatal(err)
	}
	st := p.State()
	if st.Layout.ItemsPerPage != 12 || len(st.VisibleItems) != 12 {
		t.Fatalf("per page=%d visible=%d in landscape", st.Layout.ItemsPerPage, len(st.VisibleItems))
	}
	if err := p.Resize(structs.Viewport{Width: -1, Height: 10}); !errors.Is(err, lib.ErrInvalidViewport) {
		t.Fatalf("negative viewport = %v", err)
	}
	if err := p.SetViewMode("carousel"); !errors.Is(err, lib.ErrInvalidViewMode) {
		t.Fatalf("bad view mode = %v", err)
	}
}

func TestPresenterFollowsCatalogChanges(t *testing.T) {
	ctx := context.Background()
	ls, cs := newTestListing(t, time.Millisecond)
	p := newTestPresenter(t, ls)

	created, _ := cs.Create(ctx, watchDraft("Daytona", "$30000"))
	if items := p.State().UserItems; len(items) != 1 || items[0].Id != created.Id {
		t.Fatalf("user items after create = %+v", items)
	}

	p.Close()
	cs.Delete(ctx, created.Id)
	if len(p.State().UserItems) != 1 {
		t.Fatal("closed presenter should stop following the catalog")
	}
}

func TestListingPageIsStateless(t *testing.T) {
	ls, _ := newTestListing(t, time.Millisecond)

	st, err := ls.Page(phonePortrait, structs.ViewList, 3)
	if err != nil {
		t.Fatal(err)
	}
	if st.CurrentPage != 3 || len(st.VisibleItems) != 24 || !st.HasMoreItems {
		t.Fatalf("page=%d visible=%d more=%v", st.CurrentPage, len(st.VisibleItems), st.HasMoreItems)
	}

	st, _ = ls.Page(phonePortrait, "", 0)
	if st.ViewMode != structs.ViewGrid || st.CurrentPage != 1 {
		t.Fatalf("defaults not applied: mode=%s page=%d", st.ViewMode, st.CurrentPage)
	}

	if _, err := ls.Page(structs.Viewport{Width: -5}, structs.ViewGrid, 1); !errors.Is(err, lib.ErrInvalidViewport) {
		t.Fatalf("err = %v", err)
	}
}
