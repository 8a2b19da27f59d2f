package services

import (
	"context"
	"math"
	"sync"
	"time"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
)

// ListingService builds listing presenters and stateless listing pages
type ListingService struct {
	logger  *gecho.Logger
	catalog *CatalogService
	delay   time.Duration
}

func NewListingService(logger *gecho.Logger, catalog *CatalogService, cfg *structs.ListingConfig) *ListingService {
	return &ListingService{
		logger:  logger,
		catalog: catalog,
		delay:   cfg.LoadMoreDelay,
	}
}

func validViewport(vp structs.Viewport) bool {
	return vp.Width >= 0 && vp.Height >= 0 &&
		!math.IsNaN(vp.Width) && !math.IsNaN(vp.Height) &&
		!math.IsInf(vp.Width, 0) && !math.IsInf(vp.Height, 0)
}

// Page renders one listing page without keeping any state between calls
func (ls *ListingService) Page(vp structs.Viewport, mode structs.ViewMode, page int) (structs.ListingState, error) {
	if !validViewport(vp) {
		return structs.ListingState{}, lib.ErrInvalidViewport
	}
	if !mode.Valid() {
		mode = structs.ViewGrid
	}
	page = max(page, 1)

	seed := ls.catalog.ListDefaults()
	layout := ComputeLayout(vp, mode)
	visible := VisibleCount(len(seed), page, layout.ItemsPerPage)

	return structs.ListingState{
		ViewMode:     mode,
		Viewport:     vp,
		Layout:       layout,
		CurrentPage:  page,
		VisibleItems: seed[:visible],
		HasMoreItems: HasMoreItems(visible, len(seed)),
		TotalItems:   len(seed),
		UserItems:    ls.catalog.List(),
		Categories:   structs.SeedCategories(),
	}, nil
}

// NewPresenter starts a presenter for one listing screen
func (ls *ListingService) NewPresenter(vp structs.Viewport) (*ListingPresenter, error) {
	if !validViewport(vp) {
		return nil, lib.ErrInvalidViewport
	}

	p := &ListingPresenter{
		logger:     ls.logger,
		delay:      ls.delay,
		seed:       ls.catalog.ListDefaults(),
		categories: structs.SeedCategories(),
		viewMode:   structs.ViewGrid,
		viewport:   vp,
		layout:     ComputeLayout(vp, structs.ViewGrid),
		page:       1,
		userItems:  ls.catalog.List(),
		done:       make(chan struct{}),
	}
	p.unsubscribe = ls.catalog.Subscribe(p.onCatalogChanged)
	return p, nil
}

// ListingPresenter holds the state of one listing screen
type ListingPresenter struct {
	logger     *gecho.Logger
	delay      time.Duration
	seed       []structs.Product
	categories []structs.Category

	mu        sync.Mutex
	viewMode  structs.ViewMode
	viewport  structs.Viewport
	layout    structs.Layout
	page      int
	loading   bool
	closed    bool
	userItems []structs.Product

	done        chan struct{}
	closeOnce   sync.Once
	unsubscribe func()
}

func (p *ListingPresenter) onCatalogChanged(event CatalogEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.userItems = event.Products
}

// Resize recomputes the layout; the page is kept
func (p *ListingPresenter) Resize(vp structs.Viewport) error {
	if !validViewport(vp) {
		return lib.ErrInvalidViewport
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return lib.ErrPresenterClosed
	}
	p.viewport = vp
	p.layout = ComputeLayout(vp, p.viewMode)
	return nil
}

func (p *ListingPresenter) SetViewMode(mode structs.ViewMode) error {
	if !mode.Valid() {
		return lib.ErrInvalidViewMode
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return lib.ErrPresenterClosed
	}
	p.viewMode = mode
	p.layout = ComputeLayout(p.viewport, mode)
	return nil
}

// ToggleViewMode switches grid and list without touching the page
func (p *ListingPresenter) ToggleViewMode() (structs.ViewMode, error) {
	p.mu.Lock()
	next := structs.ViewList
	if p.viewMode == structs.ViewList {
		next = structs.ViewGrid
	}
	p.mu.Unlock()
	if err := p.SetViewMode(next); err != nil {
		return "", err
	}
	return next, nil
}

// Focus resets pagination when the screen is shown again
func (p *ListingPresenter) Focus() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.page = 1
	}
}

func (p *ListingPresenter) hasMoreLocked() bool {
	visible := VisibleCount(len(p.seed), p.page, p.layout.ItemsPerPage)
	return HasMoreItems(visible, len(p.seed))
}

// LoadMore advances one page after the artificial delay. It reports false
// without waiting when a load is running or everything is visible.
func (p *ListingPresenter) LoadMore(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false, lib.ErrPresenterClosed
	}
	if p.loading || !p.hasMoreLocked() {
		p.mu.Unlock()
		return false, nil
	}
	p.loading = true
	p.mu.Unlock()

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
		return false, ctx.Err()
	case <-p.done:
		return false, lib.ErrPresenterClosed
	case <-timer.C:
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false, lib.ErrPresenterClosed
	}
	p.page++
	p.loading = false
	p.logger.Debug("Listing page loaded", gecho.Field("page", p.page))
	return true, nil
}

func (p *ListingPresenter) State() structs.ListingState {
	p.mu.Lock()
	defer p.mu.Unlock()

	visible := VisibleCount(len(p.seed), p.page, p.layout.ItemsPerPage)
	return structs.ListingState{
		ViewMode:     p.viewMode,
		Viewport:     p.viewport,
		Layout:       p.layout,
		CurrentPage:  p.page,
		Loading:      p.loading,
		VisibleItems: structs.CloneProducts(p.seed[:visible]),
		HasMoreItems: HasMoreItems(visible, len(p.seed)),
		TotalItems:   len(p.seed),
		UserItems:    structs.CloneProducts(p.userItems),
		Categories:   append([]structs.Category(nil), p.categories...),
	}
}

// Close detaches from the catalog and aborts a pending LoadMore
func (p *ListingPresenter) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.loading = false
		p.mu.Unlock()
		close(p.done)
		p.unsubscribe()
	})
}
