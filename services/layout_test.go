package services

import (
	"testing"
	"watchmarket_server/structs"
)

func TestProfileForBreakpoints(t *testing.T) {
	tests := []struct {
		width float64
		want  structs.DeviceProfile
	}{
		{0, structs.ProfilePhone},
		{390, structs.ProfilePhone},
		{767.9, structs.ProfilePhone},
		{768, structs.ProfileTablet},
		{1023, structs.ProfileTablet},
		{1024, structs.ProfileDesktop},
		{2560, structs.ProfileDesktop},
	}
	for _, tt := range tests {
		if got := ProfileFor(tt.width); got != tt.want {
			t.Errorf("ProfileFor(%v) = %s, want %s", tt.width, got, tt.want)
		}
	}
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name        string
		vp          structs.Viewport
		mode        structs.ViewMode
		wantColumns int
		wantPerPage int
		wantCard    float64
	}{
		{"phone portrait", structs.Viewport{Width: 390, Height: 844}, structs.ViewGrid, 2, 8, 292.5},
		{"large phone landscape uses tablet breakpoint", structs.Viewport{Width: 844, Height: 390}, structs.ViewGrid, 4, 12, 253.2},
		{"tablet portrait", structs.Viewport{Width: 800, Height: 1200}, structs.ViewGrid, 3, 8, 360},
		{"desktop landscape", structs.Viewport{Width: 1440, Height: 900}, structs.ViewGrid, 5, 12, 316.8},
		{"list mode is one column", structs.Viewport{Width: 1440, Height: 900}, structs.ViewList, 1, 12, 316.8},
		{"square is portrait", structs.Viewport{Width: 500, Height: 500}, structs.ViewGrid, 2, 8, 375},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(tt.vp, tt.mode)
			if l.NumColumns != tt.wantColumns {
				t.Errorf("columns = %d, want %d", l.NumColumns, tt.wantColumns)
			}
			if l.ItemsPerPage != tt.wantPerPage {
				t.Errorf("items per page = %d, want %d", l.ItemsPerPage, tt.wantPerPage)
			}
			if diff := l.HorizontalCardWidth - tt.wantCard; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("card width = %v, want %v", l.HorizontalCardWidth, tt.wantCard)
			}
			wantItem := (tt.vp.Width - 40) / float64(tt.wantColumns)
			if l.ItemWidth != wantItem {
				t.Errorf("item width = %v, want %v", l.ItemWidth, wantItem)
			}
		})
	}
}

func TestComputeLayoutNarrowViewportClampsItemWidth(t *testing.T) {
	l := ComputeLayout(structs.Viewport{Width: 20, Height: 40}, structs.ViewGrid)
	if l.ItemWidth != 0 {
		t.Fatalf("item width = %v, want 0", l.ItemWidth)
	}
}

func TestVisibleCount(t *testing.T) {
	tests := []struct {
		total, page, perPage, want int
	}{
		{30, 1, 8, 8},
		{30, 2, 8, 16},
		{30, 3, 8, 24},
		{30, 4, 8, 30},
		{30, 5, 8, 30},
		{30, 1, 12, 12},
		{30, 3, 12, 30},
		{0, 1, 8, 0},
		{30, 0, 8, 0},
		{30, 1, 0, 0},
		{30, 1 << 40, 8, 30},
	}
	for _, tt := range tests {
		if got := VisibleCount(tt.total, tt.page, tt.perPage); got != tt.want {
			t.Errorf("VisibleCount(%d, %d, %d) = %d, want %d", tt.total, tt.page, tt.perPage, got, tt.want)
		}
	}
}

func TestVisiblePageAndHasMore(t *testing.T) {
	seed := structs.SeedProducts()

	page := VisiblePage(seed, 1, 8)
	if len(page) != 8 || page[0].Id != 1 || page[7].Id != 8 {
		t.Fatalf("first page = %d items", len(page))
	}
	if !HasMoreItems(len(page), len(seed)) {
		t.Fatal("first page should have more")
	}
	if HasMoreItems(len(VisiblePage(seed, 4, 8)), len(seed)) {
		t.Fatal("fourth page should show everything")
	}
}
