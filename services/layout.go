package services

import (
	"math"
	"watchmarket_server/structs"
)

const (
	DesktopMinWidth = 1024
	TabletMinWidth  = 768

	// horizontal padding around the grid
	listingPadding = 40

	PortraitItemsPerPage  = 8
	LandscapeItemsPerPage = 12
)

type layoutProfile struct {
	columnsPortrait, columnsLandscape   int
	fractionPortrait, fractionLandscape float64
}

var layoutProfiles = map[structs.DeviceProfile]layoutProfile{
	structs.ProfileDesktop: {4, 5, 0.30, 0.22},
	structs.ProfileTablet:  {3, 4, 0.45, 0.30},
	structs.ProfilePhone:   {2, 3, 0.75, 0.45},
}

// ProfileFor picks the breakpoint profile for a screen width
func ProfileFor(width float64) structs.DeviceProfile {
	switch {
	case width >= DesktopMinWidth:
		return structs.ProfileDesktop
	case width >= TabletMinWidth:
		return structs.ProfileTablet
	default:
		return structs.ProfilePhone
	}
}

// ItemsPerPage is larger in landscape
func ItemsPerPage(landscape bool) int {
	if landscape {
		return LandscapeItemsPerPage
	}
	return PortraitItemsPerPage
}

// ComputeLayout derives columns, widths and page size from the viewport
func ComputeLayout(vp structs.Viewport, mode structs.ViewMode) structs.Layout {
	width := math.Max(0, vp.Width)
	landscape := vp.Landscape()
	profile := ProfileFor(width)
	lp := layoutProfiles[profile]

	columns, fraction := lp.columnsPortrait, lp.fractionPortrait
	if landscape {
		columns, fraction = lp.columnsLandscape, lp.fractionLandscape
	}
	if mode == structs.ViewList {
		columns = 1
	}

	return structs.Layout{
		Profile:             profile,
		Landscape:           landscape,
		NumColumns:          columns,
		ItemWidth:           math.Max(0, (width-listingPadding)/float64(columns)),
		HorizontalCardWidth: width * fraction,
		ItemsPerPage:        ItemsPerPage(landscape),
	}
}

// VisibleCount is min(page*perPage, total), never negative
func VisibleCount(total, page, perPage int) int {
	if total <= 0 || page <= 0 || perPage <= 0 {
		return 0
	}
	if page > total/perPage+1 {
		return total
	}
	return min(page*perPage, total)
}

// VisiblePage returns a copy of the first page*perPage items
func VisiblePage(items []structs.Product, page, perPage int) []structs.Product {
	return structs.CloneProducts(items[:VisibleCount(len(items), page, perPage)])
}

func HasMoreItems(visible, total int) bool {
	return visible < total
}
