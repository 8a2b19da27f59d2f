package structs

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

func (v ViewMode) Valid() bool {
	return v == ViewGrid || v == ViewList
}

// Viewport is the screen size in device-independent pixels
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (v Viewport) Landscape() bool {
	return v.Width > v.Height
}

type DeviceProfile string

const (
	ProfilePhone   DeviceProfile = "phone"
	ProfileTablet  DeviceProfile = "tablet"
	ProfileDesktop DeviceProfile = "desktop"
)

// Layout is derived entirely from the viewport and view mode
type Layout struct {
	Profile             DeviceProfile `json:"profile"`
	Landscape           bool          `json:"landscape"`
	NumColumns          int           `json:"numColumns"`
	ItemWidth           float64       `json:"itemWidth"`
	HorizontalCardWidth float64       `json:"horizontalCardWidth"`
	ItemsPerPage        int           `json:"itemsPerPage"`
}

// ListingState is a read-only snapshot of the listing screen
type ListingState struct {
	ViewMode     ViewMode   `json:"viewMode"`
	Viewport     Viewport   `json:"viewport"`
	Layout       Layout     `json:"layout"`
	CurrentPage  int        `json:"currentPage"`
	Loading      bool       `json:"loading"`
	VisibleItems []Product  `json:"visibleItems"`
	HasMoreItems bool       `json:"hasMoreItems"`
	TotalItems   int        `json:"totalItems"`
	UserItems    []Product  `json:"userItems"`
	Categories   []Category `json:"categories"`
}
