package handling

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"watchmarket_server/structs"

	"github.com/go-chi/chi/v5"
)

// Viewport used when a client sends no size
var DefaultViewport = structs.Viewport{Width: 390, Height: 844}

// ListingOptions are the query parameters of a listing page
type ListingOptions struct {
	Viewport structs.Viewport
	ViewMode structs.ViewMode
	Page     int
}

// ParseListingOptions parses width, height, view and page
func ParseListingOptions(r *http.Request) (*ListingOptions, error) {
	query := r.URL.Query()

	opts := &ListingOptions{
		Viewport: DefaultViewport,
		ViewMode: structs.ViewGrid,
		Page:     1,
	}

	// Early return if no query params
	if len(query) == 0 {
		return opts, nil
	}

	var err error
	if width := query.Get("width"); width != "" {
		if opts.Viewport.Width, err = parseDimension("width", width); err != nil {
			return nil, err
		}
	}

	if height := query.Get("height"); height != "" {
		if opts.Viewport.Height, err = parseDimension("height", height); err != nil {
			return nil, err
		}
	}

	if view := query.Get("view"); view != "" {
		opts.ViewMode = structs.ViewMode(strings.ToLower(view))
		if !opts.ViewMode.Valid() {
			return nil, fmt.Errorf("view must be grid or list, got %q", view)
		}
	}

	if page := query.Get("page"); page != "" {
		val, err := strconv.Atoi(page)
		if err != nil || val < 1 {
			return nil, fmt.Errorf("page must be a positive integer, got %q", page)
		}
		opts.Page = val
	}

	return opts, nil
}

func parseDimension(name, raw string) (float64, error) {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(val) || val < 0 || val > 100000 {
		return 0, fmt.Errorf("%s must be a non-negative number, got %q", name, raw)
	}
	return val, nil
}

// ParseProductID reads the {id} URL parameter
func ParseProductID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", idStr)
	}
	return id, nil
}
