package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/robfig/cron/v3"
)

const (
	brandSourceRemote   = "remote"
	brandSourceFallback = "fallback"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// BrandService looks up watch brands from the brand endpoint, falling back to a built-in list
type BrandService struct {
	logger *gecho.Logger
	cfg    *structs.BrandsConfig
	client *http.Client

	mu     sync.RWMutex
	brands []structs.Brand
	source string

	sched *cron.Cron
}

func NewBrandService(logger *gecho.Logger, cfg *structs.BrandsConfig) *BrandService {
	return &BrandService{
		logger: logger,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// brandsURL builds the request URL, or reports false when the base URL is unusable
func (bs *BrandService) brandsURL() (string, bool) {
	base := strings.TrimSpace(bs.cfg.BaseURL)
	if base == "" || strings.Contains(base, "{{") || strings.Contains(base, "}}") {
		return "", false
	}
	base = strings.TrimSuffix(base, "/")

	endpoint := bs.cfg.Endpoint
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	u, err := url.Parse(base + endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	q := u.Query()
	q.Set("page", "1")
	q.Set("per_page", strconv.Itoa(bs.cfg.PerPage))
	q.Set("sort", "name")
	q.Set("direction", "asc")
	q.Set("active", "true")
	u.RawQuery = q.Encode()
	return u.String(), true
}

// FetchBrands asks the brand endpoint. Any failure yields the fallback list.
func (bs *BrandService) FetchBrands(ctx context.Context) ([]structs.Brand, string) {
	target, ok := bs.brandsURL()
	if !ok {
		bs.logger.Debug("Brand base URL is not configured, using fallback brands")
		return fallbackBrands(), brandSourceFallback
	}

	brands, err := bs.fetch(ctx, target)
	if err != nil {
		bs.logger.Warn("Brand lookup failed, using fallback brands", gecho.Field("error", err))
		return fallbackBrands(), brandSourceFallback
	}
	return brands, brandSourceRemote
}

func (bs *BrandService) fetch(ctx context.Context, target string) ([]structs.Brand, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := bs.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("brand endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return decodeBrands(body)
}

type wireBrand struct {
	Id   json.RawMessage `json:"id"`
	Name string          `json:"name"`
}

// decodeBrands accepts a bare array or an object wrapping it under a common key.
// An object without any of those keys decodes to an empty list.
func decodeBrands(body []byte) ([]structs.Brand, error) {
	var list []wireBrand
	if err := json.Unmarshal(body, &list); err == nil {
		return toBrands(list), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected brand response: %w", err)
	}
	for _, field := range []string{"data", "brands", "items", "results", "records"} {
		raw, ok := envelope[field]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err == nil {
			return toBrands(list), nil
		}
	}
	return []structs.Brand{}, nil
}

func toBrands(list []wireBrand) []structs.Brand {
	out := make([]structs.Brand, 0, len(list))
	for _, b := range list {
		id := strings.TrimSpace(string(b.Id))
		if unquoted, err := strconv.Unquote(id); err == nil {
			id = unquoted
		}
		if id == "null" {
			id = ""
		}
		out = append(out, structs.Brand{Id: id, Name: b.Name})
	}
	return out
}

func fallbackBrands() []structs.Brand {
	out := make([]structs.Brand, len(structs.FallbackBrands))
	copy(out, structs.FallbackBrands)
	return out
}

// Refresh replaces the cached brand list
func (bs *BrandService) Refresh(ctx context.Context) {
	brands, source := bs.FetchBrands(ctx)
	BrandFetches.WithLabelValues(source).Inc()

	bs.mu.Lock()
	bs.brands = brands
	bs.source = source
	bs.mu.Unlock()

	bs.logger.Debug("Brand cache refreshed", gecho.Field("count", len(brands)), gecho.Field("source", source))
}

// Brands returns the cached list, fetching it on first use
func (bs *BrandService) Brands(ctx context.Context) []structs.Brand {
	bs.mu.RLock()
	cached := bs.brands
	bs.mu.RUnlock()

	if cached == nil {
		bs.Refresh(ctx)
		bs.mu.RLock()
		cached = bs.brands
		bs.mu.RUnlock()
	}

	out := make([]structs.Brand, len(cached))
	copy(out, cached)
	return out
}

// SearchBrands filters by case-insensitive substring; an empty query returns all
func SearchBrands(query string, brands []structs.Brand) []structs.Brand {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return brands
	}
	out := make([]structs.Brand, 0)
	for _, b := range brands {
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}

func (bs *BrandService) SearchBrands(ctx context.Context, query string) []structs.Brand {
	return SearchBrands(query, bs.Brands(ctx))
}

// Start schedules background refreshes on the configured cron spec
func (bs *BrandService) Start() error {
	bs.sched = cron.New(cron.WithParser(cronParser))
	_, err := bs.sched.AddFunc(bs.cfg.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), bs.cfg.RequestTimeout)
		defer cancel()
		bs.Refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid brand refresh schedule %q: %w", bs.cfg.RefreshSchedule, err)
	}
	bs.sched.Start()
	return nil
}

func (bs *BrandService) Stop() {
	if bs.sched != nil {
		<-bs.sched.Stop().Done()
	}
}
