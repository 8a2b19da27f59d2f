package services

import (
	"strings"
	"sync"
	"watchmarket_server/structs"
)

const (
	maxRecentSearches = 10
	maxSuggestions    = 5
)

// SearchService filters the demo and user catalogs and remembers recent queries
type SearchService struct {
	catalog *CatalogService

	mu     sync.Mutex
	recent []string
}

func NewSearchService(catalog *CatalogService) *SearchService {
	return &SearchService{catalog: catalog, recent: []string{}}
}

func (ss *SearchService) allProducts() []structs.Product {
	return append(ss.catalog.ListDefaults(), ss.catalog.List()...)
}

// Search matches title or description case-insensitively and records the query
func (ss *SearchService) Search(query string) []structs.Product {
	q := strings.TrimSpace(query)
	if q == "" {
		return []structs.Product{}
	}
	ss.remember(q)

	needle := strings.ToLower(q)
	results := make([]structs.Product, 0)
	for _, p := range ss.allProducts() {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			results = append(results, p)
		}
	}
	return results
}

// Suggestions returns up to five titles containing the query
func (ss *SearchService) Suggestions(query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]string, 0, maxSuggestions)
	if needle == "" {
		return out
	}
	for _, p := range ss.allProducts() {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p.Title)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

func (ss *SearchService) remember(query string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	next := make([]string, 0, maxRecentSearches)
	next = append(next, query)
	for _, q := range ss.recent {
		if q != query && len(next) < maxRecentSearches {
			next = append(next, q)
		}
	}
	ss.recent = next
}

// Recent returns the latest queries, most recent first
func (ss *SearchService) Recent() []string {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return append([]string(nil), ss.recent...)
}

func (ss *SearchService) ClearRecent() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.recent = []string{}
}
