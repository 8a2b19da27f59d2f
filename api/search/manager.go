package search

import (
	"net/http"
	"watchmarket_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SearchRoutesManager struct {
	logger        *gecho.Logger
	searchService *services.SearchService
}

func NewSearchRoutesManager(logger *gecho.Logger, searchService *services.SearchService) *SearchRoutesManager {
	return &SearchRoutesManager{
		logger:        logger,
		searchService: searchService,
	}
}

func (srm *SearchRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/search", func(r chi.Router) {
		r.Get("/", srm.Search)
		r.Get("/suggestions", srm.Suggestions)
		r.Get("/recent", srm.Recent)
		r.Delete("/recent", srm.ClearRecent)
	})
}

func (srm *SearchRoutesManager) Search(w http.ResponseWriter, r *http.Request) {
	results := srm.searchService.Search(r.URL.Query().Get("q"))

	gecho.Success(w,
		gecho.WithData(results),
		gecho.Send(),
	)
}

func (srm *SearchRoutesManager) Suggestions(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(srm.searchService.Suggestions(r.URL.Query().Get("q"))),
		gecho.Send(),
	)
}

func (srm *SearchRoutesManager) Recent(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(srm.searchService.Recent()),
		gecho.Send(),
	)
}

func (srm *SearchRoutesManager) ClearRecent(w http.ResponseWriter, r *http.Request) {
	srm.searchService.ClearRecent()

	gecho.Success(w,
		gecho.WithMessage("Recent searches cleared"),
		gecho.Send(),
	)
}
