package brands

import (
	"net/http"
	"watchmarket_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type BrandRoutesManager struct {
	logger       *gecho.Logger
	brandService *services.BrandService
}

func NewBrandRoutesManager(logger *gecho.Logger, brandService *services.BrandService) *BrandRoutesManager {
	return &BrandRoutesManager{
		logger:       logger,
		brandService: brandService,
	}
}

func (brm *BrandRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/brands", brm.FetchBrands)
}

// FetchBrands lists brands for the picker, filtered by ?q=
func (brm *BrandRoutesManager) FetchBrands(w http.ResponseWriter, r *http.Request) {
	brands := brm.brandService.SearchBrands(r.Context(), r.URL.Query().Get("q"))

	gecho.Success(w,
		gecho.WithData(brands),
		gecho.Send(),
	)
}
