package products

import (
	"watchmarket_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	listingService *services.ListingService
	invoiceService *services.InvoiceService
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	listingService *services.ListingService,
	invoiceService *services.InvoiceService,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		listingService: listingService,
		invoiceService: invoiceService,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/products", prm.FetchListing)
	r.Get("/products/defaults", prm.FetchDefaults)
	r.Get("/products/{id}", prm.FetchProductByID)
	r.Get("/products/{id}/invoice", prm.FetchInvoice)
}
