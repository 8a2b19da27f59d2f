package services

import (
	"context"
	"watchmarket_server/database"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/asaskevich/EventBus"
)

type ServiceManager struct {
	AuthService    *AuthService
	EmailService   *EmailService
	HealthService  *HealthService
	CatalogService *CatalogService
	ListingService *ListingService
	ThemeService   *ThemeService
	BrandService   *BrandService
	SearchService  *SearchService
	InvoiceService *InvoiceService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, store database.Store) *ServiceManager {
	bus := EventBus.New()

	catalogService := NewCatalogService(logger, store, bus, cfg.Catalog)
	authService := NewAuthService(cfg.Auth, logger, store)
	emailService := NewEmailService(logger, cfg.Email)
	healthService := NewHealthService(logger, store, catalogService)
	listingService := NewListingService(logger, catalogService, cfg.Listing)
	themeService := NewThemeService(logger, store)
	brandService := NewBrandService(logger, cfg.Brands)
	searchService := NewSearchService(catalogService)
	invoiceService := NewInvoiceService(catalogService)

	return &ServiceManager{
		AuthService:    authService,
		EmailService:   emailService,
		HealthService:  healthService,
		CatalogService: catalogService,
		ListingService: listingService,
		ThemeService:   themeService,
		BrandService:   brandService,
		SearchService:  searchService,
		InvoiceService: invoiceService,
	}
}

// Load hydrates every stateful service from storage
func (sm *ServiceManager) Load(ctx context.Context) {
	sm.CatalogService.Load(ctx)
	sm.AuthService.Load(ctx)
	sm.ThemeService.Load(ctx)
}
