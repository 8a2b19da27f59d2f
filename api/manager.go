package api

import (
	"watchmarket_server/api/auth"
	"watchmarket_server/api/brands"
	"watchmarket_server/api/health"
	"watchmarket_server/api/inventory"
	"watchmarket_server/api/middleware"
	"watchmarket_server/api/products"
	"watchmarket_server/api/search"
	"watchmarket_server/api/settings"
	"watchmarket_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes   *products.ProductRoutesManager
	inventoryRoutes *inventory.InventoryRoutesManager
	healthRoutes    *health.HealthRoutesManager
	authRoutes      *auth.AuthRoutesManager
	brandRoutes     *brands.BrandRoutesManager
	searchRoutes    *search.SearchRoutesManager
	settingsRoutes  *settings.SettingsRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		productRoutes:   products.NewProductRoutesManager(logger, sm.CatalogService, sm.ListingService, sm.InvoiceService),
		inventoryRoutes: inventory.NewInventoryRoutesManager(logger, sm.CatalogService, mw),
		healthRoutes:    health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:      auth.NewAuthRoutesManager(logger, sm.AuthService, sm.EmailService, mw),
		brandRoutes:     brands.NewBrandRoutesManager(logger, sm.BrandService),
		searchRoutes:    search.NewSearchRoutesManager(logger, sm.SearchService),
		settingsRoutes:  settings.NewSettingsRoutesManager(logger, sm.ThemeService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.inventoryRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.brandRoutes.RegisterRoutes(r)
	rm.searchRoutes.RegisterRoutes(r)
	rm.settingsRoutes.RegisterRoutes(r)
}
