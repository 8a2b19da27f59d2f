package inventory

import (
	"watchmarket_server/api/middleware"
	"watchmarket_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type InventoryRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewInventoryRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *InventoryRoutesManager {
	return &InventoryRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (ir *InventoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", ir.ListProducts)
		r.Get("/next-id", ir.NextID)

		// Mutations need a session
		r.Group(func(r chi.Router) {
			r.Use(ir.mw.UserAuthMiddleware)
			r.Post("/", ir.CreateProduct)
			r.Put("/{id}", ir.UpdateProduct)
			r.Delete("/{id}", ir.DeleteProduct)
		})
	})
}
