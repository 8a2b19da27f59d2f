package inventory

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (ir *InventoryRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := ir.catalogService.List()

	if owner := r.URL.Query().Get("owner"); owner != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.OwnerId == owner {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
			"loaded":   ir.catalogService.IsLoaded(),
		}),
		gecho.Send(),
	)
}

func (ir *InventoryRoutesManager) NextID(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]int{"nextId": ir.catalogService.NextID()}),
		gecho.Send(),
	)
}
