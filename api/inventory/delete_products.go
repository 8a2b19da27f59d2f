package inventory

import (
	"errors"
	"net/http"
	"watchmarket_server/api/middleware"
	"watchmarket_server/handling"
	"watchmarket_server/lib"

	"github.com/MonkyMars/gecho"
)

func (ir *InventoryRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("You must be logged in"), gecho.Send())
		return
	}

	id, err := handling.ParseProductID(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a product to delete"), gecho.Send())
		return
	}

	existing, found := ir.catalogService.Get(id)
	if !found {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}
	if existing.OwnerId != user.Id {
		ir.logger.Warn("User attempted to delete a product they do not own", gecho.Field("user_id", user.Id), gecho.Field("product_id", id))
		gecho.Forbidden(w, gecho.WithMessage("You can only delete your own products"), gecho.Send())
		return
	}

	found, err = ir.catalogService.Delete(r.Context(), id)
	if !found {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}
	if errors.Is(err, lib.ErrPersistence) {
		ir.logger.Error("Product deleted but not persisted", gecho.Field("product_id", id), gecho.Field("error", err))
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("Product was removed but the change could not be saved"),
			gecho.Send(),
		)
		return
	}
	if err != nil {
		handling.HandleError(err, "Unable to delete product. Please try again", ir.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted successfully"),
		gecho.WithData(map[string]int{"deleted_id": id}),
		gecho.Send(),
	)
}
