package inventory

import (
	"errors"
	"net/http"
	"watchmarket_server/api/middleware"
	"watchmarket_server/handling"
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
)

// UpdateProduct replaces the whole product; there is no partial patch
func (ir *InventoryRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("You must be logged in"), gecho.Send())
		return
	}

	id, err := handling.ParseProductID(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please select a product to update"), gecho.Send())
		return
	}

	existing, found := ir.catalogService.Get(id)
	if !found {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}
	if existing.OwnerId != user.Id {
		ir.logger.Warn("User attempted to edit a product they do not own", gecho.Field("user_id", user.Id), gecho.Field("product_id", id))
		gecho.Forbidden(w, gecho.WithMessage("You can only edit your own products"), gecho.Send())
		return
	}

	form, err := lib.DecodeBody[structs.ProductForm](r)
	if err != nil {
		handling.HandleBodyError(err, "Please check the product information and try again", ir.logger, w)
		return
	}
	if form.Color == "" {
		form.Color = existing.Color
	}
	if err := lib.ValidateProductForm(form, structs.FormEdit); err != nil {
		handling.HandleBodyError(err, "Please check the product information and try again", ir.logger, w)
		return
	}

	draft, err := lib.BuildDraft(form, existing.OwnerId)
	if err != nil {
		handling.HandleBodyError(err, "Please check the product information and try again", ir.logger, w)
		return
	}
	product := draft.WithId(id)

	found, err = ir.catalogService.Update(r.Context(), product)
	if !found {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}
	if errors.Is(err, lib.ErrPersistence) {
		ir.logger.Error("Product updated but not persisted", gecho.Field("product_id", id), gecho.Field("error", err))
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("Product was updated but could not be saved. It will be saved with the next change"),
			gecho.WithData(product),
			gecho.Send(),
		)
		return
	}
	if err != nil {
		handling.HandleError(err, "Unable to update product. Please try again", ir.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.WithMessage("Product updated successfully"),
		gecho.Send(),
	)
}
