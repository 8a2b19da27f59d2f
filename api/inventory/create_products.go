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

func (ir *InventoryRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("You must be logged in to add a product"), gecho.Send())
		return
	}

	form, err := lib.DecodeBody[structs.ProductForm](r)
	if err != nil {
		handling.HandleBodyError(err, "Please check the product information and try again", ir.logger, w)
		return
	}
	if err := lib.ValidateProductForm(form, structs.FormCreate); err != nil {
		handling.HandleBodyError(err, "Please check the product information and try again", ir.logger, w)
		return
	}

	draft, err := lib.BuildDraft(form, user.Id)
	if err != nil {
		handling.HandleBodyError(err, "Please check the product information and try again", ir.logger, w)
		return
	}

	product, err := ir.catalogService.Create(r.Context(), draft)
	if errors.Is(err, lib.ErrPersistence) {
		ir.logger.Error("Product created but not persisted", gecho.Field("product_id", product.Id), gecho.Field("error", err))
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("Product was added but could not be saved. It will be saved with the next change"),
			gecho.WithData(product),
			gecho.Send(),
		)
		return
	}
	if err != nil {
		handling.HandleError(err, "Unable to create product. Please try again", ir.logger, w)
		return
	}

	ir.logger.Debug("Product created", gecho.Field("product_id", product.Id), gecho.Field("owner_id", user.Id))

	gecho.Success(w,
		gecho.WithData(product),
		gecho.WithMessage("Product created successfully"),
		gecho.Send(),
	)
}
