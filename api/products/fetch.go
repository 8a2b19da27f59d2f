package products

import (
	"errors"
	"net/http"
	"watchmarket_server/handling"
	"watchmarket_server/lib"

	"github.com/MonkyMars/gecho"
)

// FetchListing handles GET /products: one page of the listing screen
func (p *ProductRoutesManager) FetchListing(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseListingOptions(r)
	if err != nil {
		p.logger.Debug("Invalid listing query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	state, err := p.listingService.Page(opts.Viewport, opts.ViewMode, opts.Page)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}

	p.logger.Debug("Listing page served",
		gecho.Field("page", state.CurrentPage),
		gecho.Field("columns", state.Layout.NumColumns),
		gecho.Field("visible", len(state.VisibleItems)),
	)

	gecho.Success(w,
		gecho.WithData(state),
		gecho.Send(),
	)
}

// FetchDefaults handles GET /products/defaults
func (p *ProductRoutesManager) FetchDefaults(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": p.catalogService.ListDefaults(),
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id} for demo and user products
func (p *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseProductID(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	product, err := p.invoiceService.FindProduct(id)
	if errors.Is(err, lib.ErrNotFound) {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}
	if err != nil {
		handling.HandleError(err, "Unable to load product", p.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// FetchInvoice handles GET /products/{id}/invoice
func (p *ProductRoutesManager) FetchInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := handling.ParseProductID(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	invoice, err := p.invoiceService.InvoiceFor(id)
	if errors.Is(err, lib.ErrNotFound) {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}
	if err != nil {
		handling.HandleError(err, "Unable to build invoice", p.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(invoice),
		gecho.Send(),
	)
}
