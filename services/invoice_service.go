package services

import (
	"watchmarket_server/lib"
	"watchmarket_server/structs"

	"github.com/shopspring/decimal"
)

var invoiceTaxRate = decimal.RequireFromString("0.07")

type InvoiceService struct {
	catalog *CatalogService
}

func NewInvoiceService(catalog *CatalogService) *InvoiceService {
	return &InvoiceService{catalog: catalog}
}

// BuildInvoice prices a product with 7% tax; total is rounded from the unrounded sum
func BuildInvoice(p structs.Product) structs.Invoice {
	subtotal := p.Price.Decimal()
	tax := subtotal.Mul(invoiceTaxRate)

	status := p.InvoiceStatus
	if status == "" {
		status = "Pending"
	}

	return structs.Invoice{
		ProductId: p.Id,
		Title:     p.Title,
		Status:    status,
		Subtotal:  structs.NewPriceFromDecimal(subtotal),
		TaxRate:   invoiceTaxRate.Shift(2).String() + "%",
		Tax:       structs.NewPriceFromDecimal(tax),
		Total:     structs.NewPriceFromDecimal(subtotal.Add(tax)),
	}
}

// FindProduct looks in the user catalog first, then the demo catalog
func (is *InvoiceService) FindProduct(id int) (structs.Product, error) {
	if p, ok := is.catalog.Get(id); ok {
		return p, nil
	}
	for _, p := range is.catalog.ListDefaults() {
		if p.Id == id {
			return p, nil
		}
	}
	return structs.Product{}, lib.ErrNotFound
}

func (is *InvoiceService) InvoiceFor(id int) (structs.Invoice, error) {
	p, err := is.FindProduct(id)
	if err != nil {
		return structs.Invoice{}, err
	}
	return BuildInvoice(p), nil
}
