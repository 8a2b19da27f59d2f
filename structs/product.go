package structs

// WatchInfo groups the identifying details of a listed watch
type WatchInfo struct {
	Model     string `json:"model,omitempty"`
	Ref       string `json:"ref,omitempty"`
	Serial    string `json:"serial,omitempty"`
	Year      string `json:"year,omitempty"`
	TimeScore string `json:"timeScore,omitempty"`
}

// Product is a catalog entry. Field names follow the persisted userProducts blob.
type Product struct {
	Id              int        `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Color           string     `json:"color"`
	Price           Price      `json:"price"`
	OwnerId         string     `json:"ownerId"`
	Brand           string     `json:"brand,omitempty"`
	ComesWith       []string   `json:"comesWith,omitempty"`
	WatchInfo       *WatchInfo `json:"watchInfo,omitempty"`
	Condition       string     `json:"condition,omitempty"`
	Polish          string     `json:"polish,omitempty"`
	Crystal         string     `json:"crystal,omitempty"`
	Dial            string     `json:"dial,omitempty"`
	DialColor       string     `json:"dialColor,omitempty"`
	DialDetails     string     `json:"dialDetails,omitempty"`
	Chrono          string     `json:"chrono,omitempty"`
	Bezel           string     `json:"bezel,omitempty"`
	Movement        string     `json:"movement,omitempty"`
	Bracelet        string     `json:"bracelet,omitempty"`
	AdditionalNotes string     `json:"additionalNotes,omitempty"`
	Images          []string   `json:"images,omitempty"`
	PurchaseDate    string     `json:"purchaseDate,omitempty"`
	InvoiceStatus   string     `json:"invoiceStatus,omitempty"`
}

// ProductDraft is a product that has not been assigned an id yet
type ProductDraft struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Color           string     `json:"color"`
	Price           Price      `json:"price"`
	OwnerId         string     `json:"ownerId"`
	Brand           string     `json:"brand,omitempty"`
	ComesWith       []string   `json:"comesWith,omitempty"`
	WatchInfo       *WatchInfo `json:"watchInfo,omitempty"`
	Condition       string     `json:"condition,omitempty"`
	Polish          string     `json:"polish,omitempty"`
	Crystal         string     `json:"crystal,omitempty"`
	Dial            string     `json:"dial,omitempty"`
	DialColor       string     `json:"dialColor,omitempty"`
	DialDetails     string     `json:"dialDetails,omitempty"`
	Chrono          string     `json:"chrono,omitempty"`
	Bezel           string     `json:"bezel,omitempty"`
	Movement        string     `json:"movement,omitempty"`
	Bracelet        string     `json:"bracelet,omitempty"`
	AdditionalNotes string     `json:"additionalNotes,omitempty"`
	Images          []string   `json:"images,omitempty"`
	PurchaseDate    string     `json:"purchaseDate,omitempty"`
	InvoiceStatus   string     `json:"invoiceStatus,omitempty"`
}

// WithId turns the draft into a product carrying the given id
func (d ProductDraft) WithId(id int) Product {
	return Product{
		Id:              id,
		Title:           d.Title,
		Description:     d.Description,
		Color:           d.Color,
		Price:           d.Price,
		OwnerId:         d.OwnerId,
		Brand:           d.Brand,
		ComesWith:       cloneStrings(d.ComesWith),
		WatchInfo:       d.WatchInfo.clone(),
		Condition:       d.Condition,
		Polish:          d.Polish,
		Crystal:         d.Crystal,
		Dial:            d.Dial,
		DialColor:       d.DialColor,
		DialDetails:     d.DialDetails,
		Chrono:          d.Chrono,
		Bezel:           d.Bezel,
		Movement:        d.Movement,
		Bracelet:        d.Bracelet,
		AdditionalNotes: d.AdditionalNotes,
		Images:          cloneStrings(d.Images),
		PurchaseDate:    d.PurchaseDate,
		InvoiceStatus:   d.InvoiceStatus,
	}
}

// Draft drops the id from the product
func (p Product) Draft() ProductDraft {
	return ProductDraft{
		Title:           p.Title,
		Description:     p.Description,
		Color:           p.Color,
		Price:           p.Price,
		OwnerId:         p.OwnerId,
		Brand:           p.Brand,
		ComesWith:       cloneStrings(p.ComesWith),
		WatchInfo:       p.WatchInfo.clone(),
		Condition:       p.Condition,
		Polish:          p.Polish,
		Crystal:         p.Crystal,
		Dial:            p.Dial,
		DialColor:       p.DialColor,
		DialDetails:     p.DialDetails,
		Chrono:          p.Chrono,
		Bezel:           p.Bezel,
		Movement:        p.Movement,
		Bracelet:        p.Bracelet,
		AdditionalNotes: p.AdditionalNotes,
		Images:          cloneStrings(p.Images),
		PurchaseDate:    p.PurchaseDate,
		InvoiceStatus:   p.InvoiceStatus,
	}
}

// Clone returns a deep copy so callers never share slices with the store
func (p Product) Clone() Product {
	return p.Draft().WithId(p.Id)
}

// CloneProducts deep-copies a product slice, never returning nil
func CloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

func (w *WatchInfo) clone() *WatchInfo {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
