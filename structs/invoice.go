package structs

type Invoice struct {
	ProductId int    `json:"productId"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Subtotal  Price  `json:"subtotal"`
	TaxRate   string `json:"taxRate"`
	Tax       Price  `json:"tax"`
	Total     Price  `json:"total"`
}
