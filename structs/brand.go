package structs

type Brand struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// FallbackBrands is served whenever the brand endpoint is unreachable
var FallbackBrands = []Brand{
	{Id: "1", Name: "Rolex"},
	{Id: "2", Name: "Omega"},
	{Id: "3", Name: "Patek Philippe"},
	{Id: "4", Name: "Audemars Piguet"},
	{Id: "5", Name: "Cartier"},
	{Id: "6", Name: "IWC"},
	{Id: "7", Name: "Jaeger-LeCoultre"},
	{Id: "8", Name: "Panerai"},
	{Id: "9", Name: "Breitling"},
	{Id: "10", Name: "TAG Heuer"},
	{Id: "11", Name: "Vacheron Constantin"},
	{Id: "12", Name: "A. Lange & Söhne"},
	{Id: "13", Name: "Hublot"},
	{Id: "14", Name: "Zenith"},
	{Id: "15", Name: "Tudor"},
}
