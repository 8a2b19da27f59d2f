package structs

// seedProducts is the demo catalog shown before and alongside user listings
var seedProducts = []Product{
	{Id: 1, Title: "Wireless Earbuds", Description: "Bluetooth 5.0 with noise cancellation", Color: "#3498db", Price: MustParsePrice("$49.99")},
	{Id: 2, Title: "Smart Watch", Description: "Fitness tracker with heart rate monitor", Color: "#2ecc71", Price: MustParsePrice("$89.99")},
	{Id: 3, Title: "Portable Charger", Description: "10000mAh power bank for all devices", Color: "#e74c3c", Price: MustParsePrice("$29.99")},
	{Id: 4, Title: "Laptop Sleeve", Description: "Waterproof protective case for 15\" laptops", Color: "#f39c12", Price: MustParsePrice("$19.99")},
	{Id: 5, Title: "Bluetooth Speaker", Description: "Waterproof with 12-hour battery life", Color: "#9b59b6", Price: MustParsePrice("$39.99")},
	{Id: 6, Title: "Phone Stand", Description: "Adjustable desk holder for smartphones", Color: "#1abc9c", Price: MustParsePrice("$12.99")},
	{Id: 7, Title: "Wireless Mouse", Description: "Ergonomic design with silent clicks", Color: "#d35400", Price: MustParsePrice("$24.99")},
	{Id: 8, Title: "Keyboard Cover", Description: "Silicone protector for MacBook keyboards", Color: "#34495e", Price: MustParsePrice("$14.99")},
	{Id: 9, Title: "USB-C Hub", Description: "7-in-1 adapter with HDMI and card readers", Color: "#16a085", Price: MustParsePrice("$35.99")},
	{Id: 10, Title: "Desk Lamp", Description: "LED with adjustable brightness and color", Color: "#27ae60", Price: MustParsePrice("$32.99")},
	{Id: 11, Title: "Webcam Cover", Description: "Privacy slider for laptop cameras", Color: "#c0392b", Price: MustParsePrice("$7.99")},
	{Id: 12, Title: "Cable Organizer", Description: "Silicone clips for desk cable management", Color: "#f1c40f", Price: MustParsePrice("$9.99")},
	{Id: 13, Title: "Wireless Charger", Description: "Fast charging pad for Qi-enabled devices", Color: "#8e44ad", Price: MustParsePrice("$22.99")},
	{Id: 14, Title: "Screen Cleaner", Description: "Microfiber cloth with cleaning spray", Color: "#2980b9", Price: MustParsePrice("$11.99")},
	{Id: 15, Title: "Phone Grip", Description: "Expandable stand and grip for smartphones", Color: "#e67e22", Price: MustParsePrice("$8.99")},
	{Id: 16, Title: "Tablet Stand", Description: "Adjustable angle holder for iPads and tablets", Color: "#7f8c8d", Price: MustParsePrice("$18.99")},
	{Id: 17, Title: "Noise-Cancelling Headphones", Description: "Over-ear design with 20hr battery life", Color: "#2c3e50", Price: MustParsePrice("$129.99")},
	{Id: 18, Title: "Mechanical Keyboard", Description: "RGB backlit with tactile switches", Color: "#3498db", Price: MustParsePrice("$79.99")},
	{Id: 19, Title: "Laptop Cooling Pad", Description: "Dual fan design with height adjustment", Color: "#2ecc71", Price: MustParsePrice("$25.99")},
	{Id: 20, Title: "Smartphone Gimbal", Description: "3-axis stabilizer for smooth video recording", Color: "#e74c3c", Price: MustParsePrice("$69.99")},
	{Id: 21, Title: "Desk Organizer", Description: "Multi-compartment storage for office supplies", Color: "#f39c12", Price: MustParsePrice("$15.99")},
	{Id: 22, Title: "Wireless Keyboard", Description: "Slim design with multi-device connectivity", Color: "#9b59b6", Price: MustParsePrice("$45.99")},
	{Id: 23, Title: "Monitor Stand", Description: "Height adjustable with cable management", Color: "#1abc9c", Price: MustParsePrice("$32.99")},
	{Id: 24, Title: "Touchscreen Gloves", Description: "Winter gloves compatible with smartphones", Color: "#d35400", Price: MustParsePrice("$14.99")},
	{Id: 25, Title: "Laptop Privacy Screen", Description: "Anti-spy filter for 15.6\" displays", Color: "#34495e", Price: MustParsePrice("$29.99")},
	{Id: 26, Title: "Smart Bulb", Description: "WiFi-enabled RGB light with app control", Color: "#16a085", Price: MustParsePrice("$19.99")},
	{Id: 27, Title: "Wireless Presenter", Description: "Laser pointer with slide controls", Color: "#27ae60", Price: MustParsePrice("$24.99")},
	{Id: 28, Title: "Desk Mat", Description: "Large mousepad with microfiber surface", Color: "#c0392b", Price: MustParsePrice("$17.99")},
	{Id: 29, Title: "Phone Sanitizer", Description: "UV light cleaner for smartphones", Color: "#f1c40f", Price: MustParsePrice("$39.99")},
	{Id: 30, Title: "Webcam Light", Description: "Ring light for video calls and streaming", Color: "#8e44ad", Price: MustParsePrice("$28.99")},
}

// seedCategories is the fixed category strip above the listing
var seedCategories = []Category{
	{Id: "all", Name: "All"},
	{Id: "luxury", Name: "Luxury"},
	{Id: "sport", Name: "Sport"},
	{Id: "dress", Name: "Dress"},
	{Id: "vintage", Name: "Vintage"},
	{Id: "accessories", Name: "Accessories"},
}

type Category struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// SeedProducts returns a fresh copy of the demo catalog
func SeedProducts() []Product {
	return CloneProducts(seedProducts)
}

// SeedCategories returns a fresh copy of the demo categories
func SeedCategories() []Category {
	out := make([]Category, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// SeedMaxId is the largest id in the demo catalog
func SeedMaxId() int {
	maxId := 0
	for _, p := range seedProducts {
		maxId = max(maxId, p.Id)
	}
	return maxId
}
