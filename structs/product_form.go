package structs

type FormMode string

const (
	FormCreate FormMode = "create"
	FormEdit   FormMode = "edit"
)

var (
	ConditionOptions = []string{"New", "Seller", "Preowned", "Needs Service"}
	PolishOptions    = []string{"Unpolished", "Needs Polish", "Preowned", "Needs Service"}
	ComesWithOptions = []string{
		"Watch Head",
		"Service Card/Papers",
		"Box Only",
		"Blank Papers",
		"Papers/Cards",
		"Box and Papers",
		"Archieves and Box",
	}
)

const (
	MinWatchYear   = 1700
	MaxNotesLength = 500
)

type WatchInfoForm struct {
	Model     string `json:"model,omitempty" validate:"max=100"`
	Ref       string `json:"ref,omitempty" validate:"max=100"`
	Serial    string `json:"serial,omitempty" validate:"max=100"`
	Year      string `json:"year,omitempty" validate:"omitempty,watchyear"`
	TimeScore string `json:"timeScore,omitempty" validate:"max=100"`
}

// ProductForm is the add/edit listing payload as the client submits it
type ProductForm struct {
	Mode            FormMode       `json:"-"`
	Title           string         `json:"title" validate:"required,max=200"`
	Description     string         `json:"description" validate:"max=500"`
	Price           string         `json:"price" validate:"required,price"`
	Color           string         `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Brand           string         `json:"brand,omitempty" validate:"required_if=Mode edit,max=100"`
	ComesWith       []string       `json:"comesWith" validate:"required,min=1,dive,oneof='Watch Head' 'Service Card/Papers' 'Box Only' 'Blank Papers' 'Papers/Cards' 'Box and Papers' 'Archieves and Box'"`
	WatchInfo       *WatchInfoForm `json:"watchInfo,omitempty"`
	Condition       string         `json:"condition,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	Polish          string         `json:"polish,omitempty" validate:"omitempty,oneof='Unpolished' 'Needs Polish' 'Preowned' 'Needs Service'"`
	Crystal         string         `json:"crystal,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	Dial            string         `json:"dial,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	DialColor       string         `json:"dialColor,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	DialDetails     string         `json:"dialDetails,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	Chrono          string         `json:"chrono,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	Bezel           string         `json:"bezel,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	Movement        string         `json:"movement,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	Bracelet        string         `json:"bracelet,omitempty" validate:"omitempty,oneof='New' 'Seller' 'Preowned' 'Needs Service'"`
	AdditionalNotes string         `json:"additionalNotes,omitempty" validate:"max=500"`
	Images          []string       `json:"images,omitempty" validate:"omitempty,dive,required"`
	PurchaseDate    string         `json:"purchaseDate,omitempty"`
	InvoiceStatus   string         `json:"invoiceStatus,omitempty"`
}
