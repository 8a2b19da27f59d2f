package lib

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"watchmarket_server/structs"

	"github.com/go-playground/validator/v10"
)

// currentYear is the upper bound for watch years
var currentYear = func() int { return time.Now().Year() }

func registerProductValidations(v *validator.Validate) {
	_ = v.RegisterValidation("watchyear", func(fl validator.FieldLevel) bool {
		return ValidateWatchYear(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		_, err := structs.ParsePrice(fl.Field().String())
		return err == nil
	})
}

// ValidateWatchYear accepts an empty year or an integer between 1700 and the current year
func ValidateWatchYear(year string) error {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < structs.MinWatchYear || y > currentYear() {
		return fmt.Errorf("Year must be between %d and %d", structs.MinWatchYear, currentYear())
	}
	return nil
}

func productFieldMessage(field string, e validator.FieldError) (string, bool) {
	switch {
	case field == "title" && e.Tag() == "required":
		return "Title is required", true
	case field == "price" && e.Tag() == "required":
		return "Price is required", true
	case field == "price" && e.Tag() == "price":
		return "Price must be a positive number", true
	case field == "brand" && e.Tag() == "required_if":
		return "Brand is required", true
	case field == "comesWith" && (e.Tag() == "required" || e.Tag() == "min"):
		return "Please select at least one option", true
	case field == "watchInfo.year":
		return fmt.Sprintf("Year must be between %d and %d", structs.MinWatchYear, currentYear()), true
	case (field == "description" || field == "additionalNotes") && e.Tag() == "max":
		return fmt.Sprintf("must be at most %d characters", structs.MaxNotesLength), true
	}
	return "", false
}

// ValidateProductForm checks a listing form for the given mode
func ValidateProductForm(form *structs.ProductForm, mode structs.FormMode) error {
	form.Mode = mode
	return ValidateStruct(form)
}

// BuildDraft converts a validated form into a draft owned by ownerId.
// An empty color gets a random one.
func BuildDraft(form *structs.ProductForm, ownerId string) (structs.ProductDraft, error) {
	price, err := structs.ParsePrice(form.Price)
	if err != nil {
		return structs.ProductDraft{}, (&ValidationError{}).Add("price", "Price must be a positive number")
	}

	color := form.Color
	if color == "" {
		color = RandomColor()
	}

	draft := structs.ProductDraft{
		Title:           strings.TrimSpace(form.Title),
		Description:     form.Description,
		Color:           color,
		Price:           price,
		OwnerId:         ownerId,
		Brand:           form.Brand,
		ComesWith:       append([]string(nil), form.ComesWith...),
		Condition:       form.Condition,
		Polish:          form.Polish,
		Crystal:         form.Crystal,
		Dial:            form.Dial,
		DialColor:       form.DialColor,
		DialDetails:     form.DialDetails,
		Chrono:          form.Chrono,
		Bezel:           form.Bezel,
		Movement:        form.Movement,
		Bracelet:        form.Bracelet,
		AdditionalNotes: form.AdditionalNotes,
		Images:          append([]string(nil), form.Images...),
		PurchaseDate:    form.PurchaseDate,
		InvoiceStatus:   form.InvoiceStatus,
	}
	if len(draft.Images) == 0 {
		draft.Images = nil
	}

	if wi := form.WatchInfo; wi != nil {
		draft.WatchInfo = &structs.WatchInfo{
			Model:     wi.Model,
			Ref:       wi.Ref,
			Serial:    wi.Serial,
			Year:      strings.TrimSpace(wi.Year),
			TimeScore: wi.TimeScore,
		}
	}

	return draft, nil
}
