package structs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPrice    = errors.New("price is empty")
	ErrInvalidPrice  = errors.New("price is not a number")
	ErrNegativePrice = errors.New("price is negative")
)

// Price is a fixed-point amount rendered as "$<number>" at the boundary.
// places keeps the number of fractional digits the user typed.
type Price struct {
	amount decimal.Decimal
	places int32
}

// ParsePrice accepts "49.99" or "$49.99" and keeps the typed precision
func ParsePrice(raw string) (Price, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return Price{}, ErrEmptyPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil || strings.ContainsAny(s, "eE") {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	if d.IsNegative() {
		return Price{}, fmt.Errorf("%w: %q", ErrNegativePrice, raw)
	}

	var places int32
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		places = int32(len(s) - idx - 1)
	}

	return Price{amount: d, places: places}, nil
}

// MustParsePrice panics on invalid input; meant for fixtures
func MustParsePrice(raw string) Price {
	p, err := ParsePrice(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPriceFromCents builds a two-decimal price from integer cents
func NewPriceFromCents(cents int64) Price {
	return Price{amount: decimal.New(cents, -2), places: 2}
}

// NewPriceFromDecimal rounds the amount to cents
func NewPriceFromDecimal(d decimal.Decimal) Price {
	return Price{amount: d.Round(2), places: 2}
}

func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// Cents rounds half away from zero to whole cents
func (p Price) Cents() int64 {
	return p.amount.Round(2).Shift(2).IntPart()
}

func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

func (p Price) Equal(other Price) bool {
	return p.String() == other.String()
}

func (p Price) String() string {
	return "$" + p.amount.StringFixed(p.places)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts "$49.99", "49.99" or a bare number
func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Price{}
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidPrice, string(data))
		}
		raw = n.String()
	}

	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
