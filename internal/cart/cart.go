// Package cart holds the sample payloads used by the demo and by envelope
// tests. Cart and Item are plain structs; CheckedCart and CheckedItem are
// built through records.New and carry validation rules.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/typed-api-response/pkg/records"
)

type Item struct {
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is UnitPrice * Qty.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Qty)))
}

type Cart struct {
	ID       uuid.UUID `json:"id"`
	Status   Status    `json:"status"`
	Currency string    `json:"currency"`
	Items    []Item    `json:"items"`
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type CheckedItem struct {
	SKU       string          `json:"sku" validate:"required"`
	Qty       int             `json:"qty" validate:"gte=1,lte=999"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CheckedCart struct {
	ID       uuid.UUID     `json:"id" validate:"required"`
	Status   Status        `json:"status" validate:"oneof=active converted"`
	Currency string        `json:"currency" validate:"required,len=3"`
	Items    []CheckedItem `json:"items" validate:"required,min=1,dive"`
}

// NewCheckedCart builds an active cart and rejects it when any rule fails.
func NewCheckedCart(id uuid.UUID, currency string, items ...CheckedItem) (CheckedCart, error) {
	return records.New(CheckedCart{
		ID:       id,
		Status:   StatusActive,
		Currency: currency,
		Items:    items,
	})
}

// Sample returns a single-line cart in the plain style.
func Sample() Cart {
	return Cart{
		ID:       uuid.MustParse("4b5c3a3e-8f0e-4a57-9a8e-0d6f3c1b2a10"),
		Status:   StatusActive,
		Currency: "USD",
		Items: []Item{
			{Name: "x", Qty: 2, UnitPrice: decimal.RequireFromString("4.25")},
		},
	}
}
