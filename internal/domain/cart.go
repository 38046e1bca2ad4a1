package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds the line items of one customer. A cart is created lazily on
// first access and cleared (not deleted) after a successful checkout.
type Cart struct {
	ID         string     `json:"id,omitempty"`
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem is one product line. UnitPrice is captured at add-time and
// refreshed on merge; stock is not checked until checkout.
type CartItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	AddedAt   time.Time       `json:"added_at"`
}

// Total is the sum of quantity times captured unit price over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
