package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the per-user collection of pending bookings. One cart per user.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Items     []*CartItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Total sums the precomputed item prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}

	return total
}

// CartItem is a booking intent. (CartID, ItemType, ItemID) is unique.
type CartItem struct {
	ID             uuid.UUID       `json:"id"`
	CartID         uuid.UUID       `json:"cartId"`
	ItemType       ItemType        `json:"itemType"`
	ItemID         uuid.UUID       `json:"itemId"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"` // Total for the line, not a unit price.
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	AdditionalInfo map[string]any  `json:"additionalInfo,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Guests returns the party size for a hotel booking: additionalInfo.guests
// when it holds a positive number, otherwise the quantity.
func (i *CartItem) Guests() int {
	if raw, ok := i.AdditionalInfo["guests"]; ok {
		switch v := raw.(type) {
		case float64:
			if v >= 1 {
				return int(v)
			}
		case int:
			if v >= 1 {
				return v
			}
		case int64:
			if v >= 1 {
				return int(v)
			}
		}
	}

	return i.Quantity
}
