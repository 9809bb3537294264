package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) row in a shopping cart. The store
// enforces at most one row per pair; adding an already-carted product
// increments Quantity instead of creating a duplicate.
type CartItem struct {
	ID        uuid.UUID // The unique identifier for the cart row.
	UserID    uuid.UUID // The owner of the cart.
	ProductID uuid.UUID // The carted product.
	Quantity  int       // Positive number of units.
	AddedAt   time.Time // When the product was first added.

	// Read-only product snapshot for display; populated on reads,
	// never written back.
	ProductName  string
	ProductPrice decimal.Decimal
	ProductImage string
}

// Subtotal returns the exact price of this row (unit price times quantity).
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.ProductPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
