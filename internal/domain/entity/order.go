package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every new order starts in.
const OrderStatusPending = "pending"

// Order is an immutable record of a checkout. Once created, neither the
// order nor its items are ever updated or deleted.
type Order struct {
	ID          uuid.UUID       // The unique identifier for the order.
	UserID      uuid.UUID       // The user who placed the order.
	Status      string          // Free-text order status, "pending" on creation.
	TotalAmount decimal.Decimal // Exact total computed at creation time.
	CreatedAt   time.Time       // When the order was placed.
	Items       []*OrderItem    // The line items snapshotted from the cart.
}

// OrderItem is a line item on an order. Price is the product's unit price
// at the moment the order was created, decoupled from later price changes.
type OrderItem struct {
	ID        uuid.UUID       // The unique identifier for the line item.
	OrderID   uuid.UUID       // The order this line belongs to.
	ProductID uuid.UUID       // The ordered product.
	Quantity  int             // Number of units ordered.
	Price     decimal.Decimal // Unit price frozen at purchase time.

	// Display snapshot, populated on reads.
	ProductName string
}
