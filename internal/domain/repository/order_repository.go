package repository

import (
	"context"
	"errors"

	"kusina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist or belongs to
// another user.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines operations for order persistence. Orders are
// append-only: there is deliberately no update or delete.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser retrieves all orders for a user, most recent first,
	// including line items.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByIDForUser retrieves one order with its items, scoped to the
	// owning user. Returns ErrOrderNotFound for other users' orders.
	FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
