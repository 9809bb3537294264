package repository

import (
	"context"
	"errors"

	"kusina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when no cart row matches (user, product).
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines operations for shopping cart persistence. The
// store guarantees at most one row per (user, product) via a unique
// constraint; AddOrIncrement relies on it for concurrent adds.
type CartRepository interface {
	// ListByUser retrieves all cart rows for a user, each annotated with a
	// read-only product snapshot (name, unit price, image).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// AddOrIncrement atomically inserts a cart row or, when one already
	// exists for (user, product), increments its quantity by item.Quantity.
	// The returned item reflects the resulting row.
	AddOrIncrement(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)

	// DeleteByUserAndProduct removes one cart row. Returns
	// ErrCartItemNotFound when the row does not exist.
	DeleteByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error

	// DeleteAllByUser clears the user's cart.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
