package usecase

import (
	"context"

	"kusina/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the data for adding a product to the cart. A
// missing or non-positive quantity defaults to 1.
type AddToCartInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
}

// CartUsecase defines shopping cart operations. The caller identity is the
// resolved user from the auth middleware.
type CartUsecase interface {
	// ListCart returns the user's cart rows with product display snapshots.
	ListCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// AddToCart inserts a cart row or increments the existing one, and
	// returns the resulting row.
	AddToCart(ctx context.Context, userID uuid.UUID, input *AddToCartInput) (*entity.CartItem, error)

	// RemoveFromCart deletes the (user, product) row.
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error
}
