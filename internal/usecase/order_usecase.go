package usecase

import (
	"context"

	"kusina/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines checkout and order history operations.
type OrderUsecase interface {
	// CreateOrder converts the user's cart into an immutable order with
	// frozen prices and clears the cart, all inside one transaction.
	CreateOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the user's orders, most recent first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one order with items, scoped to the owning user.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// GetOrderPickupQR renders the pickup QR code PNG for an order the
	// user owns.
	GetOrderPickupQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
