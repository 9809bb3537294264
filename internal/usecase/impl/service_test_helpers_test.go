package impl

import (
	"io"
	"log/slog"

	"kusina/internal/domain/entity"
	"kusina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Type: service.TokenTypeRefresh}
}

func newTestProduct(name string, price string) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: true,
		Category:  entity.CategoryAgahan,
	}
}

func newTestCartItem(userID uuid.UUID, product *entity.Product, quantity int) *entity.CartItem {
	return &entity.CartItem{
		ID:           uuid.New(),
		UserID:       userID,
		ProductID:    product.ID,
		Quantity:     quantity,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		ProductImage: product.ImageURL,
	}
}
