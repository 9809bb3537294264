package repository

import (
	"context"
	"errors"

	"kusina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListAvailable retrieves all available products.
	ListAvailable(ctx context.Context) ([]*entity.Product, error)

	// ListAvailableByCategory retrieves available products in one category.
	ListAvailableByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error)

	// ListCategories returns the distinct categories stored on products,
	// in ascending lexical order.
	ListCategories(ctx context.Context) ([]entity.Category, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error
}
