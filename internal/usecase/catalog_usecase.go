package usecase

import (
	"context"

	"kusina/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to add a product to the
// catalog. Category "ALL" is not assignable and is rejected.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url"`
	Available   *bool           `json:"available"`
	Category    string          `json:"category" validate:"required"`
}

// UpdateProductInput mirrors CreateProductInput for an existing product.
type UpdateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url"`
	Available   *bool           `json:"available"`
	Category    string          `json:"category" validate:"required"`
}

// CatalogUsecase defines catalog browsing and maintenance operations.
type CatalogUsecase interface {
	// ListByCategory returns available products. Category "all" is matched
	// case-insensitively and returns the whole available catalog.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// ListCategories returns the categories present among products, each
	// with a display label; a synthetic ALL entry is prepended when absent.
	ListCategories(ctx context.Context) ([]entity.CategoryOption, error)

	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
}
