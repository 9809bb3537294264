package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "kusina/internal/delivery/context"
	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	"kusina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByCategory returns available products for a category. "all" in any
// casing returns the full available catalog.
func (srv *catalogService) ListByCategory(ctx context.Context, rawCategory string) ([]*entity.Product, error) {
	category, ok := entity.ParseCategory(rawCategory)
	if !ok {
		return nil, domainerrors.ErrUnknownCategory.WithDetails("category: " + rawCategory)
	}

	if category == entity.CategoryAll {
		products, err := srv.productRepo.ListAvailable(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list available products")
		}

		return products, nil
	}

	products, err := srv.productRepo.ListAvailableByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// ListCategories returns the categories actually stored on products, each
// with its display label. ALL is synthesized as the first entry when no
// stored product carries it (legacy rows may).
func (srv *catalogService) ListCategories(ctx context.Context) ([]entity.CategoryOption, error) {
	stored, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	options := make([]entity.CategoryOption, 0, len(stored)+1)
	if !slices.Contains(stored, entity.CategoryAll) {
		options = append(options, entity.CategoryOption{Value: entity.CategoryAll, Label: entity.CategoryAll.Label()})
	}
	for _, category := range stored {
		options = append(options, entity.CategoryOption{Value: category, Label: category.Label()})
	}

	return options, nil
}

// CreateProduct adds a product to the catalog. The ALL pseudo-category is
// not assignable.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	category, err := assignableCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Available:   true,
		Category:    category,
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", id))

	category, err := assignableCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.Category = category
	if input.Available != nil {
		product.Available = *input.Available
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func assignableCategory(raw string) (entity.Category, error) {
	category, ok := entity.ParseCategory(raw)
	if !ok || !category.IsAssignable() {
		return "", domainerrors.ErrUnknownCategory.WithDetails("category: " + raw)
	}

	return category, nil
}
