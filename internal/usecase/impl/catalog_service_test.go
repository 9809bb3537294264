package impl

import (
	"context"
	"testing"

	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	mockRepo "kusina/internal/mocks/repository"
	"kusina/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestCatalogService_ListByCategory_All(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Product{
		newTestProduct("Tapsilog", "120.00"),
		newTestProduct("Sinigang", "180.50"),
	}

	fx.productRepo.EXPECT().ListAvailable(ctx).Return(catalog, nil)

	products, err := fx.service.ListByCategory(ctx, "all")

	require.NoError(t, err)
	assert.Equal(t, catalog, products)
}

func TestCatalogService_ListByCategory_CaseInsensitive(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.Product{newTestProduct("Pandesal", "8.00")}

	fx.productRepo.EXPECT().
		ListAvailableByCategory(ctx, entity.CategoryMerienda).
		Return(catalog, nil)

	products, err := fx.service.ListByCategory(ctx, " merienda ")

	require.NoError(t, err)
	assert.Equal(t, catalog, products)
}

func TestCatalogService_ListByCategory_Unknown(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.ListByCategory(context.Background(), "brunch")

	require.Error(t, err)
	assert.Nil(t, products)
	assert.ErrorContains(t, err, domainerrors.ErrUnknownCategory.Message())
}

func TestCatalogService_ListCategories_SynthesizesAll(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		ListCategories(ctx).
		Return([]entity.Category{entity.CategoryAgahan, entity.CategoryMerienda}, nil)

	options, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, entity.CategoryOption{Value: entity.CategoryAll, Label: "All"}, options[0])
	assert.Equal(t, entity.CategoryOption{Value: entity.CategoryAgahan, Label: "Agahan"}, options[1])
	assert.Equal(t, entity.CategoryOption{Value: entity.CategoryMerienda, Label: "Merienda"}, options[2])
}

func TestCatalogService_ListCategories_KeepsStoredAll(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	// Legacy rows may carry ALL; it must not be duplicated.
	fx.productRepo.EXPECT().
		ListCategories(ctx).
		Return([]entity.Category{entity.CategoryAll, entity.CategoryHapunan}, nil)

	options, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, entity.CategoryAll, options[0].Value)
	assert.Equal(t, entity.CategoryHapunan, options[1].Value)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	newProductID := uuid.New()
	input := &usecase.CreateProductInput{
		Name:     "Kare-Kare",
		Price:    decimal.RequireFromString("250.00"),
		Category: "hapunan",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, entity.CategoryHapunan, product.Category)
			assert.True(t, product.Available)
			product.ID = newProductID
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newProductID, product.ID)
	assert.True(t, input.Price.Equal(product.Price))
}

func TestCatalogService_CreateProduct_ExplicitUnavailable(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	unavailable := false
	input := &usecase.CreateProductInput{
		Name:      "Lechon",
		Price:     decimal.RequireFromString("6500.00"),
		Category:  "HAPUNAN",
		Available: &unavailable,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.False(t, product.Available)
		}).
		Return(nil)

	_, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
}

func TestCatalogService_CreateProduct_RejectsAllCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.CreateProductInput{
		Name:     "Everything Plate",
		Price:    decimal.RequireFromString("99.00"),
		Category: "ALL",
	}

	product, err := fx.service.CreateProduct(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorContains(t, err, domainerrors.ErrUnknownCategory.Message())
}

func TestCatalogService_CreateProduct_RejectsNegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.CreateProductInput{
		Name:     "Bugged Entry",
		Price:    decimal.RequireFromString("-1.00"),
		Category: "AGAHAN",
	}

	product, err := fx.service.CreateProduct(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Message())
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	existing := newTestProduct("Tapsilog", "120.00")
	input := &usecase.UpdateProductInput{
		Name:     "Tapsilog Special",
		Price:    decimal.RequireFromString("145.00"),
		Category: "agahan",
	}

	fx.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, existing.ID, product.ID)
			assert.Equal(t, "Tapsilog Special", product.Name)
			assert.True(t, input.Price.Equal(product.Price))
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Tapsilog Special", product.Name)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	input := &usecase.UpdateProductInput{
		Name:     "Ghost Dish",
		Price:    decimal.RequireFromString("10.00"),
		Category: "MERIENDA",
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.UpdateProduct(ctx, productID, input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
