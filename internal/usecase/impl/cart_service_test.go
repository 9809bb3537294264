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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_ListCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		newTestCartItem(userID, newTestProduct("Tapsilog", "120.00"), 2),
	}

	fx.cartRepo.EXPECT().ListByUser(ctx, userID).Return(items, nil)

	got, err := fx.service.ListCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct("Sinigang", "180.50")
	input := &usecase.AddToCartInput{ProductID: product.ID, Quantity: 2}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		AddOrIncrement(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
			assert.Equal(t, userID, item.UserID)
			assert.Equal(t, 2, item.Quantity)

			// The store merges into an existing row with one unit already in it.
			merged := newTestCartItem(userID, product, 3)

			return merged, nil
		})

	item, err := fx.service.AddToCart(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, product.Name, item.ProductName)
}

func TestCartService_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct("Pandesal", "8.00")

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		AddOrIncrement(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
			assert.Equal(t, 1, item.Quantity)

			return newTestCartItem(userID, product, 1), nil
		})

	_, err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: product.ID})

	require.NoError(t, err)
}

func TestCartService_AddToCart_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	item, err := fx.service.AddToCart(ctx, uuid.New(), &usecase.AddToCartInput{ProductID: productID, Quantity: 1})

	require.Error(t, err)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.cartRepo.EXPECT().DeleteByUserAndProduct(ctx, userID, productID).Return(nil)

	err := fx.service.RemoveFromCart(ctx, userID, productID)

	require.NoError(t, err)
}

func TestCartService_RemoveFromCart_NotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.cartRepo.EXPECT().
		DeleteByUserAndProduct(ctx, userID, productID).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.RemoveFromCart(ctx, userID, productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
