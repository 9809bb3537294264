package impl

import (
	"context"
	"testing"

	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	mockRepo "kusina/internal/mocks/repository"
	mockSvc "kusina/internal/mocks/service"
	"kusina/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		QRService: qrService,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		qrService: qrService,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	adobo := newTestProduct("Adobo", "50.00")
	rice := newTestProduct("Garlic Rice", "15.00")
	cartItems := []*entity.CartItem{
		newTestCartItem(userID, adobo, 2),
		newTestCartItem(userID, rice, 2),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockCartRepo.EXPECT().ListByUser(ctx, userID).Return(cartItems, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					assert.Equal(t, userID, order.UserID)
					assert.Equal(t, entity.OrderStatusPending, order.Status)
					// 2 * 50.00 + 2 * 15.00
					assert.Equal(t, "130.00", order.TotalAmount.StringFixed(2))

					require.Len(t, order.Items, 2)
					assert.Equal(t, adobo.ID, order.Items[0].ProductID)
					assert.True(t, adobo.Price.Equal(order.Items[0].Price))
					assert.Equal(t, "Adobo", order.Items[0].ProductName)

					order.ID = orderID
				}).
				Return(nil)

			mockCartRepo.EXPECT().DeleteAllByUser(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "130.00", order.TotalAmount.StringFixed(2))
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			// No order insert and no cart wipe may happen.
			mockCartRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

			return fn(mockFactory)
		})

	order, err := fx.service.CreateOrder(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPending},
	}

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByIDForUser(ctx, userID, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, userID, orderID)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrderPickupQR_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPending}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, userID, order.ID).Return(order, nil)
	fx.qrService.EXPECT().GeneratePickupQR(order.ID).Return(png, nil)

	got, err := fx.service.GetOrderPickupQR(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestOrderService_GetOrderPickupQR_OtherUsersOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	// Scoped lookup misses when the order belongs to someone else.
	fx.orderRepo.EXPECT().
		FindByIDForUser(ctx, userID, orderID).
		Return(nil, repository.ErrOrderNotFound)

	png, err := fx.service.GetOrderPickupQR(ctx, userID, orderID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
