package impl

import (
	"context"
	"log/slog"

	deliverycontext "kusina/internal/delivery/context"
	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	"kusina/internal/domain/service"
	"kusina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder converts the user's cart into an immutable order. The read,
// the order insert, the line item snapshots and the cart wipe all happen in
// one transaction: a failure anywhere leaves no order and an intact cart.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("userID", userID))

	var createdOrder *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		orderRepo := repoFactory.OrderRepo()

		// 1. Load the cart. Empty carts never produce an order.
		cartItems, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart for checkout")
		}
		if len(cartItems) == 0 {
			return domainerrors.ErrEmptyCart.WrapMessage("checkout failed")
		}

		// 2. Compute the exact total and freeze line item prices. The
		// snapshot price on each row is the product's current unit price,
		// read inside this transaction.
		total := decimal.Zero
		items := make([]*entity.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			total = total.Add(cartItem.Subtotal())
			items = append(items, &entity.OrderItem{
				ProductID:   cartItem.ProductID,
				Quantity:    cartItem.Quantity,
				Price:       cartItem.ProductPrice,
				ProductName: cartItem.ProductName,
			})
		}

		// 3. Persist the order with its items.
		order := &entity.Order{
			UserID:      userID,
			Status:      entity.OrderStatusPending,
			TotalAmount: total,
			Items:       items,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 4. Clear the cart.
		if err := cartRepo.DeleteAllByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		createdOrder = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order created",
		slog.Any("userID", userID),
		slog.Any("orderID", createdOrder.ID),
		slog.String("total", createdOrder.TotalAmount.StringFixed(2)),
	)

	return createdOrder, nil
}

// ListOrders returns the user's order history, most recent first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one of the user's orders with its line items.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// GetOrderPickupQR renders the pickup QR code for an order the user owns.
// Ownership is checked through the same scoped lookup as GetOrder.
func (srv *orderService) GetOrderPickupQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePickupQR(order.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate pickup QR", slog.Any("orderID", order.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate pickup QR")
	}

	return png, nil
}
