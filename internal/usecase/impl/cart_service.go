package impl

import (
	"context"
	"log/slog"

	deliverycontext "kusina/internal/delivery/context"
	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	"kusina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCart returns the user's cart with product display snapshots.
func (srv *cartService) ListCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return items, nil
}

// AddToCart adds a product to the cart or merges into the existing row.
// A missing or non-positive quantity defaults to 1.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*entity.CartItem, error) {
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	// The product must exist before a row can reference it.
	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "add to cart failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// Single atomic upsert; the unique (user, product) constraint turns a
	// concurrent duplicate add into an increment.
	item, err := srv.cartRepo.AddOrIncrement(ctx, &entity.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add item to cart", slog.Any("userID", userID), slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add item to cart")
	}

	srv.log(ctx).Debug("Added item to cart", slog.Any("userID", userID), slog.Any("productID", input.ProductID), slog.Int("quantity", item.Quantity))

	return item, nil
}

// RemoveFromCart deletes one (user, product) row from the cart.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.cartRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "remove from cart failed")
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	srv.log(ctx).Debug("Removed item from cart", slog.Any("userID", userID), slog.Any("productID", productID))

	return nil
}
