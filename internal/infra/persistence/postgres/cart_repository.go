package postgres

import (
	"context"

	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	"kusina/internal/errors"
	"kusina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new GORM-backed cart repository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// ListByUser retrieves all cart rows for a user with product snapshots,
// oldest addition first.
func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var rows []model.CartItemModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to list cart items"))
	}

	items := make([]*entity.CartItem, 0, len(rows))
	for i := range rows {
		items = append(items, toCartItemEntity(&rows[i]))
	}

	return items, nil
}

// AddOrIncrement inserts a cart row or, when (user, product) already
// exists, increments its quantity. One statement against the unique index
// keeps concurrent duplicate adds from racing into two rows.
func (r *cartRepository) AddOrIncrement(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	row := &model.CartItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			}),
		}).
		Create(row).Error
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to upsert cart item"))
	}

	// Re-read for the resulting quantity and the product snapshot; the
	// upsert's returned model reflects the insert attempt, not the merge.
	var merged model.CartItemModel
	err = r.db.WithContext(ctx).
		Preload("Product").
		First(&merged, "user_id = ? AND product_id = ?", item.UserID, item.ProductID).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to read cart item after upsert"))
	}

	return toCartItemEntity(&merged), nil
}

// DeleteByUserAndProduct removes one cart row.
func (r *cartRepository) DeleteByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(errors.Wrap(result.Error, "failed to delete cart item"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteAllByUser clears the user's cart.
func (r *cartRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "user_id = ?", userID).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to clear cart"))
	}

	return nil
}

func toCartItemEntity(row *model.CartItemModel) *entity.CartItem {
	item := &entity.CartItem{
		ID:        row.ID,
		UserID:    row.UserID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		AddedAt:   row.AddedAt,
	}
	if row.Product != nil {
		item.ProductName = row.Product.Name
		item.ProductPrice = row.Product.Price
		item.ProductImage = row.Product.ImageURL
	}

	return item
}
