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
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new GORM-backed order repository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with its line items in one insert
// tree. Generated IDs are written back onto the entity.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	row := fromOrderEntity(order)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to create order"))
	}

	order.ID = row.ID
	order.CreatedAt = row.CreatedAt
	for i, item := range row.Items {
		order.Items[i].ID = item.ID
		order.Items[i].OrderID = item.OrderID
	}

	return nil
}

// ListByUser retrieves all orders for a user, most recent first.
func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var rows []model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to list orders"))
	}

	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderEntity(&rows[i]))
	}

	return orders, nil
}

// FindByIDForUser retrieves one order scoped to the owning user. Another
// user's order ID behaves exactly like a missing one.
func (r *orderRepository) FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var row model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&row, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to find order"))
	}

	return toOrderEntity(&row), nil
}

func toOrderEntity(row *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:          row.ID,
		UserID:      row.UserID,
		Status:      row.Status,
		TotalAmount: row.TotalAmount,
		CreatedAt:   row.CreatedAt,
		Items:       make([]*entity.OrderItem, 0, len(row.Items)),
	}
	for i := range row.Items {
		order.Items = append(order.Items, toOrderItemEntity(&row.Items[i]))
	}

	return order
}

func toOrderItemEntity(row *model.OrderItemModel) *entity.OrderItem {
	item := &entity.OrderItem{
		ID:        row.ID,
		OrderID:   row.OrderID,
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		Price:     row.Price,
	}
	if row.Product != nil {
		item.ProductName = row.Product.Name
	}

	return item
}

func fromOrderEntity(order *entity.Order) *model.OrderModel {
	row := &model.OrderModel{
		ID:          order.ID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Items:       make([]model.OrderItemModel, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		row.Items = append(row.Items, model.OrderItemModel{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return row
}
