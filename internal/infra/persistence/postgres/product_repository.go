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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new GORM-backed product repository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to find product"))
	}

	return toProductEntity(&row), nil
}

// ListAvailable retrieves all available products.
func (r *productRepository) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	var rows []model.ProductModel
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to list products"))
	}

	return toProductEntities(rows), nil
}

// ListAvailableByCategory retrieves available products in one category.
func (r *productRepository) ListAvailableByCategory(ctx context.Context, category entity.Category) ([]*entity.Product, error) {
	var rows []model.ProductModel
	err := r.db.WithContext(ctx).
		Where("available = ? AND category = ?", true, string(category)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to list products by category"))
	}

	return toProductEntities(rows), nil
}

// ListCategories returns the distinct categories stored on products.
func (r *productRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &values).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to list categories"))
	}

	categories := make([]entity.Category, 0, len(values))
	for _, value := range values {
		categories = append(categories, entity.Category(value))
	}

	return categories, nil
}

// Create persists a new product.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	row := fromProductEntity(product)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to create product"))
	}

	product.ID = row.ID
	product.CreatedAt = row.CreatedAt

	return nil
}

// Update modifies an existing product. Save writes every column, so the
// caller must pass a fully populated entity.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image_url":   product.ImageURL,
			"available":   product.Available,
			"category":    string(product.Category),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(errors.Wrap(result.Error, "failed to update product"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductEntity(row *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		ImageURL:    row.ImageURL,
		Available:   row.Available,
		Category:    entity.Category(row.Category),
		CreatedAt:   row.CreatedAt,
	}
}

func toProductEntities(rows []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductEntity(&rows[i]))
	}

	return products
}

func fromProductEntity(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Available:   product.Available,
		Category:    string(product.Category),
		CreatedAt:   product.CreatedAt,
	}
}
