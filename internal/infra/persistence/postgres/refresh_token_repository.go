package postgres

import (
	"context"
	"time"

	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	"kusina/internal/errors"
	"kusina/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new GORM-backed refresh token repository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// CreateRefreshToken persists a new session record.
func (r *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	row := fromRefreshTokenEntity(token)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to create refresh token"))
	}

	token.ID = row.ID
	token.CreatedAt = row.CreatedAt

	return nil
}

// FindRefreshTokenByHash retrieves a session by its token hash. Expired
// rows are reported as ErrRefreshTokenExpired and removed opportunistically.
func (r *refreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var row model.RefreshTokenModel
	if err := r.db.WithContext(ctx).First(&row, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to find refresh token"))
	}

	if time.Now().After(row.ExpiresAt) {
		// Best effort cleanup; the expired error is what matters.
		r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token_hash = ?", tokenHash)

		return nil, repository.ErrRefreshTokenExpired
	}

	return toRefreshTokenEntity(&row), nil
}

// DeleteRefreshTokenByHash removes a session, invalidating the token.
func (r *refreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	result := r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token_hash = ?", tokenHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(errors.Wrap(result.Error, "failed to delete refresh token"))
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func toRefreshTokenEntity(row *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}

func fromRefreshTokenEntity(token *entity.RefreshToken) *model.RefreshTokenModel {
	return &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}
