package postgres

import (
	"context"

	"kusina/internal/domain/entity"
	domainerrors "kusina/internal/domain/errors"
	"kusina/internal/domain/repository"
	"kusina/internal/errors"
	"kusina/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new GORM-backed authentication repository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// FindAuthentication retrieves a credential by provider and provider user ID.
func (r *authRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	var row model.AuthenticationModel
	err := r.db.WithContext(ctx).
		First(&row, "provider = ? AND provider_user_id = ?", provider, providerUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to find authentication"))
	}

	return toAuthEntity(&row), nil
}

// CreateAuthentication persists a new credential. A duplicate
// (provider, provider_user_id) maps to ErrUserAlreadyExists so a racing
// second registration fails the same way a sequential one does.
func (r *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	row := fromAuthEntity(auth)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err, "uk_auth_provider_user") {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to create authentication"))
	}

	auth.ID = row.ID
	auth.CreatedAt = row.CreatedAt

	return nil
}

func toAuthEntity(row *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:             row.ID,
		UserID:         row.UserID,
		Provider:       row.Provider,
		ProviderUserID: row.ProviderUserID,
		PasswordHash:   row.PasswordHash,
		CreatedAt:      row.CreatedAt,
	}
}

func fromAuthEntity(auth *entity.Authentication) *model.AuthenticationModel {
	return &model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       auth.Provider,
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
		CreatedAt:      auth.CreatedAt,
	}
}
