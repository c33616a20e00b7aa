// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/domain/repository"
	"github.com/adiritzhakii/food-by-me/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface.
// Local and OAuth accounts live in separate tables; every operation that takes
// a provider dispatches to exactly one of them here, never at the call site.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateLocal persists a new password-based account record.
func (repo *accountRepository) CreateLocal(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	accountM := fromLocalDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create local account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// CreateOAuth persists a new provider-identity account record.
func (repo *accountRepository) CreateOAuth(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	accountM := fromOAuthDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "google_id") {
				return repository.ErrIdentityTaken
			}

			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create oauth account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByEmail retrieves an account by email within a single provider's table.
func (repo *accountRepository) FindByEmail(ctx context.Context, provider entity.Provider, email string) (*entity.Account, error) {
	switch provider {
	case entity.ProviderGoogle:
		var accountM model.OAuthAccountModel
		if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&accountM).Error; err != nil {
			return nil, mapFindError(err)
		}

		return toOAuthDomain(&accountM), nil
	default:
		var accountM model.LocalAccountModel
		if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&accountM).Error; err != nil {
			return nil, mapFindError(err)
		}

		return toLocalDomain(&accountM), nil
	}
}

// FindByID retrieves an account by primary key within a single provider's table.
func (repo *accountRepository) FindByID(ctx context.Context, provider entity.Provider, id uuid.UUID) (*entity.Account, error) {
	switch provider {
	case entity.ProviderGoogle:
		var accountM model.OAuthAccountModel
		if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
			return nil, mapFindError(err)
		}

		return toOAuthDomain(&accountM), nil
	default:
		var accountM model.LocalAccountModel
		if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error; err != nil {
			return nil, mapFindError(err)
		}

		return toLocalDomain(&accountM), nil
	}
}

// FindByGoogleID retrieves an oauth account by its provider-issued subject ID.
func (repo *accountRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.Account, error) {
	var accountM model.OAuthAccountModel
	if err := repo.db.WithContext(ctx).Where("google_id = ?", googleID).First(&accountM).Error; err != nil {
		return nil, mapFindError(err)
	}

	return toOAuthDomain(&accountM), nil
}

// PersistRefreshTokens overwrites the stored refresh-token list with the
// entity's current one. The whole list is replaced in a single UPDATE.
func (repo *accountRepository) PersistRefreshTokens(ctx context.Context, account *entity.Account) error {
	tokens := datatypes.NewJSONSlice(account.RefreshTokens)

	var result *gorm.DB
	switch account.Provider {
	case entity.ProviderGoogle:
		result = repo.db.WithContext(ctx).
			Model(&model.OAuthAccountModel{}).
			Where("id = ?", account.ID).
			Update("refresh_tokens", tokens)
	default:
		result = repo.db.WithContext(ctx).
			Model(&model.LocalAccountModel{}).
			Where("id = ?", account.ID).
			Update("refresh_tokens", tokens)
	}

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to persist refresh tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// UpdateProfile updates the mutable profile fields of an account.
func (repo *accountRepository) UpdateProfile(ctx context.Context, account *entity.Account) error {
	fields := map[string]any{
		"name":   account.Name,
		"avatar": account.Avatar,
	}

	var result *gorm.DB
	switch account.Provider {
	case entity.ProviderGoogle:
		result = repo.db.WithContext(ctx).
			Model(&model.OAuthAccountModel{}).
			Where("id = ?", account.ID).
			Updates(fields)
	default:
		result = repo.db.WithContext(ctx).
			Model(&model.LocalAccountModel{}).
			Where("id = ?", account.ID).
			Updates(fields)
	}

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func mapFindError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrAccountNotFound
	}

	return errors.WithStack(err)
}

// --- Mapper Functions ---

func toLocalDomain(data *model.LocalAccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:            data.ID,
		Provider:      entity.ProviderLocal,
		Name:          data.Name,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Avatar:        data.Avatar,
		RefreshTokens: []string(data.RefreshTokens),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromLocalDomain(data *entity.Account) *model.LocalAccountModel {
	if data == nil {
		return nil
	}

	return &model.LocalAccountModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Avatar:        data.Avatar,
		RefreshTokens: datatypes.NewJSONSlice(data.RefreshTokens),
	}
}

func toOAuthDomain(data *model.OAuthAccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:            data.ID,
		Provider:      entity.ProviderGoogle,
		Name:          data.Name,
		Email:         data.Email,
		GoogleID:      data.GoogleID,
		Avatar:        data.Avatar,
		RefreshTokens: []string(data.RefreshTokens),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOAuthDomain(data *entity.Account) *model.OAuthAccountModel {
	if data == nil {
		return nil
	}

	return &model.OAuthAccountModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		GoogleID:      data.GoogleID,
		Avatar:        data.Avatar,
		RefreshTokens: datatypes.NewJSONSlice(data.RefreshTokens),
	}
}
