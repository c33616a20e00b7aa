package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/adiritzhakii/food-by-me/internal/delivery/context"
	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/domain/repository"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"
	"github.com/adiritzhakii/food-by-me/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager  repository.TransactionManager
	imageStore service.ImageStore
	logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	imageStore service.ImageStore,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:  txManager,
		imageStore: imageStore,
		logger:     logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the caller's own profile.
func (srv *profileService) Get(ctx context.Context, provider entity.Provider, accountID uuid.UUID) (*usecase.ProfileOutput, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByID(ctx, provider, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}

		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileOutput{
		Name:   account.Name,
		Email:  account.Email,
		Avatar: account.Avatar,
	}, nil
}

// Edit updates the caller's display name and avatar.
func (srv *profileService) Edit(ctx context.Context, provider entity.Provider, accountID uuid.UUID, input *usecase.EditProfileInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, provider, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}

		account.Name = input.Name
		if input.Avatar != "" {
			account.Avatar = input.Avatar
		}

		if err := accountRepo.UpdateProfile(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile edit failed", slog.Any("account_id", accountID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Profile edited", slog.Any("account_id", accountID))

	return nil
}

// SetAvatar points the caller's avatar at an already uploaded image and
// returns the public URL.
func (srv *profileService) SetAvatar(ctx context.Context, provider entity.Provider, accountID uuid.UUID, imageName string) (string, error) {
	avatarURL := srv.imageStore.PublicURL(imageName)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, provider, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}

		account.Avatar = avatarURL

		if err := accountRepo.UpdateProfile(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update avatar")
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Avatar updated", slog.Any("account_id", accountID))

	return avatarURL, nil
}

// GetByID resolves a public profile without a variant hint. The OAuth table
// is consulted first, then the local one.
func (srv *profileService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.AccountOutput, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByID(ctx, entity.ProviderGoogle, id)
		if err == nil {
			account = found

			return nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to find oauth account")
		}

		found, err = accountRepo.FindByID(ctx, entity.ProviderLocal, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find local account")
		}

		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToAccountOutput(account), nil
}
