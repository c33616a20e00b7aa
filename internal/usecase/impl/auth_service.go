// Package impl contains the application-specific business rules implementations.
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

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	tokenService  service.TokenService
	hasher        service.PasswordHasher
	oauthVerifier service.OAuthVerifier
	logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	hasher service.PasswordHasher,
	oauthVerifier service.OAuthVerifier,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:     txManager,
		tokenService:  tokenService,
		hasher:        hasher,
		oauthVerifier: oauthVerifier,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account with a hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
	srv.log(ctx).Debug("Registering local account", slog.String("email", input.Email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Provider:      entity.ProviderLocal,
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  hash,
		RefreshTokens: []string{},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().CreateLocal(ctx, account); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailTaken
			}

			return errors.Wrap(err, "failed to create local account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Local registration failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Local account registered", slog.Any("account_id", account.ID))

	return usecase.ToAccountOutput(account), nil
}

// Login verifies a local credential and opens a session. Unknown emails and
// wrong passwords produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByEmail(ctx, entity.ProviderLocal, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find account by email")
		}

		if !srv.hasher.Check(input.Password, found.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		account = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Local login rejected", slog.String("email", input.Email))

		return nil, err
	}

	pair, err := srv.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Local login succeeded", slog.Any("account_id", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ID:           account.ID,
	}, nil
}

// OAuthRegister verifies the provider credential and creates the account.
// An identity that already registered gets rejected, not logged in.
func (srv *authService) OAuthRegister(ctx context.Context, input *usecase.OAuthInput) (*usecase.AccountOutput, error) {
	oauthUser, err := srv.oauthVerifier.VerifyCredential(ctx, input.Credential)
	if err != nil {
		srv.log(ctx).Warn("OAuth credential rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	account := &entity.Account{
		Provider:      entity.ProviderGoogle,
		Name:          oauthUser.Name,
		Email:         oauthUser.Email,
		GoogleID:      oauthUser.GoogleID,
		Avatar:        oauthUser.Avatar,
		RefreshTokens: []string{},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if _, err := accountRepo.FindByGoogleID(ctx, oauthUser.GoogleID); err == nil {
			return domainerrors.ErrAlreadyRegistered
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up oauth identity")
		}

		if err := accountRepo.CreateOAuth(ctx, account); err != nil {
			if errors.Is(err, repository.ErrIdentityTaken) || errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create oauth account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("OAuth registration failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("OAuth account registered", slog.Any("account_id", account.ID))

	return usecase.ToAccountOutput(account), nil
}

// OAuthLogin verifies the provider credential and opens a session for an
// identity that registered before.
func (srv *authService) OAuthLogin(ctx context.Context, input *usecase.OAuthInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.oauthVerifier.VerifyCredential(ctx, input.Credential)
	if err != nil {
		srv.log(ctx).Warn("OAuth credential rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed
	}

	var account *entity.Account

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByGoogleID(ctx, oauthUser.GoogleID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrNotRegistered
			}

			return errors.Wrap(err, "failed to look up oauth identity")
		}

		account = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("OAuth login rejected", slog.Any("error", err))

		return nil, err
	}

	pair, err := srv.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("OAuth login succeeded", slog.Any("account_id", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ID:           account.ID,
	}, nil
}

// Refresh redeems a refresh token for a fresh pair. The presented token is
// consumed first and stays consumed even when minting the replacement fails,
// so a failed rotation costs the session rather than reviving the old token.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*service.TokenPair, error) {
	account, err := srv.consumeRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	pair, err := srv.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Session refreshed", slog.Any("account_id", account.ID))

	return pair, nil
}

// Logout validates and consumes the presented refresh token. A second logout
// with the same token is a replay and revokes every session.
func (srv *authService) Logout(ctx context.Context, input *usecase.RefreshInput) error {
	account, err := srv.consumeRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Session closed", slog.Any("account_id", account.ID))

	return nil
}

// openSession mints a token pair and records its refresh half on the account.
// The stored list is re-read inside the transaction so concurrent sessions
// are not dropped.
func (srv *authService) openSession(ctx context.Context, account *entity.Account) (*service.TokenPair, error) {
	pair, err := srv.tokenService.Issue(account.ID, account.Provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token pair")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		current, err := accountRepo.FindByID(ctx, account.Provider, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload account")
		}

		current.AddRefreshToken(pair.RefreshToken)
		if err := accountRepo.PersistRefreshTokens(ctx, current); err != nil {
			return errors.Wrap(err, "failed to persist refresh tokens")
		}

		account.RefreshTokens = current.RefreshTokens

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pair, nil
}

// consumeRefreshToken verifies the token string, then removes it from the
// subject's stored list. A validly signed token that is absent from the list
// is treated as a replay: every stored token is revoked before rejecting.
// The removal commits on its own, independent of what the caller does next.
func (srv *authService) consumeRefreshToken(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, domainerrors.ErrSessionDenied
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrSessionDenied
	}

	var (
		account  *entity.Account
		replayed bool
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByID(ctx, claims.Provider, claims.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrSessionDenied
			}

			return errors.Wrap(err, "failed to find token subject")
		}

		if !found.HasRefreshToken(token) {
			// Replay of a consumed token. Revoke everything this subject has.
			// The purge must commit, so the rejection happens after Execute.
			found.ClearRefreshTokens()
			if err := accountRepo.PersistRefreshTokens(ctx, found); err != nil {
				return errors.Wrap(err, "failed to revoke sessions")
			}
			replayed = true

			return nil
		}

		found.RemoveRefreshToken(token)
		if err := accountRepo.PersistRefreshTokens(ctx, found); err != nil {
			return errors.Wrap(err, "failed to persist refresh tokens")
		}

		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if replayed {
		srv.log(ctx).Warn("Refresh token replay, all sessions revoked", slog.Any("account_id", claims.AccountID))

		return nil, domainerrors.ErrSessionDenied
	}

	return account, nil
}
