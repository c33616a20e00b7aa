package impl

import (
	"context"
	"testing"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"
	"github.com/adiritzhakii/food-by-me/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	accountRepo  *fakeAccountRepository
	tokenService *stubTokenService
	verifier     *stubOAuthVerifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	accountRepo := newFakeAccountRepository()
	tokenService := newStubTokenService()
	verifier := &stubOAuthVerifier{
		credential: "valid-google-credential",
		user: &service.OAuthUser{
			GoogleID: "google-sub-1",
			Email:    "google@example.com",
			Name:     "Google User",
			Avatar:   "http://example.com/avatar.png",
		},
	}

	svc := NewAuthService(
		&fakeTxManager{accountRepo: accountRepo},
		tokenService,
		stubHasher{},
		verifier,
		testLogger(),
	)

	return authServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		tokenService: tokenService,
		verifier:     verifier,
	}
}

func registerAndLogin(t *testing.T, fx authServiceFixtures) *usecase.LoginOutput {
	t.Helper()

	ctx := context.Background()
	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	return output
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "Test User", output.Name)
	assert.Equal(t, entity.ProviderLocal, output.Provider)
	assert.NotEqual(t, "", output.ID.String())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Name: "A", Email: "dup@example.com", Password: "pw"}
	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_StoresRefreshToken(t *testing.T) {
	fx := createTestAuthService(t)

	output := registerAndLogin(t, fx)

	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t,
		[]string{output.RefreshToken},
		fx.accountRepo.storedTokens(entity.ProviderLocal, output.ID),
	)
}

func TestAuthService_Login_WrongCredentialsIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name: "Test User", Email: "test@example.com", Password: "Password123!",
	})
	require.NoError(t, err)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "nobody@example.com", Password: "Password123!",
	})
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "test@example.com", Password: "wrong",
	})

	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_TwoLogins_IndependentSessions(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	first := registerAndLogin(t, fx)

	second, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "test@example.com", Password: "Password123!",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Len(t, fx.accountRepo.storedTokens(entity.ProviderLocal, first.ID), 2)

	// Closing one session leaves the other intact.
	require.NoError(t, fx.service.Logout(ctx, &usecase.RefreshInput{RefreshToken: first.RefreshToken}))
	assert.Equal(t,
		[]string{second.RefreshToken},
		fx.accountRepo.storedTokens(entity.ProviderLocal, first.ID),
	)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	login := registerAndLogin(t, fx)

	pair, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	assert.NotEqual(t, login.RefreshToken, pair.RefreshToken)
	assert.Equal(t,
		[]string{pair.RefreshToken},
		fx.accountRepo.storedTokens(entity.ProviderLocal, login.ID),
	)
}

func TestAuthService_Refresh_ReplayRevokesAllSessions(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	login := registerAndLogin(t, fx)

	// A concurrent session that should survive normal rotation.
	other, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email: "test@example.com", Password: "Password123!",
	})
	require.NoError(t, err)

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.Contains(t,
		fx.accountRepo.storedTokens(entity.ProviderLocal, login.ID),
		other.RefreshToken,
	)

	// Replaying the consumed token revokes everything, including the fresh
	// pair and the concurrent session.
	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrSessionDenied)
	assert.Empty(t, fx.accountRepo.storedTokens(entity.ProviderLocal, login.ID))
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionDenied)

	_, err = fx.service.Refresh(context.Background(), &usecase.RefreshInput{})
	assert.ErrorIs(t, err, domainerrors.ErrSessionDenied)
}

func TestAuthService_Refresh_ConsumesEvenWhenIssueFails(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	login := registerAndLogin(t, fx)

	fx.tokenService.issueErr = errors.New("signing backend down")

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	require.Error(t, err)

	// The presented token is gone regardless of the failed re-issue.
	assert.NotContains(t,
		fx.accountRepo.storedTokens(entity.ProviderLocal, login.ID),
		login.RefreshToken,
	)
}

func TestAuthService_Logout_ConsumesToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	login := registerAndLogin(t, fx)

	require.NoError(t, fx.service.Logout(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken}))
	assert.Empty(t, fx.accountRepo.storedTokens(entity.ProviderLocal, login.ID))

	// Logging out twice with the same token is a replay.
	err := fx.service.Logout(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrSessionDenied)
}

func TestAuthService_OAuthRegister_Success(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.OAuthRegister(context.Background(), &usecase.OAuthInput{
		Credential: "valid-google-credential",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderGoogle, output.Provider)
	assert.Equal(t, "google@example.com", output.Email)
}

func TestAuthService_OAuthRegister_Twice(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.OAuthInput{Credential: "valid-google-credential"}
	_, err := fx.service.OAuthRegister(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.OAuthRegister(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
}

func TestAuthService_OAuthLogin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.OAuthInput{Credential: "valid-google-credential"}

	// Login before registration is rejected.
	_, err := fx.service.OAuthLogin(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrNotRegistered)

	registered, err := fx.service.OAuthRegister(ctx, input)
	require.NoError(t, err)

	output, err := fx.service.OAuthLogin(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, output.ID)
	assert.Equal(t,
		[]string{output.RefreshToken},
		fx.accountRepo.storedTokens(entity.ProviderGoogle, output.ID),
	)
}

func TestAuthService_OAuth_BadCredential(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.OAuthRegister(ctx, &usecase.OAuthInput{Credential: "forged"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)

	_, err = fx.service.OAuthLogin(ctx, &usecase.OAuthInput{Credential: "forged"})
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_FullSessionLifecycle(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	login := registerAndLogin(t, fx)

	pair, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	second, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout(ctx, &usecase.RefreshInput{RefreshToken: second.RefreshToken}))
	assert.Empty(t, fx.accountRepo.storedTokens(entity.ProviderLocal, login.ID))
}
