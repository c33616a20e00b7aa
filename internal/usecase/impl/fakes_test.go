package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	"github.com/adiritzhakii/food-by-me/internal/domain/repository"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAccountRepository is an in-memory credential store keyed the same way
// the real one is: the two variants never share a table.
type fakeAccountRepository struct {
	local map[uuid.UUID]*entity.Account
	oauth map[uuid.UUID]*entity.Account

	persistErr error
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		local: make(map[uuid.UUID]*entity.Account),
		oauth: make(map[uuid.UUID]*entity.Account),
	}
}

func (f *fakeAccountRepository) table(provider entity.Provider) map[uuid.UUID]*entity.Account {
	if provider == entity.ProviderGoogle {
		return f.oauth
	}

	return f.local
}

func clone(account *entity.Account) *entity.Account {
	copied := *account
	copied.RefreshTokens = append([]string(nil), account.RefreshTokens...)

	return &copied
}

func (f *fakeAccountRepository) CreateLocal(_ context.Context, account *entity.Account) error {
	for _, existing := range f.local {
		if existing.Email == account.Email {
			return repository.ErrEmailTaken
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.local[account.ID] = clone(account)

	return nil
}

func (f *fakeAccountRepository) CreateOAuth(_ context.Context, account *entity.Account) error {
	for _, existing := range f.oauth {
		if existing.GoogleID == account.GoogleID {
			return repository.ErrIdentityTaken
		}
		if existing.Email == account.Email {
			return repository.ErrEmailTaken
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.oauth[account.ID] = clone(account)

	return nil
}

func (f *fakeAccountRepository) FindByEmail(_ context.Context, provider entity.Provider, email string) (*entity.Account, error) {
	for _, account := range f.table(provider) {
		if account.Email == email {
			return clone(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepository) FindByID(_ context.Context, provider entity.Provider, id uuid.UUID) (*entity.Account, error) {
	if account, ok := f.table(provider)[id]; ok {
		return clone(account), nil
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepository) FindByGoogleID(_ context.Context, googleID string) (*entity.Account, error) {
	for _, account := range f.oauth {
		if account.GoogleID == googleID {
			return clone(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepository) PersistRefreshTokens(_ context.Context, account *entity.Account) error {
	if f.persistErr != nil {
		return f.persistErr
	}

	stored, ok := f.table(account.Provider)[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	stored.RefreshTokens = append([]string(nil), account.RefreshTokens...)

	return nil
}

func (f *fakeAccountRepository) UpdateProfile(_ context.Context, account *entity.Account) error {
	stored, ok := f.table(account.Provider)[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	stored.Name = account.Name
	stored.Avatar = account.Avatar

	return nil
}

// storedTokens reads the committed refresh-token list straight from the store.
func (f *fakeAccountRepository) storedTokens(provider entity.Provider, id uuid.UUID) []string {
	if account, ok := f.table(provider)[id]; ok {
		return account.RefreshTokens
	}

	return nil
}

// fakeTxManager runs the callback against a factory that hands out the shared
// in-memory repository.
type fakeTxManager struct {
	accountRepo *fakeAccountRepository
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) AccountRepo() repository.AccountRepository {
	return f.accountRepo
}

// stubTokenService mints predictable tokens and remembers the claims behind
// each one, so tests can redeem and replay them.
type stubTokenService struct {
	counter  int
	claims   map[string]*service.Claims
	issueErr error
}

func newStubTokenService() *stubTokenService {
	return &stubTokenService{claims: make(map[string]*service.Claims)}
}

func (s *stubTokenService) Issue(accountID uuid.UUID, provider entity.Provider) (*service.TokenPair, error) {
	if s.issueErr != nil {
		return nil, s.issueErr
	}

	s.counter++
	pair := &service.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.counter),
		RefreshToken: fmt.Sprintf("refresh-%d", s.counter),
	}
	claims := &service.Claims{
		AccountID: accountID,
		Provider:  provider,
		Nonce:     uuid.New().String(),
	}
	s.claims[pair.AccessToken] = claims
	s.claims[pair.RefreshToken] = claims

	return pair, nil
}

func (s *stubTokenService) Verify(tokenString string) (*service.Claims, error) {
	if claims, ok := s.claims[tokenString]; ok {
		return claims, nil
	}

	return nil, errors.New("token is invalid")
}

// stubHasher hashes reversibly so assertions stay readable.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubOAuthVerifier accepts one configured credential string.
type stubOAuthVerifier struct {
	credential string
	user       *service.OAuthUser
}

func (s *stubOAuthVerifier) VerifyCredential(_ context.Context, credential string) (*service.OAuthUser, error) {
	if s.user == nil || credential != s.credential {
		return nil, errors.New("invalid credential")
	}

	return s.user, nil
}

// fakePostRepository is an in-memory post store.
type fakePostRepository struct {
	posts map[uuid.UUID]*entity.Post
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{posts: make(map[uuid.UUID]*entity.Post)}
}

func clonePost(post *entity.Post) *entity.Post {
	copied := *post
	copied.Likes = append([]uuid.UUID(nil), post.Likes...)

	return &copied
}

func (f *fakePostRepository) Create(_ context.Context, post *entity.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.CreatedAt = time.Now()
	f.posts[post.ID] = clonePost(post)

	return nil
}

func (f *fakePostRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Post, error) {
	if post, ok := f.posts[id]; ok {
		return clonePost(post), nil
	}

	return nil, repository.ErrPostNotFound
}

func (f *fakePostRepository) FindAll(_ context.Context, owner *uuid.UUID) ([]*entity.Post, error) {
	var result []*entity.Post
	for _, post := range f.posts {
		if owner != nil && post.Owner != *owner {
			continue
		}
		result = append(result, clonePost(post))
	}

	return result, nil
}

func (f *fakePostRepository) Update(_ context.Context, post *entity.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return repository.ErrPostNotFound
	}
	f.posts[post.ID] = clonePost(post)

	return nil
}

func (f *fakePostRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(f.posts, id)

	return nil
}

// fakeCommentRepository is an in-memory comment store.
type fakeCommentRepository struct {
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentRepository() *fakeCommentRepository {
	return &fakeCommentRepository{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (f *fakeCommentRepository) Create(_ context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	f.comments[comment.ID] = comment

	return nil
}

func (f *fakeCommentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	if comment, ok := f.comments[id]; ok {
		return comment, nil
	}

	return nil, repository.ErrCommentNotFound
}

func (f *fakeCommentRepository) FindAll(_ context.Context, postID *uuid.UUID) ([]*entity.Comment, error) {
	var result []*entity.Comment
	for _, comment := range f.comments {
		if postID != nil && comment.PostID != *postID {
			continue
		}
		result = append(result, comment)
	}

	return result, nil
}

func (f *fakeCommentRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}
	delete(f.comments, id)

	return nil
}

// stubImageStore records saved images without touching disk.
type stubImageStore struct {
	saved int
}

func (s *stubImageStore) Save(_ context.Context, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.saved++

	return fmt.Sprintf("image-%d.png", s.saved), nil
}

func (s *stubImageStore) PublicURL(name string) string {
	return "http://localhost:3000/public/" + name
}

// stubGenerator returns a fixed draft or a configured error.
type stubGenerator struct {
	draft *service.GeneratedPost
	err   error
}

func (s *stubGenerator) GeneratePost(_ context.Context, _ string) (*service.GeneratedPost, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.draft, nil
}
