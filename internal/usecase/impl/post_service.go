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

// postService implements the PostUsecase interface.
type postService struct {
	postRepo   repository.PostRepository
	imageStore service.ImageStore
	generator  service.TextGenerator
	logger     *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	postRepo repository.PostRepository,
	imageStore service.ImageStore,
	generator service.TextGenerator,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		postRepo:   postRepo,
		imageStore: imageStore,
		generator:  generator,
		logger:     logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new post for its owner.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:   input.Title,
		Content: input.Content,
		Owner:   input.Owner,
		Likes:   []uuid.UUID{},
	}
	if input.ImageName != "" {
		post.Picture = srv.imageStore.PublicURL(input.ImageName)
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Post created", slog.Any("post_id", post.ID), slog.Any("owner", post.Owner))

	return post, nil
}

// GetAll lists posts, optionally restricted to one owner.
func (srv *postService) GetAll(ctx context.Context, owner *uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// GetByID retrieves a single post.
func (srv *postService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// Update overwrites the mutable post fields. Empty fields keep their stored
// values.
func (srv *postService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePostInput) (*entity.Post, error) {
	post, err := srv.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.ImageName != "" {
		post.Picture = srv.imageStore.PublicURL(input.ImageName)
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update post")
	}

	srv.log(ctx).Info("Post updated", slog.Any("post_id", post.ID))

	return post, nil
}

// Delete removes a post.
func (srv *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("post_id", id))

	return nil
}

// ToggleLike flips accountID's like on the post and returns the updated post.
func (srv *postService) ToggleLike(ctx context.Context, postID, accountID uuid.UUID) (*entity.Post, error) {
	post, err := srv.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := post.ToggleLike(accountID)

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to persist like toggle")
	}

	srv.log(ctx).Debug("Like toggled",
		slog.Any("post_id", postID),
		slog.Any("account_id", accountID),
		slog.Bool("liked", liked),
	)

	return post, nil
}

// Generate produces an AI post draft without persisting it.
func (srv *postService) Generate(ctx context.Context, input *usecase.GeneratePostInput) (*service.GeneratedPost, error) {
	draft, err := srv.generator.GeneratePost(ctx, input.Prompt)
	if err != nil {
		srv.log(ctx).Error("Post generation failed", slog.Any("error", err))

		return nil, domainerrors.ErrGenerationFailed.WrapMessage(err.Error())
	}

	return draft, nil
}
