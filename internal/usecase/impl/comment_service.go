package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/adiritzhakii/food-by-me/internal/delivery/context"
	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	domainerrors "github.com/adiritzhakii/food-by-me/internal/domain/errors"
	"github.com/adiritzhakii/food-by-me/internal/domain/repository"
	"github.com/adiritzhakii/food-by-me/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new comment after checking the post exists.
func (srv *commentService) Create(ctx context.Context, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if _, err := srv.postRepo.FindByID(ctx, input.PostID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	comment := &entity.Comment{
		PostID:  input.PostID,
		Owner:   input.Owner,
		Comment: input.Comment,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Comment created", slog.Any("comment_id", comment.ID), slog.Any("post_id", comment.PostID))

	return comment, nil
}

// List returns comments, optionally restricted to one post.
func (srv *commentService) List(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindAll(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// GetByID retrieves a single comment.
func (srv *commentService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}

// Delete removes a comment.
func (srv *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("comment_id", id))

	return nil
}
