package usecase

import (
	"context"
	"time"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput carries a new comment on a post.
type CreateCommentInput struct {
	PostID  uuid.UUID `json:"postId" validate:"required"`
	Comment string    `json:"comment" validate:"required"`
	Owner   uuid.UUID `json:"-"`
}

// CommentOutput is the wire projection of a comment.
type CommentOutput struct {
	ID        uuid.UUID `json:"_id"`
	PostID    uuid.UUID `json:"postId"`
	Owner     uuid.UUID `json:"owner"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCommentOutput maps a comment entity to its wire projection.
func ToCommentOutput(comment *entity.Comment) *CommentOutput {
	return &CommentOutput{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Owner:     comment.Owner,
		Comment:   comment.Comment,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentOutputs maps a comment list to its wire projection.
func ToCommentOutputs(comments []*entity.Comment) []*CommentOutput {
	outputs := make([]*CommentOutput, 0, len(comments))
	for _, comment := range comments {
		outputs = append(outputs, ToCommentOutput(comment))
	}

	return outputs
}

// CommentUsecase covers comment creation, listing and removal.
type CommentUsecase interface {
	Create(ctx context.Context, input *CreateCommentInput) (*entity.Comment, error)

	// List returns every comment, optionally filtered by post.
	List(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error)

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
