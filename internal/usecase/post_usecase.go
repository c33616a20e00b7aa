package usecase

import (
	"context"
	"time"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/google/uuid"
)

// CreatePostInput carries a new post. ImageName refers to an already stored
// upload; it is empty when the post has no picture.
type CreatePostInput struct {
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content"`
	Owner     uuid.UUID `json:"-"`
	ImageName string    `json:"-"`
}

// UpdatePostInput carries the mutable post fields.
type UpdatePostInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageName string `json:"-"`
}

// GeneratePostInput carries the prompt for an AI post draft.
type GeneratePostInput struct {
	Prompt string `json:"prompt" validate:"required"`
}

// PostOutput is the wire projection of a post.
type PostOutput struct {
	ID        uuid.UUID   `json:"_id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Owner     uuid.UUID   `json:"owner"`
	Picture   string      `json:"picture,omitempty"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToPostOutput maps a post entity to its wire projection.
func ToPostOutput(post *entity.Post) *PostOutput {
	likes := post.Likes
	if likes == nil {
		likes = []uuid.UUID{}
	}

	return &PostOutput{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Owner:     post.Owner,
		Picture:   post.Picture,
		Likes:     likes,
		CreatedAt: post.CreatedAt,
	}
}

// ToPostOutputs maps a post list to its wire projection.
func ToPostOutputs(posts []*entity.Post) []*PostOutput {
	outputs := make([]*PostOutput, 0, len(posts))
	for _, post := range posts {
		outputs = append(outputs, ToPostOutput(post))
	}

	return outputs
}

// PostUsecase covers the feed: CRUD, like toggling and AI drafts.
type PostUsecase interface {
	Create(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// GetAll lists every post, optionally filtered by owner.
	GetAll(ctx context.Context, owner *uuid.UUID) ([]*entity.Post, error)

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	Update(ctx context.Context, id uuid.UUID, input *UpdatePostInput) (*entity.Post, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// ToggleLike likes the post on behalf of accountID, or removes the like
	// when it is already present. Returns the updated post.
	ToggleLike(ctx context.Context, postID, accountID uuid.UUID) (*entity.Post, error)

	// Generate produces an AI post draft without persisting it.
	Generate(ctx context.Context, input *GeneratePostInput) (*service.GeneratedPost, error)
}
