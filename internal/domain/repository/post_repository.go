package repository

import (
	"context"
	"errors"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post lookup matches nothing.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a single post by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindAll retrieves every post, optionally filtered by owner.
	FindAll(ctx context.Context, owner *uuid.UUID) ([]*entity.Post, error)

	// Update overwrites an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by its ID. Deleting an absent post is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
