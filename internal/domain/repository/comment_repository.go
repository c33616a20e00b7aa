package repository

import (
	"context"
	"errors"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment lookup matches nothing.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindAll retrieves every comment, optionally filtered by post.
	FindAll(ctx context.Context, postID *uuid.UUID) ([]*entity.Comment, error)

	// Delete removes a comment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
