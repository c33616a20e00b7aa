package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a remark left by an account on a single post.
type Comment struct {
	ID      uuid.UUID
	PostID  uuid.UUID
	Owner   uuid.UUID
	Comment string

	CreatedAt time.Time
	UpdatedAt time.Time
}
