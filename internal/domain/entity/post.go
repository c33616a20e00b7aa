package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Post is a feed entry created by an account. Likes holds the IDs of the
// accounts that currently like the post, each at most once.
type Post struct {
	ID      uuid.UUID
	Title   string
	Content string
	Owner   uuid.UUID // Account that created the post.
	Picture string    // Public URL of the uploaded image, if any.
	Likes   []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToggleLike adds accountID to the likes when absent and removes it when
// present. It returns true when the post is liked after the call.
func (p *Post) ToggleLike(accountID uuid.UUID) bool {
	if slices.Contains(p.Likes, accountID) {
		p.Likes = slices.DeleteFunc(p.Likes, func(id uuid.UUID) bool {
			return id == accountID
		})

		return false
	}

	p.Likes = append(p.Likes, accountID)

	return true
}
