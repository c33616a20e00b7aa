package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PostModel mirrors the 'posts' table. Likes is the JSON array of account
// IDs that currently like the post.
type PostModel struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title     string                      `gorm:"type:varchar(255);not null"`
	Content   string                      `gorm:"type:text"`
	Owner     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Picture   string                      `gorm:"type:text"`
	Likes     datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
