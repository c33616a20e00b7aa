// Package model contains the GORM models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LocalAccountModel mirrors the 'local_accounts' table: password-based
// credential records. The refresh-token list is stored as a JSON array and
// always overwritten whole.
type LocalAccountModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"type:varchar(100);not null"`
	Email         string                      `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  string                      `gorm:"type:varchar(255);not null"`
	Avatar        string                      `gorm:"type:text"`
	RefreshTokens datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocalAccountModel) TableName() string {
	return "local_accounts"
}

// OAuthAccountModel mirrors the 'oauth_accounts' table: provider-identity
// credential records. Lookups never cross into local_accounts.
type OAuthAccountModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"type:varchar(100)"`
	Email         string                      `gorm:"type:varchar(255);unique;not null"`
	GoogleID      string                      `gorm:"type:varchar(255);unique;not null"`
	Avatar        string                      `gorm:"type:text"`
	RefreshTokens datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthAccountModel) TableName() string {
	return "oauth_accounts"
}
