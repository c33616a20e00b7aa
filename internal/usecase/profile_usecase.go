package usecase

import (
	"context"

	"github.com/adiritzhakii/food-by-me/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileOutput is the public profile projection.
type ProfileOutput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// EditProfileInput carries the mutable profile fields.
type EditProfileInput struct {
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar"`
}

// ProfileUsecase covers profile reads and edits for both account variants.
type ProfileUsecase interface {
	Get(ctx context.Context, provider entity.Provider, accountID uuid.UUID) (*ProfileOutput, error)

	Edit(ctx context.Context, provider entity.Provider, accountID uuid.UUID, input *EditProfileInput) error

	// SetAvatar stores an already uploaded image as the account's avatar and
	// returns the public avatar URL.
	SetAvatar(ctx context.Context, provider entity.Provider, accountID uuid.UUID, imageName string) (string, error)

	// GetByID resolves an account without a variant hint, checking the OAuth
	// table first and the local table second.
	GetByID(ctx context.Context, id uuid.UUID) (*AccountOutput, error)
}
