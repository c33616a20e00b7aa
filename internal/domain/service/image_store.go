package service

import (
	"context"
	"io"
)

// ImageStore persists uploaded images and addresses them publicly.
type ImageStore interface {
	// Save writes the image bytes under a fresh unique name and returns that
	// name.
	Save(ctx context.Context, r io.Reader) (string, error)

	// PublicURL returns the URL under which a saved image is served.
	PublicURL(name string) string
}
