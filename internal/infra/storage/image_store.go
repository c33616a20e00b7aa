// Package storage persists uploaded images in a local blob bucket and
// addresses them through the public static route.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adiritzhakii/food-by-me/config"
	"github.com/adiritzhakii/food-by-me/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// blobImageStore implements service.ImageStore on a fileblob bucket rooted
// at the uploads directory.
type blobImageStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewImageStore is the constructor for blobImageStore. It creates the uploads
// directory when missing and opens it as a blob bucket.
func NewImageStore(cfg *config.Config) (service.ImageStore, error) {
	dir := cfg.Uploads.Dir
	if dir == "" {
		dir = "blob-images"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create uploads directory")
	}

	// Sidecar metadata files would be served through the public static route.
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		Metadata: fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploads bucket")
	}

	return &blobImageStore{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(cfg.Uploads.BaseURL, "/"),
	}, nil
}

// Save writes the image under a fresh unique name and returns that name.
func (s *blobImageStore) Save(ctx context.Context, r io.Reader) (string, error) {
	name := fmt.Sprintf("image-%d.png", time.Now().UnixNano())

	w, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{ContentType: "image/png"})
	if err != nil {
		return "", errors.Wrap(err, "failed to open image writer")
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", errors.Wrap(err, "failed to write image")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish image write")
	}

	return name, nil
}

// PublicURL returns the URL under which a saved image is served.
func (s *blobImageStore) PublicURL(name string) string {
	return s.baseURL + "/public/" + name
}
