package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adiritzhakii/food-by-me/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobImageStore_SaveAndAddress(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Uploads = config.UploadsConfig{
		Dir:     filepath.Join(dir, "uploads"),
		BaseURL: "http://localhost:3000/",
	}

	store, err := NewImageStore(cfg)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "image-"))

	data, err := os.ReadFile(filepath.Join(cfg.Uploads.Dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	assert.Equal(t, "http://localhost:3000/public/"+name, store.PublicURL(name))
}

// The uploads directory is served verbatim by the static route, so bucket
// writes must not leave metadata files next to the images.
func TestBlobImageStore_NoSidecarFiles(t *testing.T) {
	cfg := &config.Config{}
	cfg.Uploads = config.UploadsConfig{Dir: t.TempDir(), BaseURL: "http://localhost:3000"}

	store, err := NewImageStore(cfg)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), strings.NewReader("png bytes"))
	require.NoError(t, err)

	entries, err := os.ReadDir(cfg.Uploads.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}

func TestBlobImageStore_UniqueNames(t *testing.T) {
	cfg := &config.Config{}
	cfg.Uploads = config.UploadsConfig{Dir: t.TempDir(), BaseURL: "http://localhost:3000"}

	store, err := NewImageStore(cfg)
	require.NoError(t, err)

	first, err := store.Save(context.Background(), strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
