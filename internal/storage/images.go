package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
)

// ImageFileStore writes profile images into a configured upload directory.
// Every stored file gets a fresh UUID prefix so repeated uploads of the
// same original name never collide, and only the base of the client
// supplied name is kept so it cannot escape the directory.
type ImageFileStore struct {
	dir string
}

// NewImageFileStore creates a store rooted at dir, creating it if needed.
func NewImageFileStore(dir string) (*ImageFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ImageFileStore{dir: dir}, nil
}

// Save writes data under a generated name "<uuid>_<base(originalName)>"
// and returns that name.
func (s *ImageFileStore) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	name := uuid.New().String() + "_" + filepath.Base(originalName)
	path := filepath.Join(s.dir, name)

	err := os.WriteFile(path, data, 0o644)

	logger.Log.Infow(
		"path", path,
		"size", len(data),
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a previously stored image. Removing an absent name is a no-op.
func (s *ImageFileStore) Remove(ctx context.Context, name string) error {
	path := filepath.Join(s.dir, filepath.Base(name))

	err := os.Remove(path)
	if os.IsNotExist(err) {
		err = nil
	}

	logger.Log.Infow(
		"path", path,
		"error", err,
	)

	return err
}
