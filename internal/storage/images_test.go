package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageFileStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageFileStore(dir)
	assert.NoError(t, err)

	ctx := context.Background()
	data := []byte("fake-image-bytes")

	name, err := store.Save(ctx, "avatar.png", data)
	assert.NoError(t, err)

	// Stored name keeps the original file name after a unique prefix
	assert.True(t, strings.HasSuffix(name, "_avatar.png"))

	written, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, data, written)
}

func TestImageFileStore_Save_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageFileStore(dir)
	assert.NoError(t, err)

	ctx := context.Background()

	// Saving the same original name twice must not collide
	first, err := store.Save(ctx, "avatar.png", []byte("one"))
	assert.NoError(t, err)
	second, err := store.Save(ctx, "avatar.png", []byte("two"))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)

	one, _ := os.ReadFile(filepath.Join(dir, first))
	two, _ := os.ReadFile(filepath.Join(dir, second))
	assert.Equal(t, []byte("one"), one)
	assert.Equal(t, []byte("two"), two)
}

func TestImageFileStore_Save_SanitizesPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageFileStore(dir)
	assert.NoError(t, err)

	ctx := context.Background()

	name, err := store.Save(ctx, "../../etc/evil.png", []byte("x"))
	assert.NoError(t, err)

	// Only the base name survives, the file stays inside the upload dir
	assert.True(t, strings.HasSuffix(name, "_evil.png"))
	assert.NotContains(t, name, "..")

	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestImageFileStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageFileStore(dir)
	assert.NoError(t, err)

	ctx := context.Background()

	name, err := store.Save(ctx, "avatar.png", []byte("x"))
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(ctx, name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	// Removing an absent file is not an error
	assert.NoError(t, store.Remove(ctx, name))
}

func TestNewImageFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "upload")

	_, err := NewImageFileStore(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
