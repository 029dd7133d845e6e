package files_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/merchstudio/customizer/internal/adapter/storage/files"
	"github.com/merchstudio/customizer/internal/core/domain"
)

func TestStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := files.NewStore(dir)
	assert.NoError(t, err)

	url, err := store.Save("image-1.png", strings.NewReader("png bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/image-1.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "image-1.png"))
	assert.NoError(t, err)
	assert.Equal(t, "png bytes", string(data))

	assert.NoError(t, store.Remove("image-1.png"))
	assert.Equal(t, domain.ErrImageNotFound, store.Remove("image-1.png"))
}

func TestStore_RejectsPathTraversal(t *testing.T) {
	store, err := files.NewStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.Save("../escape.png", strings.NewReader("x"))
	assert.Equal(t, domain.ErrBadRequest, err)

	assert.Equal(t, domain.ErrBadRequest, store.Remove("a/b.png"))
	assert.Equal(t, domain.ErrBadRequest, store.Remove(".."))
}
