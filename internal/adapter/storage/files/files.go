// Package files stores uploaded images on local disk and serves them back
// under the /uploads URL prefix.
package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/merchstudio/customizer/internal/core/domain"
)

// URLPrefix is the public path the router serves the upload directory under.
const URLPrefix = "/uploads"

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes content under filename and returns the public URL path.
func (s *Store) Save(filename string, content io.Reader) (string, error) {
	if !validName(filename) {
		return "", domain.ErrBadRequest
	}

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return URLPrefix + "/" + filename, nil
}

func (s *Store) Remove(filename string) error {
	if !validName(filename) {
		return domain.ErrBadRequest
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrImageNotFound
		}
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

// validName rejects anything that could escape the upload directory.
func validName(filename string) bool {
	return filename != "" && filename != "." && filename != ".." &&
		filename == filepath.Base(filename)
}
