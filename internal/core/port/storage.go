package port

import "io"

// ImageStore stores uploaded image bytes and serves them back by URL.
// Orders only care whether an image reference is present.
type ImageStore interface {
	// Save writes the content under the given file name and returns the
	// public URL path for it.
	Save(filename string, content io.Reader) (string, error)
	Remove(filename string) error
}
