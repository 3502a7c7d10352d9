package repository

import (
	"context"
	"io"
)

// FileStore persists raw uploaded bytes under opaque generated
// filenames. Implementations must tolerate Delete on a filename that
// no longer exists; blob cleanup is always best-effort.
type FileStore interface {
	// Save writes the content under filename and returns the number of
	// bytes written.
	Save(ctx context.Context, filename string, content io.Reader) (int64, error)

	// Delete removes the blob. A missing blob is not an error.
	Delete(ctx context.Context, filename string) error
}
