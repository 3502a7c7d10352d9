// Package blob implements the FileStore interface on the local
// filesystem. Uploaded files land in a single flat directory under
// opaque generated names and are served back statically.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes blobs into a directory on local disk.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed and returns a store
// rooted there.
func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("blob: directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create directory %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the content under filename. Filenames are generated by
// the caller and never contain path separators, but Base is applied
// anyway so a hostile name cannot escape the directory.
func (s *DiskStore) Save(ctx context.Context, filename string, content io.Reader) (int64, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("blob: create %s: %w", filename, err)
	}
	defer f.Close()

	written, err := io.Copy(f, content)
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("blob: write %s: %w", filename, err)
	}
	return written, nil
}

// Delete removes the blob. A blob that is already gone is not an
// error; cleanup is best-effort by design.
func (s *DiskStore) Delete(ctx context.Context, filename string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blob: delete %s: %w", filename, err)
	}
	return nil
}
