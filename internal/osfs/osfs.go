// Package osfs implements the external.FileSystem collaborator over
// the operating system's real file system.
package osfs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arcweave/runepad/internal/external"
)

// FS is the default external.FileSystem backed by os.
type FS struct{}

var _ external.FileSystem = FS{}

// New returns an OS-backed file system collaborator.
func New() FS { return FS{} }

// Open opens path for reading.
func (FS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// WriteAtomic writes data to a temp file in path's directory, then
// renames it over path. Rename is atomic on POSIX file systems, so a
// reader never observes a partially-written file.
func (FS) WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".runepad-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
