package configfactory

import (
	"io/fs"
	"os"
)

// FileSystem abstracts reading configuration files off disk, grounded on
// the Loader/FileSystem split other implementations use to keep config
// loading testable without touching the real filesystem.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem over the real operating system filesystem.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:wrapcheck
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path) //nolint:wrapcheck
}
