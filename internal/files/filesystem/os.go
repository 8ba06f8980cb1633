package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements dirmap.FileSystem on the host filesystem.
// Errors from the os package are returned unchanged.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}

func (p *OSFileSystem) ReadDirNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (p *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (p *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
