package dirmap

import "io/fs"

// FileSystem is the set of host primitives a DirectoryMap is built on.
// Paths are absolute; errors must be compatible with errors.Is(err, fs.ErrNotExist)
// for missing entries.
//
// Implementations:
//   - filesystem.OSFileSystem: the host filesystem (default)
//   - filesystem.MemoryFileSystem: in-memory tree for tests
type FileSystem interface {
	// Abs returns an absolute, cleaned form of path.
	Abs(path string) (string, error)

	// Stat returns information about path, following symlinks.
	Stat(path string) (fs.FileInfo, error)

	// ReadDirNames returns the names of the immediate entries of a directory
	// in no particular order.
	ReadDirNames(path string) ([]string, error)

	// ReadFile returns the full content of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile truncates or creates a file and writes data to it.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Remove removes a single file or empty directory.
	Remove(path string) error

	// RemoveAll removes path and all of its descendants.
	RemoveAll(path string) error
}
