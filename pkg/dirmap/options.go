package dirmap

import (
	"github.com/vvka-141/dirmap/internal/files/filesystem"
	"github.com/vvka-141/dirmap/internal/logging"
)

// Option configures a DirectoryMap at construction time.
type Option func(*DirectoryMap)

// WithFileSystem backs the DirectoryMap with fsys instead of the host filesystem.
// Subdirectory maps inherit it.
func WithFileSystem(fsys FileSystem) Option {
	return func(d *DirectoryMap) {
		if fsys != nil {
			d.fs = fsys
		}
	}
}

// WithLogger routes diagnostic messages to logger. Subdirectory maps inherit it.
func WithLogger(logger Logger) Option {
	return func(d *DirectoryMap) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func defaults() *DirectoryMap {
	return &DirectoryMap{
		fs:     filesystem.NewOSFileSystem(),
		logger: logging.NewNullLogger(),
	}
}
