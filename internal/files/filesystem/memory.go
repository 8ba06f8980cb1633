package filesystem

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	errIsDir    = errors.New("is a directory")
	errNotDir   = errors.New("not a directory")
	errNotEmpty = errors.New("directory not empty")
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a file or directory node
type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements dirmap.FileSystem in memory.
// Paths use forward slashes; relative paths are taken from the root.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // map of absolute path -> entry
	root    string                  // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem containing only root.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = newDirEntry(root)
	mfs.ensureDirectoriesExist(root)
	return mfs
}

func newDirEntry(p string) *memoryEntry {
	return &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(p),
			mode:    DirMode | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

func newFileEntry(p string, content []byte, perm fs.FileMode) *memoryEntry {
	return &memoryEntry{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(p),
			size:    int64(len(content)),
			mode:    perm.Perm(),
			modTime: time.Now(),
		},
	}
}

// AddFile adds a file, creating any missing parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.entries[absPath] = newFileEntry(absPath, []byte(content), FileMode)
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory, creating any missing parent directories.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = newDirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// resolve normalizes p to a clean absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(p string) {
	dir := path.Dir(p)
	if dir == p {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.entries[dir] = newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// Abs implements dirmap.FileSystem.Abs
func (mfs *MemoryFileSystem) Abs(p string) (string, error) {
	return mfs.resolve(p), nil
}

// Stat implements dirmap.FileSystem.Stat
func (mfs *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(p)]
	if !exists {
		return nil, pathError("stat", p, fs.ErrNotExist)
	}
	return entry.info, nil
}

// ReadDirNames implements dirmap.FileSystem.ReadDirNames
func (mfs *MemoryFileSystem) ReadDirNames(p string) ([]string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	dir := mfs.resolve(p)
	entry, exists := mfs.entries[dir]
	if !exists {
		return nil, pathError("open", p, fs.ErrNotExist)
	}
	if !entry.info.IsDir() {
		return nil, pathError("readdirent", p, errNotDir)
	}

	names := []string{}
	for entryPath := range mfs.entries {
		if entryPath != dir && path.Dir(entryPath) == dir {
			names = append(names, path.Base(entryPath))
		}
	}
	return names, nil
}

// ReadFile implements dirmap.FileSystem.ReadFile
func (mfs *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[mfs.resolve(p)]
	if !exists {
		return nil, pathError("open", p, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return nil, pathError("read", p, errIsDir)
	}

	content := make([]byte, len(entry.content))
	copy(content, entry.content)
	return content, nil
}

// WriteFile implements dirmap.FileSystem.WriteFile. The parent directory must exist.
func (mfs *MemoryFileSystem) WriteFile(p string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(p)
	parent, exists := mfs.entries[path.Dir(absPath)]
	if !exists {
		return pathError("open", p, fs.ErrNotExist)
	}
	if !parent.info.IsDir() {
		return pathError("open", p, errNotDir)
	}
	if entry, exists := mfs.entries[absPath]; exists && entry.info.IsDir() {
		return pathError("open", p, errIsDir)
	}

	content := make([]byte, len(data))
	copy(content, data)
	mfs.entries[absPath] = newFileEntry(absPath, content, perm)
	return nil
}

// Remove implements dirmap.FileSystem.Remove
func (mfs *MemoryFileSystem) Remove(p string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(p)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return pathError("remove", p, fs.ErrNotExist)
	}
	if entry.info.IsDir() && len(mfs.entriesUnder(absPath)) > 0 {
		return pathError("remove", p, errNotEmpty)
	}
	delete(mfs.entries, absPath)
	return nil
}

// RemoveAll implements dirmap.FileSystem.RemoveAll. A missing path is not an error.
func (mfs *MemoryFileSystem) RemoveAll(p string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(p)
	for _, entryPath := range mfs.entriesUnder(absPath) {
		delete(mfs.entries, entryPath)
	}
	delete(mfs.entries, absPath)
	return nil
}

// entriesUnder returns the paths strictly below basePath
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []string {
	prefix := basePath + "/"
	if basePath == "/" {
		prefix = "/"
	}

	var result []string
	for entryPath := range mfs.entries {
		if entryPath != basePath && strings.HasPrefix(entryPath, prefix) {
			result = append(result, entryPath)
		}
	}
	return result
}
