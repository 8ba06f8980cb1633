package dirmap

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mitchellh/go-homedir"
)

// DirectoryMap is a directory viewed as an ordered container of its entries.
// It holds only its absolute path; every method reads the filesystem afresh.
type DirectoryMap struct {
	path   string
	fs     FileSystem
	logger Logger
}

// New returns a DirectoryMap rooted at startDir, or at the current working
// directory when startDir is empty. A leading "~" is expanded.
// It fails with ErrNotADirectory if the path is missing or not a directory.
func New(startDir string, opts ...Option) (*DirectoryMap, error) {
	d := defaults()
	for _, opt := range opts {
		opt(d)
	}

	if startDir == "" {
		startDir = "."
	}
	absPath, err := d.fs.Abs(expandHome(startDir))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotADirectory, startDir, err)
	}
	if err := d.requireDir(absPath); err != nil {
		return nil, err
	}

	d.path = absPath
	d.logger.Verbose("opened directory map at %s", absPath)
	return d, nil
}

func (d *DirectoryMap) requireDir(p string) error {
	info, err := d.fs.Stat(p)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotADirectory, p, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, p)
	}
	return nil
}

// child builds the map for a subdirectory already known to exist.
func (d *DirectoryMap) child(p string) *DirectoryMap {
	return &DirectoryMap{path: p, fs: d.fs, logger: d.logger}
}

// Path returns the absolute path of the directory.
func (d *DirectoryMap) Path() string { return d.path }

// ResolveSubpath translates a simple key into the path it addresses.
// The target is not required to exist.
func (d *DirectoryMap) ResolveSubpath(key Key) (string, error) {
	switch k := key.(type) {
	case Name:
		return d.joinName(string(k)), nil
	case Position:
		name, err := d.nameAt(int(k))
		if err != nil {
			return "", err
		}
		return d.joinName(name), nil
	default:
		return "", invalidKind(key)
	}
}

func (d *DirectoryMap) joinName(name string) string {
	expanded := expandHome(name)
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded)
	}
	return filepath.Join(d.path, expanded)
}

// nameAt returns the listing entry at position pos, counting from the end
// when pos is negative.
func (d *DirectoryMap) nameAt(pos int) (string, error) {
	keys, err := d.Keys(true)
	if err != nil {
		return "", err
	}
	i := pos
	if i < 0 {
		i += len(keys)
	}
	if i < 0 || i >= len(keys) {
		return "", fmt.Errorf("%w: position %d in %s (%d entries)", ErrIndexOutOfRange, pos, d.path, len(keys))
	}
	return keys[i], nil
}

// Keys lists the immediate entries in byte-wise name order. When showHidden
// is false, names starting with "." are left out.
func (d *DirectoryMap) Keys(showHidden bool) ([]string, error) {
	names, err := d.fs.ReadDirNames(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.path, err)
	}

	if !showHidden {
		names = slices.DeleteFunc(names, isHidden)
	}
	slices.Sort(names)
	return names, nil
}

// Files returns the subset of Keys that are regular files.
func (d *DirectoryMap) Files(showHidden bool) ([]string, error) {
	return d.filterKeys(showHidden, func(info fs.FileInfo) bool { return info.Mode().IsRegular() })
}

// Dirs returns the subset of Keys that are directories.
func (d *DirectoryMap) Dirs(showHidden bool) ([]string, error) {
	return d.filterKeys(showHidden, fs.FileInfo.IsDir)
}

// filterKeys keeps the entries whose info satisfies keep. Entries that cannot
// be stat'ed, such as dangling symlinks, are neither files nor directories.
func (d *DirectoryMap) filterKeys(showHidden bool, keep func(fs.FileInfo) bool) ([]string, error) {
	keys, err := d.Keys(showHidden)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(keys))
	for _, name := range keys {
		info, err := d.fs.Stat(d.joinName(name))
		if err != nil {
			continue
		}
		if keep(info) {
			result = append(result, name)
		}
	}
	return result, nil
}

// Match returns the Keys whose names match a doublestar glob pattern.
func (d *DirectoryMap) Match(pattern string, showHidden bool) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	keys, err := d.Keys(showHidden)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(keys, func(name string) bool {
		ok, _ := doublestar.Match(pattern, name)
		return !ok
	}), nil
}

// Items returns a lazy sequence of (key, value) pairs in Keys order. Each
// file is read when its pair is produced. The sequence can be ranged over
// once; it ends after yielding the first error.
func (d *DirectoryMap) Items(showHidden bool) iter.Seq2[Item, error] {
	consumed := false
	return func(yield func(Item, error) bool) {
		if consumed {
			return
		}
		consumed = true

		keys, err := d.Keys(showHidden)
		if err != nil {
			yield(Item{}, err)
			return
		}
		for _, name := range keys {
			v, err := d.load(d.joinName(name))
			if err != nil {
				yield(Item{Key: name}, err)
				return
			}
			if !yield(Item{Key: name, Value: v}, nil) {
				return
			}
		}
	}
}

// All yields the entry names in sorted order, hidden entries included.
func (d *DirectoryMap) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		keys, err := d.Keys(true)
		if err != nil {
			yield("", err)
			return
		}
		for _, name := range keys {
			if !yield(name, nil) {
				return
			}
		}
	}
}

// Len returns the number of immediate entries, hidden entries included.
func (d *DirectoryMap) Len() (int, error) {
	keys, err := d.Keys(true)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Get reads whatever index addresses.
//
// A Name or Position yields Content for a regular file and a *DirectoryMap
// for a directory. KeyList and Range yield a List in index order; the first
// element that fails aborts the whole lookup.
func (d *DirectoryMap) Get(index Index) (Value, error) {
	switch idx := index.(type) {
	case KeyList:
		return d.getList(idx)
	case Range:
		return d.getRange(idx)
	case Key:
		p, err := d.ResolveSubpath(idx)
		if err != nil {
			return nil, err
		}
		return d.load(p)
	default:
		return nil, invalidKind(index)
	}
}

func (d *DirectoryMap) getList(keys KeyList) (Value, error) {
	result := make(List, 0, len(keys))
	for _, k := range keys {
		v, err := d.Get(k)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (d *DirectoryMap) getRange(r Range) (Value, error) {
	positions, err := d.rangePositions(r)
	if err != nil {
		return nil, err
	}

	result := make(List, 0, len(positions))
	for _, pos := range positions {
		v, err := d.Get(Position(pos))
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// rangePositions expands r into positions the way range(start, stop, step)
// does after negative endpoints have been offset by the length.
func (d *DirectoryMap) rangePositions(r Range) ([]int, error) {
	keys, err := d.Keys(true)
	if err != nil {
		return nil, err
	}
	n := len(keys)

	start, err := d.endpoint(r.Start, keys, 0)
	if err != nil {
		return nil, err
	}
	stop, err := d.endpoint(r.Stop, keys, n)
	if err != nil {
		return nil, err
	}
	step := r.step()

	var positions []int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		positions = append(positions, i)
	}
	return positions, nil
}

func (d *DirectoryMap) endpoint(k Key, keys []string, def int) (int, error) {
	switch e := k.(type) {
	case nil:
		return def, nil
	case Position:
		if e < 0 {
			return int(e) + len(keys), nil
		}
		return int(e), nil
	case Name:
		i := slices.Index(keys, string(e))
		if i < 0 {
			return 0, fmt.Errorf("%w: range endpoint %q in %s", ErrPathNotFound, string(e), d.path)
		}
		return i, nil
	default:
		return 0, invalidKind(k)
	}
}

// load reads the entry at p: a subdirectory map or the file's text.
func (d *DirectoryMap) load(p string) (Value, error) {
	info, err := d.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
		}
		return nil, err
	}

	switch {
	case info.IsDir():
		return d.child(p), nil
	case info.Mode().IsRegular():
		data, err := d.fs.ReadFile(p)
		if err != nil {
			return nil, err
		}
		return Content(data), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
	}
}

// ReadBytes returns the raw content of the file addressed by key.
func (d *DirectoryMap) ReadBytes(key Key) ([]byte, error) {
	p, err := d.ResolveSubpath(key)
	if err != nil {
		return nil, err
	}
	info, err := d.fs.Stat(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p)
	}
	return d.fs.ReadFile(p)
}

// Set writes value to the file addressed by key, creating it if needed and
// replacing any previous content. A []byte is written verbatim; anything else
// is written as its string form.
func (d *DirectoryMap) Set(key Key, value any) error {
	p, err := d.ResolveSubpath(key)
	if err != nil {
		return err
	}
	data := encodeValue(value)
	d.logger.Verbose("writing %d bytes to %s", len(data), p)
	return d.fs.WriteFile(p, data, DefaultFileMode)
}

func encodeValue(value any) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	case fmt.Stringer:
		return []byte(v.String())
	default:
		return []byte(fmt.Sprint(v))
	}
}

// Delete removes the file addressed by key, or the directory and everything
// below it.
func (d *DirectoryMap) Delete(key Key) error {
	p, err := d.ResolveSubpath(key)
	if err != nil {
		return err
	}

	info, err := d.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, p)
		}
		return err
	}

	switch {
	case info.IsDir():
		d.logger.Verbose("removing directory tree %s", p)
		return d.fs.RemoveAll(p)
	case info.Mode().IsRegular():
		d.logger.Verbose("removing file %s", p)
		return d.fs.Remove(p)
	default:
		return fmt.Errorf("%w: %s", ErrPathNotFound, p)
	}
}

// Contains reports whether key currently addresses an existing entry.
// Keys that cannot be resolved are reported as absent.
func (d *DirectoryMap) Contains(key Key) bool {
	p, err := d.ResolveSubpath(key)
	if err != nil {
		return false
	}
	_, err = d.fs.Stat(p)
	return err == nil
}

// Concat appends suffix to the directory path with no separator.
func (d *DirectoryMap) Concat(suffix string) string {
	return d.path + suffix
}

// SubpathOf joins name onto the directory path without checking that it exists.
func (d *DirectoryMap) SubpathOf(name string) string {
	return filepath.Join(d.path, name)
}

// Equal reports whether both maps are rooted at the same path.
func (d *DirectoryMap) Equal(other *DirectoryMap) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.path == other.path
}

// EqualPath reports whether p, expanded and made absolute, is the map's path.
func (d *DirectoryMap) EqualPath(p string) bool {
	absPath, err := d.fs.Abs(expandHome(p))
	if err != nil {
		return false
	}
	return absPath == d.path
}

// String returns the directory path.
func (d *DirectoryMap) String() string { return d.path }

// GoString tags the path with the type name for %#v.
func (d *DirectoryMap) GoString() string {
	return fmt.Sprintf("dirmap.DirectoryMap(%q)", d.path)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// expandHome resolves a leading "~". Forms homedir cannot expand, such as
// "~user", are kept literally.
func expandHome(p string) string {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return expanded
}

func invalidKind(index Index) error {
	return fmt.Errorf("%w: %T", ErrInvalidIndexKind, index)
}
