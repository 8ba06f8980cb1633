// Package dirmap exposes a filesystem directory as a keyed, ordered, mutable
// container.
//
// A DirectoryMap is rooted at one directory. Keys address its immediate
// entries either by name or by position in the sorted listing, and composite
// keys (lists and ranges) address several entries at once:
//
//	d, err := dirmap.New("~/project")
//	v, err := d.Get(dirmap.Name("README.md"))   // Content
//	v, err = d.Get(dirmap.Position(0))          // first entry, file or directory
//	v, err = d.Get(dirmap.Range{Stop: dirmap.Position(2)})
//
// Reads return a Value: Content for regular files, *DirectoryMap for
// subdirectories and List for composite keys. Callers type-switch on it.
//
// Nothing is cached. Every call lists or reads the filesystem again, so
// concurrent modification of the directory between calls is visible and may
// surface as ErrPathNotFound.
package dirmap
