// Package filesystem provides the storage backends a DirectoryMap runs on.
//
// Both providers satisfy dirmap.FileSystem and report missing entries with
// errors that match fs.ErrNotExist, so callers can treat them alike.
//
// Implementations:
//   - OSFileSystem: Production implementation using the host filesystem
//   - MemoryFileSystem: In-memory tree for testing
package filesystem
