// Package identity derives stable identifiers for directory entries.
package identity

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceEntryIdentity is the UUID v5 namespace for entry identities,
// derived from the URL namespace and a fixed canonical string.
var NamespaceEntryIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dirmap/entry-identity/v1"))

// ForPath returns a deterministic UUID v5 for an entry path.
//
// The path is normalized first, so equivalent spellings map to one ID:
//   - cleaned ("a/./b/../c" becomes "a/c")
//   - forward slashes regardless of host separator
//   - trailing slash dropped
//
// Case is preserved; "README.md" and "readme.md" are different entries.
func ForPath(path string) uuid.UUID {
	return uuid.NewSHA1(NamespaceEntryIdentity, []byte(normalizePath(path)))
}

func normalizePath(path string) string {
	normalized := filepath.ToSlash(filepath.Clean(path))
	if len(normalized) > 1 {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	return normalized
}
