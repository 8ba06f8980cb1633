package scanner

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/dirmap/internal/checksum"
	"github.com/vvka-141/dirmap/internal/identity"
	"github.com/vvka-141/dirmap/pkg/dirmap"
)

// Entry describes one regular file found beneath the scanned directory.
type Entry struct {
	Path        string // "./"-prefixed and slash-separated, relative to the scan root
	Depth       int    // number of directories between the scan root and the file
	Checksum    string // checksum of the normalized content
	ChecksumRaw string
	ID          uuid.UUID
}

// Key returns the entry path without the leading "./".
func (e Entry) Key() string {
	return strings.TrimPrefix(e.Path, "./")
}

// Result holds the files found by a scan in walk order.
type Result struct {
	Files []Entry
}

// Scanner discovers files beneath a directory map.
// Scanner is safe for concurrent use as long as the calculator is.
type Scanner struct {
	calculator checksum.Calculator
	showHidden bool
}

// NewScanner creates a scanner using calculator for checksums. Entries whose
// names start with "." are visited only when showHidden is true.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator, showHidden bool) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{calculator: calculator, showHidden: showHidden}
}

// ScanDirectory recursively scans root. Directories are visited in place of
// their key, so the result is ordered like a depth-first listing.
func (s *Scanner) ScanDirectory(root *dirmap.DirectoryMap) (Result, error) {
	var files []Entry
	if err := s.walk(root, ".", &files); err != nil {
		return Result{}, err
	}
	return Result{Files: files}, nil
}

func (s *Scanner) walk(d *dirmap.DirectoryMap, rel string, files *[]Entry) error {
	for item, err := range d.Items(s.showHidden) {
		relPath := path.Join(rel, item.Key)
		if err != nil {
			return fmt.Errorf("error walking %s: %w", relPath, err)
		}

		switch v := item.Value.(type) {
		case *dirmap.DirectoryMap:
			if err := s.walk(v, relPath, files); err != nil {
				return err
			}
		case dirmap.Content:
			*files = append(*files, s.processFile(d.SubpathOf(item.Key), relPath, []byte(v)))
		}
	}
	return nil
}

// processFile builds the entry for a file at absPath, relPath below the root.
func (s *Scanner) processFile(absPath, relPath string, content []byte) Entry {
	// e.g. "./a" = 0, "./docs/a" = 1, "./docs/api/a" = 2
	return Entry{
		Path:        "./" + relPath,
		Depth:       strings.Count(relPath, "/"),
		Checksum:    s.calculator.CalculateNormalized(content),
		ChecksumRaw: s.calculator.CalculateRaw(content),
		ID:          identity.ForPath(absPath),
	}
}
