// Package scanner walks a directory map recursively and describes every
// regular file beneath it.
//
// The scanner is responsible for:
//   - Visiting subdirectories depth-first in key order
//   - Computing raw and normalized checksums of each file
//   - Assigning each file its stable entry ID
//
// Because it reads through *dirmap.DirectoryMap, the scanner works on any
// filesystem the map was opened with, including the in-memory one used
// in tests.
package scanner
