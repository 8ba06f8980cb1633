// Package logging implements dirmap.Logger for the command line.
//
// ConsoleLogger prints to stderr (or any writer) and styles its prefixes on
// terminals. NullLogger drops everything and is what a DirectoryMap uses when
// no logger is given. Both may be shared between goroutines.
package logging
