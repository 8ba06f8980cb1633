package dirmap

import "fmt"

// Index is a closed sum type describing what to look up in a DirectoryMap.
//
// Variants:
//   - Name: an entry name, joined onto the directory path
//   - Position: a position in the sorted listing, negative counts from the end
//   - KeyList: several keys resolved in order
//   - Range: a start/stop/step span over positions
type Index interface {
	isIndex()
}

// Key is a simple Index that resolves to exactly one path: a Name or a Position.
type Key interface {
	Index
	isKey()
}

// Name addresses an entry by its name. A leading "~" is expanded to the
// user's home directory; an absolute name replaces the directory path.
type Name string

// Position addresses an entry by its place in the sorted listing, hidden
// entries included.
type Position int

// KeyList addresses several entries, resolved one after the other.
type KeyList []Key

// Range addresses the positions start, start+step, ... up to but excluding
// stop. A nil Start means 0, a nil Stop means the directory length and a zero
// Step means 1. Endpoints given as a Name resolve to that name's position.
type Range struct {
	Start Key
	Stop  Key
	Step  int
}

func (Name) isIndex()     {}
func (Position) isIndex() {}
func (KeyList) isIndex()  {}
func (Range) isIndex()    {}

func (Name) isKey()     {}
func (Position) isKey() {}

func (n Name) String() string     { return string(n) }
func (p Position) String() string { return fmt.Sprintf("#%d", int(p)) }

func (r Range) String() string {
	return fmt.Sprintf("%s:%s:%d", endpointString(r.Start), endpointString(r.Stop), r.step())
}

func (r Range) step() int {
	if r.Step == 0 {
		return 1
	}
	return r.Step
}

func endpointString(k Key) string {
	if k == nil {
		return ""
	}
	return fmt.Sprint(k)
}
