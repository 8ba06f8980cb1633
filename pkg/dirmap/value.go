package dirmap

// Value is the result of a read: Content for a regular file, *DirectoryMap
// for a subdirectory and List for a composite index.
type Value interface {
	isValue()
}

// Content is the full text of a regular file.
type Content string

// List holds the results of a KeyList or Range lookup in index order.
type List []Value

func (Content) isValue()       {}
func (List) isValue()          {}
func (*DirectoryMap) isValue() {}

func (c Content) String() string { return string(c) }

// Item is a single (key, value) pair produced by Items.
type Item struct {
	Key   string
	Value Value
}
