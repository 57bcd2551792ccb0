// Package tag tracks which alternative of a union is active.
package tag

import "strconv"

// Max is the highest number of alternatives a Tag can index.
const Max = 255

// Tag is an optional alternative index. The zero value holds nothing, so
// "empty" can never collide with a real index.
type Tag struct {
	index uint8
	valid bool
}

// None is the empty tag.
var None = Tag{}

// Of returns the tag for alternative i. It panics when i is outside
// [0, Max); schemas never hand out such indices.
func Of(i int) Tag {
	if i < 0 || i >= Max {
		panic("tag: index out of range: " + strconv.Itoa(i))
	}
	return Tag{index: uint8(i), valid: true}
}

// Index returns the active alternative and whether there is one.
func (t Tag) Index() (int, bool) { return int(t.index), t.valid }

// Valid reports whether an alternative is active.
func (t Tag) Valid() bool { return t.valid }

// Is reports whether alternative i is active.
func (t Tag) Is(i int) bool { return t.valid && int(t.index) == i }

func (t Tag) String() string {
	if !t.valid {
		return "none"
	}
	return strconv.Itoa(int(t.index))
}
