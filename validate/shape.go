package validate

import (
	"fmt"
	"reflect"
)

// Class is the shape of an accepted type.
type Class uint8

const (
	Scalar Class = iota + 1
	Array
	Aggregate
)

func (c Class) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case Array:
		return "array"
	case Aggregate:
		return "aggregate"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Shape describes a type accepted as a union alternative.
type Shape struct {
	Type  reflect.Type
	Class Class
	// Size is the byte width of the type.
	Size int
	// Unit is the width of the innermost scalar: the granularity of a
	// per-element byte swap.
	Unit int
	// Fields is the field count of an aggregate or the length of an
	// array; 1 for scalars.
	Fields int
}

// Composite reports whether the shape is an array or an aggregate.
func (s Shape) Composite() bool { return s.Class == Array || s.Class == Aggregate }

func (s Shape) String() string {
	return fmt.Sprintf("%s %s (%d bytes, unit %d)", s.Class, s.Type, s.Size, s.Unit)
}
