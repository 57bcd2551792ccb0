package validate

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/rawbytedev/safeunion/internal/common"
)

// MaxAlternatives is the largest alternative set a one-byte discriminant
// can index.
const MaxAlternatives = 255

// UnionMarker is embedded by tagged union types. A type embedding it is
// never accepted as an alternative of another union.
type UnionMarker struct{}

func (UnionMarker) isTaggedUnion() {}

type unioner interface {
	isTaggedUnion()
}

var unionerType = reflect.TypeFor[unioner]()

type checker struct {
	mu    sync.RWMutex
	cache map[reflect.Type]result
}

type result struct {
	shape Shape
	err   error
}

var shared = &checker{cache: make(map[reflect.Type]result)}

// Check reports whether t may be a union alternative and describes it.
// Results are cached per type; Check is safe for concurrent use.
func Check(t reflect.Type) (Shape, error) {
	if t == nil {
		return Shape{}, reject(nil, "", ErrShape)
	}
	return shared.check(t)
}

// TypeOf is Check for a type parameter.
func TypeOf[T any]() (Shape, error) {
	return Check(reflect.TypeFor[T]())
}

func (c *checker) check(t reflect.Type) (Shape, error) {
	c.mu.RLock()
	if r, ok := c.cache[t]; ok {
		c.mu.RUnlock()
		return r.shape, r.err
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check
	if r, ok := c.cache[t]; ok {
		return r.shape, r.err
	}
	s, err := alternative(t)
	c.cache[t] = result{shape: s, err: err}
	return s, err
}

// alternative applies the type-level predicates: nesting, plainness, shape
// and, for structs, the field rules.
func alternative(t reflect.Type) (Shape, error) {
	if isUnion(t) {
		return Shape{}, reject(t, "", ErrNestedUnion)
	}
	if t.Kind() == reflect.Struct {
		return aggregate(t)
	}
	return field(t, "")
}

// Field applies the field validator: t must be a plain scalar or a
// fixed-size array of one.
func Field(t reflect.Type) (Shape, error) {
	if t == nil {
		return Shape{}, reject(nil, "", ErrShape)
	}
	return field(t, "")
}

func field(t reflect.Type, path string) (Shape, error) {
	k := t.Kind()
	switch {
	case common.IsScalarKind(k):
		if common.IsIntegerKind(k) && t.PkgPath() != "" {
			return Shape{}, reject(t, path, ErrEnum)
		}
		n := common.ScalarSize(k)
		return Shape{Type: t, Class: Scalar, Size: n, Unit: n, Fields: 1}, nil
	case k == reflect.Array:
		if t.Len() == 0 {
			return Shape{}, reject(t, path, ErrZeroSize)
		}
		elem, err := field(t.Elem(), path+"[]")
		if err != nil {
			return Shape{}, err
		}
		return Shape{
			Type:   t,
			Class:  Array,
			Size:   int(t.Size()),
			Unit:   elem.Unit,
			Fields: t.Len(),
		}, nil
	case notPlain(k):
		return Shape{}, reject(t, path, ErrNotPlain)
	case common.IsPlatformSized(k):
		return Shape{}, reject(t, path, errPlatformSized)
	default:
		return Shape{}, reject(t, path, ErrShape)
	}
}

func aggregate(t reflect.Type) (Shape, error) {
	n := t.NumField()
	if n == 0 || t.Size() == 0 {
		return Shape{}, reject(t, "", ErrZeroSize)
	}
	first := t.Field(0)
	fs, err := field(first.Type, t.Name()+"."+first.Name)
	if err != nil {
		return Shape{}, err
	}
	for i := 1; i < n; i++ {
		sf := t.Field(i)
		path := t.Name() + "." + sf.Name
		if _, err := field(sf.Type, path); err != nil {
			return Shape{}, err
		}
		if sf.Type != first.Type {
			return Shape{}, reject(t, path, ErrHeterogeneous)
		}
	}
	return Shape{
		Type:   t,
		Class:  Aggregate,
		Size:   int(t.Size()),
		Unit:   fs.Unit,
		Fields: n,
	}, nil
}

// Set validates an ordered alternative list: every type individually, no
// duplicates, 1..MaxAlternatives entries and one common size.
func Set(types ...reflect.Type) ([]Shape, error) {
	if len(types) == 0 {
		return nil, reject(nil, "", ErrNoAlternatives)
	}
	if len(types) > MaxAlternatives {
		return nil, reject(types[MaxAlternatives], "#"+strconv.Itoa(MaxAlternatives), ErrTooMany)
	}
	shapes := make([]Shape, 0, len(types))
	seen := make(map[reflect.Type]int, len(types))
	for i, t := range types {
		s, err := Check(t)
		if err != nil {
			return nil, err
		}
		if j, dup := seen[t]; dup {
			return nil, reject(t, "#"+strconv.Itoa(j)+" and #"+strconv.Itoa(i), ErrDuplicate)
		}
		seen[t] = i
		if i > 0 && s.Size != shapes[0].Size {
			return nil, reject(t, "#"+strconv.Itoa(i)+" is "+strconv.Itoa(s.Size)+
				" bytes, #0 is "+strconv.Itoa(shapes[0].Size), ErrSizeMismatch)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

func isUnion(t reflect.Type) bool {
	return t.Implements(unionerType) || reflect.PointerTo(t).Implements(unionerType)
}

func notPlain(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.String:
		return true
	default:
		return false
	}
}
