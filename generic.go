package safeunion

import (
	"reflect"

	"github.com/rawbytedev/safeunion/internal/store"
)

// New returns a union of schema s holding v.
func New[T any](s *Schema, v T) (*Union, error) {
	u := s.New()
	if err := Set(u, v); err != nil {
		return nil, err
	}
	return u, nil
}

// Set stores v in u. T must be one of u's alternatives.
func Set[T any](u *Union, v T) error {
	i, err := u.schema.lookup(reflect.TypeFor[T]())
	if err != nil {
		return err
	}
	u.put(i, store.View(&v))
	return nil
}

// Get reads u as T. T must be one of u's alternatives; it need not be the
// active one, in which case the bytes are reinterpreted. Use Holds to tell
// the two apart.
func Get[T any](u *Union) (T, error) {
	var v T
	i, err := u.schema.lookup(reflect.TypeFor[T]())
	if err != nil {
		return v, err
	}
	u.load(i, store.View(&v))
	return v, nil
}

// Holds reports whether T is the active alternative of u.
func Holds[T any](u *Union) bool {
	i, ok := u.schema.index[reflect.TypeFor[T]()]
	return ok && u.tag.Is(i)
}

// SetAt stores v as alternative i, which must be of type T.
func SetAt[T any](u *Union, i int, v T) error {
	if err := u.schema.at(i, reflect.TypeFor[T]()); err != nil {
		return err
	}
	u.put(i, store.View(&v))
	return nil
}

// GetAt reads alternative i, which must be of type T.
func GetAt[T any](u *Union, i int) (T, error) {
	var v T
	if err := u.schema.at(i, reflect.TypeFor[T]()); err != nil {
		return v, err
	}
	u.load(i, store.View(&v))
	return v, nil
}
