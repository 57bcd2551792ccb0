package validate

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotPlain reports a pointer, reference-like or pointer-carrying type.
	ErrNotPlain = errors.New("validate: type is not plain")

	// ErrShape reports a type that is none of scalar, array or aggregate.
	ErrShape = errors.New("validate: unsupported shape")

	// ErrEnum reports a defined integer type, treated as an enumeration.
	ErrEnum = errors.New("validate: enumeration types are not allowed")

	// ErrNestedUnion reports an alternative that is itself a tagged union.
	ErrNestedUnion = errors.New("validate: nested union")

	// ErrHeterogeneous reports an aggregate whose fields differ in type.
	ErrHeterogeneous = errors.New("validate: aggregate fields differ in type")

	// ErrZeroSize reports a type that occupies no bytes.
	ErrZeroSize = errors.New("validate: zero-size type")

	// ErrSizeMismatch reports alternatives of different sizes.
	ErrSizeMismatch = errors.New("validate: alternatives differ in size")

	// ErrDuplicate reports the same type listed twice.
	ErrDuplicate = errors.New("validate: duplicate alternative")

	// ErrNoAlternatives reports an empty alternative list.
	ErrNoAlternatives = errors.New("validate: no alternatives")

	// ErrTooMany reports more alternatives than a discriminant can index.
	ErrTooMany = errors.New("validate: too many alternatives")
)

var errPlatformSized = fmt.Errorf("%w: width depends on the target platform", ErrShape)

// Error describes why a type was rejected.
type Error struct {
	Type reflect.Type
	Path string // offending field or element, empty for the type itself
	Err  error
}

func (e *Error) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Path != "" {
		name += " at " + e.Path
	}
	return e.Err.Error() + ": " + name
}

func (e *Error) Unwrap() error { return e.Err }

func reject(t reflect.Type, path string, err error) error {
	return &Error{Type: t, Path: path, Err: err}
}
