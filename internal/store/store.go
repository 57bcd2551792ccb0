// Package store is the raw byte slot behind a tagged union.
//
// A Store knows nothing about which type it holds. Values are copied in
// and out as bit patterns through byte views of a local variable, so the
// buffer needs no particular alignment and no pointer into it is ever
// handed out typed.
package store

import "unsafe"

// Store is a fixed-length byte buffer.
type Store struct {
	buf []byte
}

// New returns a zero-filled store of size bytes.
func New(size int) *Store {
	return &Store{buf: make([]byte, size)}
}

// Len returns the width of the store.
func (s *Store) Len() int { return len(s.buf) }

// Bytes returns the live buffer. Callers inside the module use it to swap
// in place; it must not be retained.
func (s *Store) Bytes() []byte { return s.buf }

// Copy returns an owned copy of the buffer.
func (s *Store) Copy() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Reset zero-fills the buffer.
func (s *Store) Reset() { clear(s.buf) }

// Clone returns an independent store with the same contents.
func (s *Store) Clone() *Store {
	return &Store{buf: s.Copy()}
}

// CopyFrom overwrites s with the contents of src. The widths must match.
func (s *Store) CopyFrom(src *Store) {
	if len(src.buf) != len(s.buf) {
		panic("store: width mismatch")
	}
	copy(s.buf, src.buf)
}

// Write replaces the buffer with b; bytes past len(b) are zeroed.
func (s *Store) Write(b []byte) {
	if len(b) > len(s.buf) {
		panic("store: value wider than store")
	}
	n := copy(s.buf, b)
	clear(s.buf[n:])
}

// View returns the bytes of *p as a slice aliasing p.
func View[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

