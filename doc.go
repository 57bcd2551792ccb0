// Package safeunion provides a byte-order-safe tagged union: one fixed-size
// slot that holds a value of exactly one type out of a closed, ordered set
// of plain alternatives, remembers which one, and normalizes the stored
// bytes between a declared wire byte order and the host's native order.
//
// # Defining a union
//
// The alternative set and byte order are fixed once, when the schema is
// defined, and validated by package validate:
//
//	type Pair struct{ Lo, Hi uint32 }
//
//	var Word = safeunion.MustDefine(safeunion.Big, []any{
//		uint64(0), float64(0), [8]byte{}, Pair{},
//	})
//
// MustDefine panics on a rejected set, so a bad declaration fails when the
// program (or any of its tests) starts. Every alternative must have the
// same size.
//
// # Reading and writing
//
//	u, _ := safeunion.New(Word, uint64(42))
//	v, _ := safeunion.Get[uint64](u)
//	safeunion.Holds[Pair](u) // false
//
// Asking for a type or index outside the schema returns ErrNotAlternative
// or ErrIndex. Asking for an alternative that is not the active one is NOT
// an error: the stored bytes are reinterpreted as the requested type. Check
// Holds or HoldsIndex first whenever such a reinterpretation would be
// unsafe for your use.
//
// # Byte order
//
// When the declared order differs from the host's:
//
//   - scalars are stored in native order; reading the resident scalar
//     as itself never swaps
//   - arrays and aggregates are stored in wire order: swapped on every
//     write and swapped back on every read, per Mode (PerElement keeps
//     field order, WholeValue reverses the full byte sequence)
//   - reading any other alternative decodes the wire image, the bytes
//     AppendWire would emit, so a reinterpretation gives the same value
//     on every host
//
// When the orders match nothing is ever swapped. AppendWire always emits
// the payload in declared wire order; the discriminant is not part of the
// payload and must be carried separately (package frame does this).
//
// # Concurrency
//
// A Schema is immutable and safe for concurrent use. A Union is not: guard
// any sequence of Set/Get/Holds that must observe a consistent tag and
// payload with a mutex. Unions must not be copied by value; use Clone or
// Assign.
package safeunion
