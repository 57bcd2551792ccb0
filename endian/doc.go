// Package endian converts values between a declared wire byte order and
// the host's native order.
//
// Scalars are swapped with math/bits byte reversal, which the compiler
// lowers to a single BSWAP/REV instruction on the common ports. Floats are
// reinterpreted as same-width unsigned integers before the swap and back
// afterwards; a float is never swapped through a pointer cast.
//
// Composite values (fixed-size arrays and flat structs whose fields share
// one type) are swapped on their raw bytes in one of two modes:
//
//	PerElement  01 02 | 03 04  ->  02 01 | 04 03   element order kept
//	WholeValue  01 02 | 03 04  ->  04 03 | 02 01   element order reversed
//
// A single byte has no byte order: swapping a 1-byte value, or a composite
// of 1-byte units in PerElement mode, is the identity.
package endian
