package endian

import (
	"encoding/binary"
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Fixed is the set of scalar types with a byte width of 1, 2, 4 or 8.
// Platform-sized integers are not members, so Scalar cannot be
// instantiated with a width it has no swap for.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		constraints.Float
}

// Swap16 reverses the bytes of v.
func Swap16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// Swap32 reverses the bytes of v.
func Swap32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// Swap64 reverses the bytes of v.
func Swap64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// SwapFloat32 reverses the bytes of the IEEE-754 encoding of v.
func SwapFloat32(v float32) float32 {
	return math.Float32frombits(bits.ReverseBytes32(math.Float32bits(v)))
}

// SwapFloat64 reverses the bytes of the IEEE-754 encoding of v.
func SwapFloat64(v float64) float64 {
	return math.Float64frombits(bits.ReverseBytes64(math.Float64bits(v)))
}

// Scalar reverses the byte order of v. One-byte values are returned as is.
func Scalar[T Fixed](v T) T {
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		u := *(*uint16)(unsafe.Pointer(&v))
		u = bits.ReverseBytes16(u)
		return *(*T)(unsafe.Pointer(&u))
	case 4:
		u := *(*uint32)(unsafe.Pointer(&v))
		u = bits.ReverseBytes32(u)
		return *(*T)(unsafe.Pointer(&u))
	default:
		u := *(*uint64)(unsafe.Pointer(&v))
		u = bits.ReverseBytes64(u)
		return *(*T)(unsafe.Pointer(&u))
	}
}

// ToWire converts a native value to order o.
func ToWire[T Fixed](o Order, v T) T {
	if !o.Swaps() {
		return v
	}
	return Scalar(v)
}

// FromWire converts a value read in order o to native order.
func FromWire[T Fixed](o Order, v T) T { return ToWire(o, v) }

// ReverseBytes reverses b in place as one block.
func ReverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// SwapUnits reverses every unit-wide group of b in place, keeping the
// groups in their original order. unit must be 1, 2, 4 or 8 and divide
// len(b); a unit of 1 leaves b untouched.
func SwapUnits(b []byte, unit int) {
	if len(b)%unit != 0 {
		panic("endian: unit does not divide buffer")
	}
	// The unit loads go through LittleEndian only to get the bytes into a
	// register; reversing and storing with the same order swaps them.
	le := binary.LittleEndian
	switch unit {
	case 1:
	case 2:
		for i := 0; i < len(b); i += 2 {
			le.PutUint16(b[i:], bits.ReverseBytes16(le.Uint16(b[i:])))
		}
	case 4:
		for i := 0; i < len(b); i += 4 {
			le.PutUint32(b[i:], bits.ReverseBytes32(le.Uint32(b[i:])))
		}
	case 8:
		for i := 0; i < len(b); i += 8 {
			le.PutUint64(b[i:], bits.ReverseBytes64(le.Uint64(b[i:])))
		}
	default:
		panic("endian: unsupported unit width")
	}
}
