package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Order is a byte order a union presents on the wire.
type Order uint8

const (
	Little Order = iota
	Big
)

var native = func() Order {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x02}) == 0x0102 {
		return Big
	}
	return Little
}()

// Native returns the byte order of the running host.
func Native() Order { return native }

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// Valid reports whether o is Little or Big.
func (o Order) Valid() bool { return o == Little || o == Big }

// Swaps reports whether values must be byte-swapped to move between o and
// the host's native order.
func (o Order) Swaps() bool { return o != native }

// BinaryOrder is the encoding/binary view of an Order.
type BinaryOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Binary returns the encoding/binary implementation of o.
func (o Order) Binary() BinaryOrder {
	if o == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseOrder accepts "little"/"le" and "big"/"be" (any case), and "native".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le", "little-endian":
		return Little, nil
	case "big", "be", "big-endian":
		return Big, nil
	case "native":
		return native, nil
	default:
		return 0, fmt.Errorf("endian: unknown byte order %q", s)
	}
}
