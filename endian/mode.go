package endian

import (
	"fmt"
	"strings"
)

// Mode selects how composite values are swapped.
type Mode uint8

const (
	// PerElement reverses each scalar unit and keeps field and element
	// order. This is what most wire formats expect.
	PerElement Mode = iota
	// WholeValue reverses the full byte sequence of the value, which also
	// reverses field and element order.
	WholeValue
)

func (m Mode) String() string {
	switch m {
	case PerElement:
		return "per-element"
	case WholeValue:
		return "whole-value"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Apply swaps the composite held in b whose innermost scalar is unit
// bytes wide.
func (m Mode) Apply(b []byte, unit int) {
	if m == WholeValue {
		ReverseBytes(b)
		return
	}
	SwapUnits(b, unit)
}

// ParseMode accepts the names printed by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per-element", "element", "":
		return PerElement, nil
	case "whole-value", "whole":
		return WholeValue, nil
	default:
		return 0, fmt.Errorf("endian: unknown swap mode %q", s)
	}
}
