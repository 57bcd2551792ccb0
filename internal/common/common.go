// Package common holds the fixed-width kind table shared by the validator
// and the byte-order codec.
package common

import "reflect"

// IsScalarKind reports whether k is a fixed-width numeric kind that may be
// stored in a union slot. Platform-sized integers, bool and complex kinds
// are excluded.
func IsScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsIntegerKind reports whether k is a fixed-width integer kind.
func IsIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// ScalarSize returns the byte width for scalar kinds, or -1.
func ScalarSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// IsPlatformSized reports whether k changes width between ports.
func IsPlatformSized(k reflect.Kind) bool {
	return k == reflect.Int || k == reflect.Uint || k == reflect.Uintptr
}
