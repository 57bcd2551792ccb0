// Package validate decides which Go types may be stored in a tagged union
// slot.
//
// A type is accepted when it is plain and has one of three shapes:
//
//   - a fixed-width scalar: int8..int64, uint8..uint64, float32, float64
//   - a fixed-size array whose element is a scalar or another such array
//   - a flat aggregate: a struct whose fields all have one identical type,
//     itself a scalar or array
//
// Pointers, slices, strings, maps, channels, funcs, interfaces, bool,
// complex and platform-sized integers are rejected. A defined integer type
// (type Color uint8) is treated as an enumeration and rejected; reading
// arbitrary bytes back as an enum constant silently produces values outside
// its declared set. Types that are themselves tagged unions are rejected.
//
// The homogeneous-field rule is what makes byte-order conversion of an
// aggregate a transform on equally sized units: every field has the same
// width and layout, and a struct of identical fields has no padding.
//
// Fields are enumerated with reflection, so there is no limit on the
// number of fields an aggregate may have.
package validate
