package safeunion_test

import (
	"fmt"

	"github.com/rawbytedev/safeunion"
)

type Span struct{ Start, End uint16 }

var reading = safeunion.MustDefine(safeunion.Big, []any{
	uint32(0), float32(0), [4]byte{}, Span{},
}, safeunion.WithName("reading"))

func Example() {
	u, err := safeunion.New(reading, uint32(0x01020304))
	if err != nil {
		panic(err)
	}
	v, _ := safeunion.Get[uint32](u)
	fmt.Printf("%#x\n", v)
	fmt.Printf("% x\n", u.AppendWire(nil))
	fmt.Println(safeunion.Holds[uint32](u), safeunion.Holds[Span](u))
	// Output:
	// 0x1020304
	// 01 02 03 04
	// true false
}

func ExampleGet_reinterpret() {
	u, _ := safeunion.New(reading, Span{Start: 0x0102, End: 0x0304})

	// Span is active; reading it as uint32 reinterprets the payload in the
	// declared byte order instead of failing.
	v, _ := safeunion.Get[uint32](u)
	fmt.Printf("%#x %v\n", v, safeunion.Holds[uint32](u))
	// Output: 0x1020304 false
}

func ExampleUnion_Value() {
	u := reading.New()
	_, err := u.Value()
	fmt.Println(err)

	_ = u.Set(float32(2.5))
	v, _ := u.Value()
	fmt.Printf("%T %v\n", v, v)
	// Output:
	// safeunion: union holds nothing
	// float32 2.5
}
