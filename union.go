package safeunion

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/rawbytedev/safeunion/endian"
	"github.com/rawbytedev/safeunion/internal/store"
	"github.com/rawbytedev/safeunion/internal/tag"
	"github.com/rawbytedev/safeunion/validate"
)

// unionMarker keeps unions out of other unions' alternative sets.
type unionMarker = validate.UnionMarker

// noCopy lets go vet's copylocks check flag Union values copied by
// assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Union holds one value of one of its schema's alternatives. Create it
// with Schema.New or New; the zero Union is not usable.
type Union struct {
	noCopy noCopy
	unionMarker

	schema *Schema
	tag    tag.Tag
	data   *store.Store
}

// Schema returns the union's schema.
func (u *Union) Schema() *Schema { return u.schema }

// HoldsAnything reports whether a value was ever stored since creation or
// the last Reset.
func (u *Union) HoldsAnything() bool { return u.tag.Valid() }

// HoldsIndex reports whether alternative i is active.
func (u *Union) HoldsIndex(i int) bool { return u.tag.Is(i) }

// Index returns the active alternative.
func (u *Union) Index() (int, bool) { return u.tag.Index() }

// Set stores v, which must be of one of the schema's alternative types.
func (u *Union) Set(v any) error {
	t := reflect.TypeOf(v)
	i, err := u.schema.lookup(t)
	if err != nil {
		return err
	}
	u.put(i, valueBytes(v, t))
	return nil
}

// SetIndex stores v as alternative i. v's type must be that alternative.
func (u *Union) SetIndex(i int, v any) error {
	t := reflect.TypeOf(v)
	if err := u.schema.at(i, t); err != nil {
		return err
	}
	u.put(i, valueBytes(v, t))
	return nil
}

// GetIndex returns the slot read as alternative i. If i is not the active
// alternative the bytes are reinterpreted, not converted.
func (u *Union) GetIndex(i int) (any, error) {
	alt, err := u.schema.Alternative(i)
	if err != nil {
		return nil, err
	}
	p := reflect.New(alt.Type)
	u.load(i, unsafe.Slice((*byte)(p.UnsafePointer()), alt.Size))
	return p.Elem().Interface(), nil
}

// Value returns the active value.
func (u *Union) Value() (any, error) {
	i, ok := u.tag.Index()
	if !ok {
		return nil, ErrEmpty
	}
	return u.GetIndex(i)
}

// Raw returns a copy of the slot exactly as stored.
func (u *Union) Raw() []byte { return u.data.Copy() }

// AppendWire appends the payload in the declared wire order to dst. The
// discriminant is not included.
func (u *Union) AppendWire(dst []byte) []byte {
	start := len(dst)
	dst = append(dst, u.data.Bytes()...)
	if u.schema.swaps {
		u.toWire(dst[start:])
	}
	return dst
}

// LoadWire stores payload, given in the declared wire order, as
// alternative i. It is the inverse of AppendWire.
func (u *Union) LoadWire(i int, payload []byte) error {
	alt, err := u.schema.Alternative(i)
	if err != nil {
		return err
	}
	if len(payload) != u.schema.size {
		return fmt.Errorf("%w: got %d, want %d", ErrPayloadSize, len(payload), u.schema.size)
	}
	u.tag = tag.Of(i)
	u.data.Write(payload)
	if u.schema.swaps && !alt.Composite() {
		endian.SwapUnits(u.data.Bytes(), alt.Unit)
	}
	return nil
}

// Clone returns an independent copy of u.
func (u *Union) Clone() *Union {
	return &Union{schema: u.schema, tag: u.tag, data: u.data.Clone()}
}

// Assign makes u a copy of src. Both must share one schema.
func (u *Union) Assign(src *Union) error {
	if u.schema != src.schema {
		return ErrSchema
	}
	u.tag = src.tag
	u.data.CopyFrom(src.data)
	return nil
}

// Reset empties the union and zeroes the slot.
func (u *Union) Reset() {
	u.tag = tag.None
	u.data.Reset()
}

func (u *Union) String() string {
	i, ok := u.tag.Index()
	if !ok {
		return "safeunion.Union(<empty>)"
	}
	v, _ := u.GetIndex(i)
	return fmt.Sprintf("safeunion.Union(#%d %v: %v)", i, u.schema.alts[i].Type, v)
}

// put stores raw, the native bit pattern of alternative i.
func (u *Union) put(i int, raw []byte) {
	alt := u.schema.alts[i]
	u.tag = tag.Of(i)
	u.data.Write(raw)
	if u.schema.swaps && alt.Composite() {
		u.schema.mode.Apply(u.data.Bytes(), alt.Unit)
	}
}

// load copies alternative i into dst as its native bit pattern. A read of
// any alternative but the active scalar decodes the wire image, so the
// result is the same on every host.
func (u *Union) load(i int, dst []byte) {
	copy(dst, u.data.Bytes())
	if !u.schema.swaps {
		return
	}
	alt := u.schema.alts[i]
	if u.tag.Is(i) && !alt.Composite() {
		return
	}
	u.toWire(dst)
	if alt.Composite() {
		u.schema.mode.Apply(dst, alt.Unit)
		return
	}
	endian.SwapUnits(dst, alt.Unit)
}

// toWire turns b, a copy of the slot, into the declared wire order. Only
// an active scalar is held natively; composites already are wire order.
func (u *Union) toWire(b []byte) {
	if i, ok := u.tag.Index(); ok {
		if alt := u.schema.alts[i]; !alt.Composite() {
			endian.SwapUnits(b, alt.Unit)
		}
	}
}

// valueBytes returns the bit pattern of v, whose dynamic type is t.
func valueBytes(v any, t reflect.Type) []byte {
	p := reflect.New(t)
	p.Elem().Set(reflect.ValueOf(v))
	return unsafe.Slice((*byte)(p.UnsafePointer()), t.Size())
}
