package safeunion

import (
	"fmt"
	"reflect"

	"github.com/rawbytedev/safeunion/endian"
	"github.com/rawbytedev/safeunion/internal/store"
	"github.com/rawbytedev/safeunion/validate"
	"go.uber.org/zap"
)

// Schema is a validated, immutable alternative set with its wire byte
// order. It is safe for concurrent use.
type Schema struct {
	unionMarker

	name  string
	order Order
	mode  Mode
	swaps bool
	size  int
	alts  []validate.Shape
	index map[reflect.Type]int
}

// Define validates the alternatives whose zero values are given in
// samples, in index order, and returns their schema.
func Define(order Order, samples []any, opts ...Option) (*Schema, error) {
	types := make([]reflect.Type, len(samples))
	for i, v := range samples {
		types[i] = reflect.TypeOf(v)
	}
	return DefineTypes(order, types, opts...)
}

// MustDefine is Define for package-level declarations: it panics when the
// alternative set is rejected.
func MustDefine(order Order, samples []any, opts ...Option) *Schema {
	s, err := Define(order, samples, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// DefineTypes is Define for reflect types.
func DefineTypes(order Order, types []reflect.Type, opts ...Option) (*Schema, error) {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	log := o.Logger
	if log == nil {
		log = Logger()
	}
	if o.Name != "" {
		log = log.With(zap.String("schema", o.Name))
	}

	if !order.Valid() {
		log.Debug("schema rejected", zap.Stringer("order", order))
		return nil, fmt.Errorf("%w: %s", ErrOrder, order)
	}
	if o.Mode != PerElement && o.Mode != WholeValue {
		return nil, fmt.Errorf("safeunion: invalid swap mode %s", o.Mode)
	}
	shapes, err := validate.Set(types...)
	if err != nil {
		log.Debug("schema rejected", zap.Error(err))
		return nil, err
	}

	s := &Schema{
		name:  o.Name,
		order: order,
		mode:  o.Mode,
		swaps: order.Swaps(),
		size:  shapes[0].Size,
		alts:  shapes,
		index: make(map[reflect.Type]int, len(shapes)),
	}
	for i, sh := range shapes {
		s.index[sh.Type] = i
	}
	log.Debug("schema defined",
		zap.Stringer("order", order),
		zap.Stringer("native", endian.Native()),
		zap.Stringer("mode", o.Mode),
		zap.Int("size", s.size),
		zap.Int("alternatives", len(shapes)))
	return s, nil
}

// Name returns the label given with WithName.
func (s *Schema) Name() string { return s.name }

// Order returns the declared wire byte order.
func (s *Schema) Order() Order { return s.order }

// Mode returns the composite swap mode.
func (s *Schema) Mode() Mode { return s.mode }

// Swaps reports whether the declared order differs from the host's.
func (s *Schema) Swaps() bool { return s.swaps }

// Size returns the slot width in bytes.
func (s *Schema) Size() int { return s.size }

// Len returns the number of alternatives.
func (s *Schema) Len() int { return len(s.alts) }

// Alternative describes alternative i.
func (s *Schema) Alternative(i int) (validate.Shape, error) {
	if i < 0 || i >= len(s.alts) {
		return validate.Shape{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(s.alts))
	}
	return s.alts[i], nil
}

// IndexOf returns the index of alternative t.
func (s *Schema) IndexOf(t reflect.Type) (int, bool) {
	i, ok := s.index[t]
	return i, ok
}

// New returns an empty union of this schema.
func (s *Schema) New() *Union {
	return &Union{schema: s, data: store.New(s.size)}
}

func (s *Schema) lookup(t reflect.Type) (int, error) {
	i, ok := s.index[t]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotAlternative, t)
	}
	return i, nil
}

func (s *Schema) at(i int, t reflect.Type) error {
	if i < 0 || i >= len(s.alts) {
		return fmt.Errorf("%w: %d of %d", ErrIndex, i, len(s.alts))
	}
	if s.alts[i].Type != t {
		return fmt.Errorf("%w: #%d is %v, got %v", ErrTypeMismatch, i, s.alts[i].Type, t)
	}
	return nil
}
