package safeunion

import "errors"

var (
	// ErrNotAlternative reports a type that is not part of the schema.
	ErrNotAlternative = errors.New("safeunion: not an alternative")

	// ErrIndex reports an alternative index outside the schema.
	ErrIndex = errors.New("safeunion: alternative index out of range")

	// ErrTypeMismatch reports a value whose type is not the alternative at
	// the requested index.
	ErrTypeMismatch = errors.New("safeunion: value type does not match alternative")

	// ErrSchema reports an operation between unions of different schemas.
	ErrSchema = errors.New("safeunion: schema mismatch")

	// ErrEmpty reports a read of the active value of an empty union.
	ErrEmpty = errors.New("safeunion: union holds nothing")

	// ErrPayloadSize reports a wire payload whose length is not the slot size.
	ErrPayloadSize = errors.New("safeunion: payload size mismatch")

	// ErrOrder reports a byte order other than Little or Big.
	ErrOrder = errors.New("safeunion: invalid byte order")
)
