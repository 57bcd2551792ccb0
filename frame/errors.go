package frame

import "errors"

var (
	ErrShort   = errors.New("frame: too short")
	ErrMagic   = errors.New("frame: bad magic")
	ErrVersion = errors.New("frame: unsupported version")
	ErrFlags   = errors.New("frame: unknown flags")
	ErrCRC     = errors.New("frame: crc mismatch")
	ErrOrder   = errors.New("frame: byte order does not match schema")
	ErrLength  = errors.New("frame: length mismatch")
	ErrEmpty   = errors.New("frame: union holds nothing")
)
