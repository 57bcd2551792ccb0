// Package frame wraps a union in a self-describing envelope that carries
// the discriminant next to the payload.
//
// Layout:
//
//	0..1   magic "UN"
//	2      version
//	3      flags (bit 0: big-endian payload)
//	4      tag
//	5..6   payload length, little-endian
//	7..    payload in the declared wire order
//	last 4 CRC-32 (IEEE) over bytes 2 through the end of the payload
package frame

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/rawbytedev/safeunion"
	"github.com/rawbytedev/safeunion/endian"
)

const (
	Magic0  byte = 'U'
	Magic1  byte = 'N'
	Version byte = 1

	FlagBigEndian byte = 1 << 0

	headerSize = 7
	crcSize    = 4

	// Overhead is the number of bytes a frame adds to its payload.
	Overhead = headerSize + crcSize
)

// Header is the fixed prefix of a frame.
type Header struct {
	Version byte
	Order   endian.Order
	Tag     int
	Length  int
}

// Size returns the full frame size described by h.
func (h Header) Size() int { return headerSize + h.Length + crcSize }

// Marshal returns u framed.
func Marshal(u *safeunion.Union) ([]byte, error) {
	return Append(make([]byte, 0, Overhead+u.Schema().Size()), u)
}

// Append appends u framed to dst.
func Append(dst []byte, u *safeunion.Union) ([]byte, error) {
	i, ok := u.Index()
	if !ok {
		return dst, ErrEmpty
	}
	s := u.Schema()
	if s.Size() > math.MaxUint16 {
		return dst, fmt.Errorf("%w: %d-byte slot exceeds %d", ErrLength, s.Size(), math.MaxUint16)
	}
	var flags byte
	if s.Order() == endian.Big {
		flags |= FlagBigEndian
	}

	start := len(dst)
	dst = append(dst, Magic0, Magic1, Version, flags, byte(i))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(s.Size()))
	dst = u.AppendWire(dst)

	crc := crc32.ChecksumIEEE(dst[start+2:])
	return binary.LittleEndian.AppendUint32(dst, crc), nil
}

// Peek decodes the header of data without checking the payload or CRC.
func Peek(data []byte) (Header, error) {
	var h Header
	if len(data) < headerSize {
		return h, ErrShort
	}
	if data[0] != Magic0 || data[1] != Magic1 {
		return h, ErrMagic
	}
	if data[2] != Version {
		return h, fmt.Errorf("%w: %d", ErrVersion, data[2])
	}
	if data[3]&^FlagBigEndian != 0 {
		return h, fmt.Errorf("%w: %#x", ErrFlags, data[3])
	}
	h.Version = data[2]
	h.Order = endian.Little
	if data[3]&FlagBigEndian != 0 {
		h.Order = endian.Big
	}
	h.Tag = int(data[4])
	h.Length = int(binary.LittleEndian.Uint16(data[5:]))
	return h, nil
}

// Unmarshal decodes a frame into a new union of schema s.
func Unmarshal(s *safeunion.Schema, data []byte) (*safeunion.Union, error) {
	u := s.New()
	if err := Decode(u, data); err != nil {
		return nil, err
	}
	return u, nil
}

// Decode decodes a frame into u, replacing its contents. u is left
// unchanged on error.
func Decode(u *safeunion.Union, data []byte) error {
	h, err := Peek(data)
	if err != nil {
		return err
	}
	if len(data) < h.Size() {
		return ErrShort
	}
	if len(data) > h.Size() {
		return fmt.Errorf("%w: %d trailing bytes", ErrLength, len(data)-h.Size())
	}
	s := u.Schema()
	if h.Order != s.Order() {
		return fmt.Errorf("%w: frame is %v, schema is %v", ErrOrder, h.Order, s.Order())
	}
	if h.Length != s.Size() {
		return fmt.Errorf("%w: payload is %d bytes, schema slot is %d", ErrLength, h.Length, s.Size())
	}

	end := headerSize + h.Length
	want := binary.LittleEndian.Uint32(data[end:])
	if crc32.ChecksumIEEE(data[2:end]) != want {
		return ErrCRC
	}
	return u.LoadWire(h.Tag, data[headerSize:end])
}
