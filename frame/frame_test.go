package frame

import (
	"encoding/hex"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/safeunion"
	"github.com/rawbytedev/safeunion/endian"
)

type Span struct{ Start, End uint16 }

func schema(t testing.TB, order endian.Order) *safeunion.Schema {
	t.Helper()
	s, err := safeunion.Define(order, []any{uint32(0), [4]byte{}, Span{}, float32(0)})
	require.NoError(t, err)
	return s
}

type vector struct {
	Name    string `yaml:"name"`
	Order   string `yaml:"order"`
	Tag     int    `yaml:"tag"`
	Payload string `yaml:"payload"`
	Frame   string `yaml:"frame"`
}

func loadVectors(t *testing.T) []vector {
	t.Helper()
	raw, err := os.ReadFile("testdata/frames.yaml")
	require.NoError(t, err)
	var doc struct {
		Vectors []vector `yaml:"vectors"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Vectors)
	return doc.Vectors
}

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestGolden(t *testing.T) {
	for _, v := range loadVectors(t) {
		t.Run(v.Name, func(t *testing.T) {
			order, err := endian.ParseOrder(v.Order)
			require.NoError(t, err)
			s := schema(t, order)
			payload, want := unhex(t, v.Payload), unhex(t, v.Frame)

			u := s.New()
			require.NoError(t, u.LoadWire(v.Tag, payload))
			got, err := Marshal(u)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			back, err := Unmarshal(s, want)
			require.NoError(t, err)
			assert.True(t, back.HoldsIndex(v.Tag))
			assert.Equal(t, payload, back.AppendWire(nil))
		})
	}
}

func TestGoldenValues(t *testing.T) {
	big := schema(t, endian.Big)

	u, err := Unmarshal(big, unhex(t, "554e010100040001020304b4663131"))
	require.NoError(t, err)
	n, err := safeunion.Get[uint32](u)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), n)

	u, err = Unmarshal(big, unhex(t, "554e0101020400010203049d77aea6"))
	require.NoError(t, err)
	sp, err := safeunion.Get[Span](u)
	require.NoError(t, err)
	assert.Equal(t, Span{Start: 0x0102, End: 0x0304}, sp)

	u, err = Unmarshal(big, unhex(t, "554e0101030400402000002546f834"))
	require.NoError(t, err)
	f, err := safeunion.Get[float32](u)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f)
}

func TestRoundTrip(t *testing.T) {
	for _, order := range []endian.Order{endian.Little, endian.Big} {
		s := schema(t, order)
		values := []any{uint32(0xcafef00d), [4]byte{1, 2, 3, 4}, Span{Start: 7, End: 0xff00}, float32(-1.25)}
		for i, v := range values {
			u := s.New()
			require.NoError(t, u.Set(v))
			data, err := Marshal(u)
			require.NoError(t, err)
			assert.Len(t, data, Overhead+s.Size())

			h, err := Peek(data)
			require.NoError(t, err)
			assert.Equal(t, Header{Version: Version, Order: order, Tag: i, Length: s.Size()}, h)
			assert.Equal(t, len(data), h.Size())

			back, err := Unmarshal(s, data)
			require.NoError(t, err, "%v #%d", order, i)
			got, err := back.Value()
			require.NoError(t, err)
			assert.Equal(t, v, got)
			assert.Equal(t, u.Raw(), back.Raw())
		}
	}
}

func TestAppend(t *testing.T) {
	s := schema(t, endian.Big)
	a, _ := safeunion.New(s, uint32(1))
	b, _ := safeunion.New(s, Span{Start: 2, End: 3})

	buf, err := Append(nil, a)
	require.NoError(t, err)
	first := len(buf)
	buf, err = Append(buf, b)
	require.NoError(t, err)

	ua, err := Unmarshal(s, buf[:first])
	require.NoError(t, err)
	ub, err := Unmarshal(s, buf[first:])
	require.NoError(t, err)
	assert.True(t, safeunion.Holds[uint32](ua))
	assert.True(t, safeunion.Holds[Span](ub))
}

func TestMarshalWideSlot(t *testing.T) {
	wide, err := safeunion.Define(endian.Big, []any{[math.MaxUint16 + 1]byte{}})
	require.NoError(t, err)
	u, err := safeunion.New(wide, [math.MaxUint16 + 1]byte{})
	require.NoError(t, err)

	_, err = Marshal(u)
	assert.ErrorIs(t, err, ErrLength)

	buf := []byte{0xaa}
	out, err := Append(buf, u)
	require.ErrorIs(t, err, ErrLength)
	assert.Equal(t, buf, out)
}

func TestUnknownFlagsAreNotVersionErrors(t *testing.T) {
	data := unhex(t, "554e010100040001020304b4663131")
	data[3] |= 0x80
	_, err := Peek(data)
	assert.ErrorIs(t, err, ErrFlags)
	assert.NotErrorIs(t, err, ErrVersion)
}

func TestMarshalEmpty(t *testing.T) {
	_, err := Marshal(schema(t, endian.Little).New())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDecodeErrors(t *testing.T) {
	big := schema(t, endian.Big)
	good := unhex(t, "554e010100040001020304b4663131")

	mutate := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), good...))
	}

	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShort},
		{"header only", good[:headerSize], ErrShort},
		{"truncated crc", good[:len(good)-1], ErrShort},
		{"trailing", append(append([]byte(nil), good...), 0), ErrLength},
		{"magic", mutate(func(b []byte) []byte { b[0] = 'X'; return b }), ErrMagic},
		{"version", mutate(func(b []byte) []byte { b[2] = 9; return b }), ErrVersion},
		{"flags", mutate(func(b []byte) []byte { b[3] = 0x03; return b }), ErrFlags},
		{"crc", mutate(func(b []byte) []byte { b[8] ^= 0xff; return b }), ErrCRC},
		{"order", mutate(func(b []byte) []byte { b[3] = 0; return b }), ErrOrder},
		{"tag", mutate(func(b []byte) []byte { b[4] = 9; return b }), ErrCRC},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Unmarshal(big, c.data)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	wide, err := safeunion.Define(endian.Big, []any{uint64(0)})
	require.NoError(t, err)
	u, _ := safeunion.New(wide, uint64(5))
	data, err := Marshal(u)
	require.NoError(t, err)

	_, err = Unmarshal(schema(t, endian.Big), data)
	assert.ErrorIs(t, err, ErrLength)
}

func TestDecodeBadTag(t *testing.T) {
	narrow, err := safeunion.Define(endian.Big, []any{uint32(0), [4]byte{}, Span{}, float32(0), int32(0)})
	require.NoError(t, err)
	u, _ := safeunion.New(narrow, int32(-1))
	data, err := Marshal(u)
	require.NoError(t, err)

	_, err = Unmarshal(schema(t, endian.Big), data)
	assert.ErrorIs(t, err, safeunion.ErrIndex)
}

func TestDecodeKeepsUnionOnError(t *testing.T) {
	s := schema(t, endian.Big)
	u, _ := safeunion.New(s, uint32(77))
	bad := unhex(t, "554e010100040001020304b4663130")
	require.ErrorIs(t, Decode(u, bad), ErrCRC)
	v, err := safeunion.Get[uint32](u)
	require.NoError(t, err)
	assert.Equal(t, uint32(77), v)
}

func FuzzUnmarshal(f *testing.F) {
	f.Add([]byte("UN\x01\x01\x00\x04\x00\x01\x02\x03\x04\xb4\x66\x31\x31"))
	f.Add([]byte("UN"))
	f.Fuzz(func(t *testing.T, data []byte) {
		s := schema(t, endian.Big)
		u, err := Unmarshal(s, data)
		if err != nil {
			return
		}
		again, err := Marshal(u)
		require.NoError(t, err)
		assert.Equal(t, data, again)
	})
}
