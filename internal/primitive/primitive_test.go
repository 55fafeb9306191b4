package primitive

import (
	"testing"

	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
	"github.com/stretchr/testify/require"
)

func TestEncodeInteger_SignedFourBit(t *testing.T) {
	out, err := Encode(int64(-3), Options{Size: WithSize(4), Type: segment.Integer, Sign: segment.Signed, Endian: endian.Big})
	require.NoError(t, err)
	require.Equal(t, uint(4), out.Length())
	require.Equal(t, []byte{0b1101_0000}, out.Bytes())
}

func TestIntegerRoundTrip_LittleEndianTwelveBit(t *testing.T) {
	opts := Options{Size: WithSize(12), Type: segment.Integer, Sign: segment.Unsigned, Endian: endian.Little}
	out, err := Encode(uint64(0xABC), opts)
	require.NoError(t, err)
	require.Equal(t, uint(12), out.Length())
	// Low byte (0xBC) precedes the high nibble (0xA).
	require.Equal(t, []byte{0xBC, 0xA0}, out.Bytes())

	val, rest, err := Decode(out, opts)
	require.NoError(t, err)
	require.True(t, rest.IsEmpty())
	require.Equal(t, uint64(0xABC), val)
}

func TestIntegerRoundTrip_SignedBigEndian(t *testing.T) {
	opts := Options{Size: WithSize(8), Type: segment.Integer, Sign: segment.Signed, Endian: endian.Big}
	out, err := Encode(int64(-3), opts)
	require.NoError(t, err)
	val, rest, err := Decode(out, opts)
	require.NoError(t, err)
	require.True(t, rest.IsEmpty())
	require.Equal(t, int64(-3), val)
}

func TestFloatRoundTrip(t *testing.T) {
	for _, size := range []uint{16, 32, 64} {
		opts := Options{Size: WithSize(size), Type: segment.Float, Endian: endian.Big}
		out, err := Encode(3.5, opts)
		require.NoError(t, err)
		require.Equal(t, size, out.Length())
		val, rest, err := Decode(out, opts)
		require.NoError(t, err)
		require.True(t, rest.IsEmpty())
		require.InDelta(t, 3.5, val.(float64), 0.01)
	}
}

func TestEncodeFloat_InvalidSize(t *testing.T) {
	_, err := Encode(1.0, Options{Size: WithSize(24), Type: segment.Float, Endian: endian.Big})
	require.Error(t, err)
	var segErr *segment.Error
	require.ErrorAs(t, err, &segErr)
	require.Equal(t, segment.InvalidSize, segErr.Kind)
}

func TestBinaryAdvisorySizeOnEncode(t *testing.T) {
	out, err := Encode([]byte("hello"), Options{Size: WithSize(2), Type: segment.Binary})
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), out.Bytes())
}

func TestBinaryDecode_ExactUnit(t *testing.T) {
	data := []byte("helloworld")
	val, rest, err := Decode(bits.FromBytes(data), Options{Size: WithSize(5 * 8), Type: segment.Binary})
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), val.(bits.String).Bytes())
	require.Equal(t, []byte("world"), rest.Bytes())
}

func TestArraySignedFourBit(t *testing.T) {
	opts := Options{Type: segment.Array, ElemType: segment.Integer, ElemSize: 4, Sign: segment.Signed, Endian: endian.Big}
	out, err := EncodeArray([]interface{}{1, -1, 2, -2}, opts)
	require.NoError(t, err)
	require.Equal(t, uint(16), out.Length())
	require.Equal(t, []byte{0b0001_1111, 0b0010_1110}, out.Bytes())

	decOpts := opts
	decOpts.Size = WithSize(16)
	val, rest, err := DecodeArray(out, decOpts)
	require.NoError(t, err)
	require.True(t, rest.IsEmpty())
	got := val.([]interface{})
	require.Len(t, got, 4)
	require.EqualValues(t, -1, got[1])
}

func TestArrayZeroSize(t *testing.T) {
	opts := Options{Type: segment.Array, ElemType: segment.Integer, ElemSize: 4, Size: WithSize(0)}
	val, rest, err := DecodeArray(bits.FromBytes([]byte{0xFF}), opts)
	require.NoError(t, err)
	require.Empty(t, val)
	require.Equal(t, uint(8), rest.Length())
}

func TestArrayInvalidSize(t *testing.T) {
	opts := Options{Type: segment.Array, ElemType: segment.Integer, ElemSize: 5, Size: WithSize(12)}
	_, _, err := DecodeArray(bits.FromBytes([]byte{0xFF, 0xFF}), opts)
	require.Error(t, err)
}

func TestUTF8CodepointRoundTrip(t *testing.T) {
	opts := Options{Type: segment.UTF8, UTFAsCodepoint: true}
	out, err := Encode('A', opts)
	require.NoError(t, err)
	val, rest, err := Decode(out, opts)
	require.NoError(t, err)
	require.True(t, rest.IsEmpty())
	require.Equal(t, int('A'), val)
}

func TestUTF8StringWholeInput(t *testing.T) {
	opts := Options{Type: segment.UTF8}
	out, err := Encode("hi", opts)
	require.NoError(t, err)
	val, rest, err := Decode(out, opts)
	require.NoError(t, err)
	require.True(t, rest.IsEmpty())
	require.Equal(t, "hi", val)
}

func TestUTF16LittleEndianCodepoint(t *testing.T) {
	opts := Options{Type: segment.UTF16, Endian: endian.Little, UTFAsCodepoint: true}
	out, err := Encode(0x1F600, opts)
	require.NoError(t, err)
	val, rest, err := Decode(out, opts)
	require.NoError(t, err)
	require.True(t, rest.IsEmpty())
	require.Equal(t, 0x1F600, val)
}
