package bitcraft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountOnes(t *testing.T) {
	cases := map[uint64]uint{0: 0, 1: 1, 3: 2, 15: 4, 255: 8}
	for in, want := range cases {
		require.Equal(t, want, CountOnes(in))
	}
}

func TestPrimitiveRoundTripViaFacade(t *testing.T) {
	out, err := EncodePrimitive(int64(-3), Options{Size: WithSize(4), Type: Integer, Sign: Signed, Endian: Big})
	require.NoError(t, err)
	require.Equal(t, []byte{0xD0}, out.Bytes())

	val, rest, err := DecodePrimitive(out, Options{Size: WithSize(4), Type: Integer, Sign: Signed, Endian: Big})
	require.NoError(t, err)
	require.True(t, rest.IsEmpty())
	require.EqualValues(t, -3, val)
}

func TestBlockRoundTripViaFacade(t *testing.T) {
	b, err := NewBlock("demo",
		NewSegment("flag", Fixed(1)),
		NewSegment("value", Fixed(7), WithSign(Unsigned)),
	)
	require.NoError(t, err)

	r := NewRecord()
	r.Set("flag", uint64(1))
	r.Set("value", uint64(42))

	out, err := b.Encode(r)
	require.NoError(t, err)

	decoded, err := b.Decode(out)
	require.NoError(t, err)
	require.True(t, decoded.Leftover.IsEmpty())

	flag, _ := decoded.Get("flag")
	require.EqualValues(t, 1, flag)

	require.Equal(t, []string{"flag", "value"}, b.Segments())
}

func TestToHexDump(t *testing.T) {
	require.Equal(t, "DE AD BE EF", ToHexDump(FromBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})))
	require.Equal(t, "", ToHexDump(BitString{}))
}

func TestToBinaryString(t *testing.T) {
	require.Equal(t, "10110010", ToBinaryString(FromBytes([]byte{0xB2})))
}
