package block

import (
	"errors"
	"testing"

	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
	"github.com/stretchr/testify/require"
)

func newStaticBlock(t *testing.T) *Block {
	t.Helper()
	b, err := New("frame",
		segment.New("header", segment.Fixed(5), segment.WithType(segment.Binary)),
		segment.New("s1", segment.Fixed(4), segment.WithType(segment.Integer)),
		segment.New("s2", segment.Fixed(8), segment.WithType(segment.Integer), segment.WithSign(segment.Signed)),
		segment.New("tail", segment.Fixed(3), segment.WithType(segment.Binary)),
	)
	require.NoError(t, err)
	return b
}

func TestStaticBlockRoundTrip(t *testing.T) {
	b := newStaticBlock(t)

	r := NewRecord()
	r.Set("header", []byte("begin"))
	r.Set("s1", int64(3))
	r.Set("s2", int64(-3))
	r.Set("tail", []byte("end"))

	out, err := b.Encode(r)
	require.NoError(t, err)

	wantBytes := []byte{98, 101, 103, 105, 110, 63, 214, 86, 230}
	require.Equal(t, wantBytes, out.Bytes()[:len(wantBytes)])
	require.Equal(t, uint(len(wantBytes)*8+4), out.Length())

	decoded, err := b.Decode(out)
	require.NoError(t, err)
	require.True(t, decoded.Leftover.IsEmpty())

	header, _ := decoded.Get("header")
	require.Equal(t, []byte("begin"), header.(interface{ Bytes() []byte }).Bytes())
	s1, _ := decoded.Get("s1")
	require.EqualValues(t, 3, s1)
	s2, _ := decoded.Get("s2")
	require.EqualValues(t, -3, s2)
}

func TestBlockRejectsFixedAfterDynamic(t *testing.T) {
	_, err := New("bad",
		segment.New("a", segment.Dynamic, segment.WithType(segment.Binary)),
		segment.New("b", segment.Fixed(8)),
	)
	require.Error(t, err)
}

func TestReflection(t *testing.T) {
	b := newStaticBlock(t)
	require.Equal(t, []string{"header", "s1", "s2", "tail"}, b.Segments())

	info, ok := b.SegmentInfo("s2")
	require.True(t, ok)
	require.Equal(t, segment.Signed, info.Sign)

	_, ok = b.SegmentInfo("nope")
	require.False(t, ok)
}

func TestCrossDependentDynamicSizes(t *testing.T) {
	b, err := New("linked",
		segment.New("a", segment.Fixed(4)),
		segment.New("b", segment.Fixed(8)),
		segment.New("d", segment.Dynamic, segment.WithType(segment.Binary)),
		segment.NewArray("e", segment.Integer, segment.WithElementSize(4), segment.WithArraySign(segment.Signed)),
	)
	require.NoError(t, err)

	resolver := ResolverFunc(func(view RecordView, name string, acc interface{}) (uint, interface{}, error) {
		switch name {
		case "d":
			a, _ := view.Get("a")
			bb, _ := view.Get("b")
			product := a.(uint64) * bb.(uint64)
			bits := countOnes(product)
			return bits, bits, nil
		case "e":
			dBits := acc.(uint)
			return dBits * 4, dBits * 4, nil
		}
		return 0, acc, nil
	})

	r := NewRecord()
	r.Set("a", uint64(6))
	r.Set("b", uint64(9))
	dBits := countOnes(6 * 9)
	dValue, err := bits.FromBits([]byte{0xF0}, dBits)
	require.NoError(t, err)
	r.Set("d", segment.DynamicSegment{Value: dValue, Size: dBits})
	r.Set("e", segment.DynamicSegment{Value: []interface{}{1, -1, 2, -2}, Size: 16})

	out, err := b.Encode(r)
	require.NoError(t, err)

	decoded, err := b.DecodeDynamic(out, uint(0), resolver)
	require.NoError(t, err)
	require.True(t, decoded.Leftover.IsEmpty())

	gotD, _ := decoded.Get("d")
	require.Equal(t, dBits, gotD.(segment.DynamicSegment).Size)

	gotE, _ := decoded.Get("e")
	require.Equal(t, uint(16), gotE.(segment.DynamicSegment).Size)
	elems := gotE.(segment.DynamicSegment).Value.([]interface{})
	require.EqualValues(t, -1, elems[1])
}

func countOnes(n uint64) uint {
	var count uint
	for n != 0 {
		n &= n - 1
		count++
	}
	return count
}

// errRateLimited is a sentinel a caller's resolver might return; it
// must survive DecodeDynamic unchanged for errors.Is to still work.
var errRateLimited = errors.New("rate limited")

func TestDecodeDynamicPropagatesResolverErrorVerbatim(t *testing.T) {
	b, err := New("linked",
		segment.New("a", segment.Fixed(8)),
		segment.New("d", segment.Dynamic, segment.WithType(segment.Binary)),
	)
	require.NoError(t, err)

	resolver := ResolverFunc(func(view RecordView, name string, acc interface{}) (uint, interface{}, error) {
		return 0, acc, errRateLimited
	})

	_, err = b.DecodeDynamic(bits.FromBytes([]byte{0x01, 0x02}), nil, resolver)
	require.Error(t, err)
	require.Same(t, errRateLimited, err)
	require.True(t, errors.Is(err, errRateLimited))
}

func TestBlockSkipsAbsentSegment(t *testing.T) {
	b, err := New("withAbsent",
		segment.New("a", segment.Fixed(8)),
		segment.New("skipped", segment.Absent, segment.WithDefault(uint64(99))),
		segment.New("b", segment.Fixed(8)),
	)
	require.NoError(t, err)

	r := NewRecord()
	r.Set("a", uint64(1))
	r.Set("b", uint64(2))

	out, err := b.Encode(r)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, out.Bytes())

	decoded, err := b.Decode(out)
	require.NoError(t, err)
	require.True(t, decoded.Leftover.IsEmpty())

	skipped, ok := decoded.Get("skipped")
	require.True(t, ok)
	require.EqualValues(t, 99, skipped)
}

func TestBlockDecodeSizeUnderflow(t *testing.T) {
	b := newStaticBlock(t)

	_, err := b.Decode(bits.FromBytes([]byte{0x01}))
	require.Error(t, err)

	var segErr *segment.Error
	require.True(t, errors.As(err, &segErr))
	require.Equal(t, segment.SizeUnderflow, segErr.Kind)
	require.True(t, errors.Is(err, segment.ErrSizeUnderflow))
}

func TestDecodeDynamicSizeUnderflow(t *testing.T) {
	b, err := New("linked",
		segment.New("a", segment.Fixed(8)),
		segment.New("d", segment.Dynamic, segment.WithType(segment.Binary)),
	)
	require.NoError(t, err)

	resolver := ResolverFunc(func(view RecordView, name string, acc interface{}) (uint, interface{}, error) {
		return 32, acc, nil
	})

	_, err = b.DecodeDynamic(bits.FromBytes([]byte{0x01}), nil, resolver)
	require.Error(t, err)

	var segErr *segment.Error
	require.True(t, errors.As(err, &segErr))
	require.Equal(t, segment.SizeUnderflow, segErr.Kind)
}

func TestBlockWithEndianSegment(t *testing.T) {
	b, err := New("le", segment.New("v", segment.Fixed(16), segment.WithEndian(endian.Little)))
	require.NoError(t, err)

	r := NewRecord()
	r.Set("v", uint64(0x0102))
	out, err := b.Encode(r)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01}, out.Bytes())
}
