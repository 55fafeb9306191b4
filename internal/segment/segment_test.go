package segment

import (
	"testing"

	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	s := New("flag", Fixed(1))
	require.Equal(t, Integer, s.Type)
	require.Equal(t, Unsigned, s.Sign)
	require.Equal(t, endian.Big, s.Endian)
	require.Equal(t, SizeFixed, s.Size.Kind)
	require.Equal(t, uint(1), s.Size.Bits)
}

func TestNewOptions(t *testing.T) {
	s := New("offset", Dynamic, WithType(Binary), WithSign(Signed), WithEndian(endian.Little))
	require.Equal(t, Binary, s.Type)
	require.Equal(t, Signed, s.Sign)
	require.Equal(t, endian.Little, s.Endian)
	require.Equal(t, SizeDynamic, s.Size.Kind)
}

func TestNewArrayDefaults(t *testing.T) {
	s := NewArray("samples", Integer)
	require.Equal(t, Array, s.Type)
	require.Equal(t, Integer, s.ElemType)
	require.Equal(t, uint(8), s.ElemSize)
	require.Equal(t, SizeDynamic, s.Size.Kind)
}

func TestNewArrayOptions(t *testing.T) {
	s := NewArray("samples", Integer, WithElementSize(4), WithArraySign(Signed), WithArrayEndian(endian.Little))
	require.Equal(t, uint(4), s.ElemSize)
	require.Equal(t, Signed, s.Sign)
	require.Equal(t, endian.Little, s.Endian)
}
