// Package primitive implements the per-segment primitive codec
// (spec.md §4.1) and the array codec layered on top of it (§4.2): the
// cross-product of {element-type × signedness × endianness × size}
// reduced to two operations, Encode and Decode, each consuming or
// producing exactly one segment's worth of bits.
package primitive

import (
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
)

// Options carries everything a primitive operation needs to know about
// a single segment, mirroring spec.md §6's "opts ⊇ {size, type, sign,
// endian}".
type Options struct {
	// Size is nil to request the type's default size (spec.md §4.1);
	// otherwise it is the segment's size in bits, for every type
	// including Binary. A block's byte-counted binary declaration is
	// converted to bits by the block layer before it reaches here.
	Size     *uint
	Type     segment.Type
	Sign     segment.Sign
	Endian   endian.Kind
	ElemType segment.Type // meaningful when Type == segment.Array
	ElemSize uint         // meaningful when Type == segment.Array

	// UTFAsCodepoint selects decode's codepoint branch over its string
	// branch for utf8/utf16/utf32 segments (spec.md §4.1, §9): the
	// source chooses this by the runtime shape of an already-bound
	// match variable, which Go has no equivalent of, so it is named
	// explicitly here. Defaults to false (whole-string decode).
	UTFAsCodepoint bool
}

// bitsSize returns the size in bits and true, or 0 and false if
// Options.Size is unset.
func bitsSize(o Options) (uint, bool) {
	if o.Size == nil {
		return 0, false
	}
	return *o.Size, true
}

// defaultOptions fills in spec.md §4.1's defaults: type=integer,
// sign=unsigned, endian=big.
func defaultOptions() Options {
	return Options{Type: segment.Integer, Sign: segment.Unsigned, Endian: endian.Big}
}

// WithSize is a convenience constructor for an Options.Size pointer.
func WithSize(n uint) *uint { return &n }
