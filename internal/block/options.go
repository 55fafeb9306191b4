package block

import (
	"github.com/alboratech/bitcraft/internal/primitive"
	"github.com/alboratech/bitcraft/internal/segment"
)

// toOptions converts a segment descriptor plus a resolved size in bits
// (nil for "use the value's own length", meaningful only for
// binary/bitstring/utf* encode) into the primitive codec's Options.
// The primitive package always works in bits; callers pass a
// resolver-returned dynamic size straight through unchanged.
func toOptions(s segment.Segment, sizeBits *uint) primitive.Options {
	return primitive.Options{
		Size:     sizeBits,
		Type:     s.Type,
		Sign:     s.Sign,
		Endian:   s.Endian,
		ElemType: s.ElemType,
		ElemSize: s.ElemSize,
	}
}

// declaredSizeBits converts a STATIC segment's declared Size.Bits into
// an actual bit count, applying spec.md §9's unit inconsistency: for
// binary/bytes the declared number is bytes (multiplied by 8 here);
// for every other type it is already bits. A resolver's dynamic size
// is always bits already and must bypass this conversion — see the
// dynamic-segment branches in encode.go/decode.go.
func declaredSizeBits(s segment.Segment) uint {
	if s.Type == segment.Binary {
		return s.Size.Bits * 8
	}
	return s.Size.Bits
}
