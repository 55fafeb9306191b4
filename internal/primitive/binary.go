package primitive

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/segment"
)

// toBitString normalizes the Go shapes a binary/bitstring segment
// accepts: a bits.String already, a []byte, or a string.
func toBitString(value interface{}) (bits.String, error) {
	switch v := value.(type) {
	case bits.String:
		return v, nil
	case []byte:
		return bits.FromBytes(v), nil
	case string:
		return bits.FromBytes([]byte(v)), nil
	case nil:
		return bits.Empty, nil
	default:
		return bits.Empty, segment.NewErrorWithContext(segment.TypeMismatch,
			"value is not a binary-shaped type", value)
	}
}

// encodeOpaque copies value's bits verbatim — the declared size is
// advisory on encode for binary/bitstring (spec.md §4.1, §8 boundary
// case): the wire length is always the value's own bit-length.
func encodeOpaque(value interface{}) (bits.String, error) {
	return toBitString(value)
}

// decodeOpaque consumes exactly sizeBits bits and returns them as a
// bits.String value. The caller is responsible for converting a
// declared segment size into bits first — spec.md §9's unit
// inconsistency (bytes for binary, bits for bitstring) is resolved at
// the segment/block layer, not here; this package normalizes to bits
// uniformly per the reimplementation spec.md §9 allows.
func decodeOpaque(data bits.String, sizeBits uint) (interface{}, bits.String, error) {
	head, rest, err := data.TakeBits(sizeBits)
	if err != nil {
		return nil, bits.Empty, toSegmentErr(err)
	}
	return head, rest, nil
}
