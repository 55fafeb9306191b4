package primitive

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
	"github.com/alboratech/bitcraft/internal/utf"
)

// encodeUTF emits the UTF-8/16/32 bytes of value, which is either a
// single code point (int/int32/rune) or a string — spec.md §4.1's
// "emit UTF-8 bytes of a codepoint or of a string".
func encodeUTF(value interface{}, typ segment.Type, e endian.Kind) (bits.String, error) {
	switch v := value.(type) {
	case string:
		var out []byte
		for _, r := range v {
			chunk, err := encodeCodepoint(int(r), typ, e)
			if err != nil {
				return bits.Empty, err
			}
			out = append(out, chunk...)
		}
		return bits.FromBytes(out), nil
	case rune:
		chunk, err := encodeCodepoint(int(v), typ, e)
		if err != nil {
			return bits.Empty, err
		}
		return bits.FromBytes(chunk), nil
	case int, int64, uint, uint32, uint64:
		cp, err := toBigInt(v)
		if err != nil {
			return bits.Empty, err
		}
		chunk, err := encodeCodepoint(int(cp.Int64()), typ, e)
		if err != nil {
			return bits.Empty, err
		}
		return bits.FromBytes(chunk), nil
	default:
		return bits.Empty, segment.NewErrorWithContext(segment.TypeMismatch,
			"value is not a codepoint or string", value)
	}
}

func encodeCodepoint(cp int, typ segment.Type, e endian.Kind) ([]byte, error) {
	switch typ {
	case segment.UTF8:
		return utf.EncodeUTF8(cp)
	case segment.UTF16:
		return utf.EncodeUTF16(cp, e)
	case segment.UTF32:
		return utf.EncodeUTF32(cp, e)
	default:
		return nil, segment.NewError(segment.TypeMismatch, "not a utf type")
	}
}

func decodeCodepoint(data []byte, typ segment.Type, e endian.Kind) (int, int, error) {
	switch typ {
	case segment.UTF8:
		return utf.DecodeUTF8(data)
	case segment.UTF16:
		return utf.DecodeUTF16(data, e)
	case segment.UTF32:
		return utf.DecodeUTF32(data, e)
	default:
		return 0, 0, segment.NewError(segment.TypeMismatch, "not a utf type")
	}
}

// decodeUTF implements spec.md §4.1's dual decode behavior: asCodepoint
// consumes exactly one code point and returns the remainder; otherwise
// the entire input is decoded as a string and nothing is left over.
func decodeUTF(data bits.String, typ segment.Type, e endian.Kind, asCodepoint bool) (interface{}, bits.String, error) {
	if asCodepoint {
		cp, consumed, err := decodeCodepoint(data.Bytes(), typ, e)
		if err != nil {
			return nil, bits.Empty, segment.NewErrorWithContext(segment.TypeMismatch, err.Error(), nil)
		}
		_, rest, err := data.TakeBits(uint(consumed) * 8)
		if err != nil {
			return nil, bits.Empty, toSegmentErr(err)
		}
		return cp, rest, nil
	}

	raw := data.Bytes()
	var out []rune
	for len(raw) > 0 {
		cp, consumed, err := decodeCodepoint(raw, typ, e)
		if err != nil {
			return nil, bits.Empty, segment.NewErrorWithContext(segment.TypeMismatch, err.Error(), nil)
		}
		out = append(out, rune(cp))
		raw = raw[consumed:]
	}
	return string(out), bits.Empty, nil
}
