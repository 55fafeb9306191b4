package primitive

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/segment"
)

// Encode returns a bitstring of exactly opts.Size bits for integer and
// float segments; for binary/bitstring/utf* the wire length is the
// value's own length regardless of opts.Size (spec.md §4.1).
func Encode(value interface{}, opts Options) (bits.String, error) {
	typ := resolveType(opts.Type)
	endianKind := opts.Endian
	if endianKind == "" {
		endianKind = defaultOptions().Endian
	}

	switch typ {
	case segment.Array:
		return EncodeArray(value, opts)
	case segment.Integer:
		size, _ := bitsSize(opts)
		if size == 0 && opts.Size == nil {
			size = 8
		}
		return encodeInteger(value, size, opts.Sign, endianKind)
	case segment.Float:
		size, _ := bitsSize(opts)
		if size == 0 && opts.Size == nil {
			size = 64
		}
		return encodeFloat(value, size, endianKind)
	case segment.Binary, segment.Bitstring:
		return encodeOpaque(value)
	case segment.UTF8, segment.UTF16, segment.UTF32:
		return encodeUTF(value, typ, endianKind)
	default:
		return bits.Empty, segment.NewErrorWithContext(segment.TypeMismatch, "unknown segment type", typ)
	}
}

// Decode consumes opts.Size bits from the front of data for
// integer/float/binary/bitstring (a single code point or the rest of
// the input for utf*) and returns the decoded value plus the
// unconsumed suffix.
func Decode(data bits.String, opts Options) (interface{}, bits.String, error) {
	typ := resolveType(opts.Type)
	endianKind := opts.Endian
	if endianKind == "" {
		endianKind = defaultOptions().Endian
	}

	switch typ {
	case segment.Array:
		return DecodeArray(data, opts)
	case segment.Integer:
		size, ok := bitsSize(opts)
		if !ok {
			size = 8
		}
		return decodeInteger(data, size, opts.Sign, endianKind)
	case segment.Float:
		size, ok := bitsSize(opts)
		if !ok {
			size = 64
		}
		return decodeFloat(data, size, endianKind)
	case segment.Binary, segment.Bitstring:
		size, ok := bitsSize(opts)
		if !ok {
			return nil, bits.Empty, segment.NewError(segment.InvalidSize, "binary/bitstring decode requires a size")
		}
		return decodeOpaque(data, size)
	case segment.UTF8, segment.UTF16, segment.UTF32:
		return decodeUTF(data, typ, endianKind, opts.UTFAsCodepoint)
	default:
		return nil, bits.Empty, segment.NewErrorWithContext(segment.TypeMismatch, "unknown segment type", typ)
	}
}

// resolveType applies spec.md §4.1's default ("type=integer"). The
// bits/bytes aliases are the same constants as bitstring/binary, so
// they need no mapping here.
func resolveType(t segment.Type) segment.Type {
	if t == "" {
		return segment.Integer
	}
	return t
}
