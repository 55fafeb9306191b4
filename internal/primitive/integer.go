package primitive

import (
	"math/big"
	"reflect"

	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
)

// toBigInt normalizes the supported Go numeric kinds (and *big.Int
// itself) to a single signed representation for the encoder.
func toBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), nil
	default:
		return nil, segment.NewErrorWithContext(segment.TypeMismatch,
			"value is not an integer", value)
	}
}

// fromBigInt narrows a decoded pattern back down to a native Go value:
// int64 when signed, uint64 when unsigned, for sizes up to 64 bits;
// *big.Int unchanged beyond that, matching the reference's arbitrary
// bit-width integers.
func fromBigInt(pattern *big.Int, size uint, sign segment.Sign) interface{} {
	if size > 64 {
		return pattern
	}
	if sign == segment.Signed {
		return pattern.Int64()
	}
	return pattern.Uint64()
}

func paddingFor(n uint) uint {
	if n%8 == 0 {
		return 0
	}
	return 8 - n%8
}

// encodeInteger packs value as size bits of two's-complement, high bit
// first under big endian, low byte first under little (spec.md §4.1,
// with the sub-byte little-endian tail boundary from §8's 12-bit case).
func encodeInteger(value interface{}, size uint, sign segment.Sign, e endian.Kind) (bits.String, error) {
	bi, err := toBigInt(value)
	if err != nil {
		return bits.Empty, err
	}

	modulus := new(big.Int).Lsh(big.NewInt(1), size)
	if sign == segment.Unsigned && bi.Sign() < 0 {
		return bits.Empty, segment.NewErrorWithContext(segment.InvalidSize,
			"negative value for unsigned integer segment", value)
	}
	pattern := new(big.Int).Mod(bi, modulus)

	w := bits.NewWriter()
	if e.IsLittle() {
		writeLittleEndianBits(w, pattern, size)
	} else {
		writeBigEndianBits(w, pattern, size)
	}
	return w.String(), nil
}

func writeBigEndianBits(w *bits.Writer, pattern *big.Int, size uint) {
	for i := size; i > 0; {
		chunk := i
		if chunk > 32 {
			chunk = 32
		}
		i -= chunk
		shifted := new(big.Int).Rsh(pattern, i)
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), chunk), big.NewInt(1))
		shifted.And(shifted, mask)
		w.WriteBits(shifted.Uint64(), chunk)
	}
}

func writeLittleEndianBits(w *bits.Writer, pattern *big.Int, size uint) {
	full := size / 8
	rem := size % 8
	for i := uint(0); i < full; i++ {
		byteVal := extractBitsRange(pattern, i*8, 8)
		w.WriteBits(byteVal, 8)
	}
	if rem > 0 {
		top := extractBitsRange(pattern, full*8, rem)
		w.WriteBits(top, rem)
	}
}

func extractBitsRange(pattern *big.Int, start, n uint) uint64 {
	shifted := new(big.Int).Rsh(pattern, start)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), n), big.NewInt(1))
	shifted.And(shifted, mask)
	return shifted.Uint64()
}

// decodeInteger extracts size bits as big or little endian, sign-extending
// if signed, and returns the decoded value plus the unconsumed suffix.
func decodeInteger(data bits.String, size uint, sign segment.Sign, e endian.Kind) (interface{}, bits.String, error) {
	var pattern *big.Int
	var rest bits.String
	var err error

	if e.IsLittle() {
		pattern, rest, err = readLittleEndianBits(data, size)
	} else {
		pattern, rest, err = readBigEndianBits(data, size)
	}
	if err != nil {
		return nil, bits.Empty, err
	}

	if sign == segment.Signed && size > 0 && pattern.Bit(int(size-1)) == 1 {
		pattern.Sub(pattern, new(big.Int).Lsh(big.NewInt(1), size))
	}
	return fromBigInt(pattern, size, sign), rest, nil
}

func readBigEndianBits(data bits.String, size uint) (*big.Int, bits.String, error) {
	head, rest, err := data.TakeBits(size)
	if err != nil {
		return nil, bits.Empty, toSegmentErr(err)
	}
	raw := new(big.Int).SetBytes(head.Bytes())
	raw.Rsh(raw, paddingFor(size))
	return raw, rest, nil
}

func readLittleEndianBits(data bits.String, size uint) (*big.Int, bits.String, error) {
	full := size / 8
	rem := size % 8
	pattern := new(big.Int)
	cur := data

	for i := uint(0); i < full; i++ {
		byteBits, next, err := cur.TakeBits(8)
		if err != nil {
			return nil, bits.Empty, toSegmentErr(err)
		}
		chunk := new(big.Int).Lsh(big.NewInt(int64(byteBits.Bytes()[0])), i*8)
		pattern.Or(pattern, chunk)
		cur = next
	}
	if rem > 0 {
		topBits, next, err := cur.TakeBits(rem)
		if err != nil {
			return nil, bits.Empty, toSegmentErr(err)
		}
		raw := new(big.Int).SetBytes(topBits.Bytes())
		raw.Rsh(raw, paddingFor(rem))
		chunk := new(big.Int).Lsh(raw, full*8)
		pattern.Or(pattern, chunk)
		cur = next
	}
	return pattern, cur, nil
}

func toSegmentErr(err error) error {
	if _, ok := err.(bits.ErrUnderflow); ok {
		return segment.NewErrorWithContext(segment.SizeUnderflow, err.Error(), nil)
	}
	return err
}
