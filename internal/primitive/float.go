package primitive

import (
	"math"
	"reflect"

	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
)

func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	default:
		return 0, segment.NewErrorWithContext(segment.TypeMismatch, "value is not a float", value)
	}
}

// encodeFloat packs value as an IEEE-754 float of the given width (16,
// 32, or 64 bits), byte-ordered per e. Sign is ignored (spec.md §4.1).
func encodeFloat(value interface{}, size uint, e endian.Kind) (bits.String, error) {
	f, err := toFloat64(value)
	if err != nil {
		return bits.Empty, err
	}

	var bitsVal uint64
	switch size {
	case 16:
		bitsVal = uint64(float64ToFloat16(f))
	case 32:
		bitsVal = uint64(math.Float32bits(float32(f)))
	case 64:
		bitsVal = math.Float64bits(f)
	default:
		return bits.Empty, segment.NewErrorWithContext(segment.InvalidSize,
			"float size must be 16, 32, or 64", size)
	}

	w := bits.NewWriter()
	if e.IsLittle() {
		for i := uint(0); i < size; i += 8 {
			w.WriteBits((bitsVal>>i)&0xFF, 8)
		}
	} else {
		for i := int(size) - 8; i >= 0; i -= 8 {
			w.WriteBits((bitsVal>>uint(i))&0xFF, 8)
		}
	}
	return w.String(), nil
}

func decodeFloat(data bits.String, size uint, e endian.Kind) (interface{}, bits.String, error) {
	if size != 16 && size != 32 && size != 64 {
		return nil, bits.Empty, segment.NewErrorWithContext(segment.InvalidSize,
			"float size must be 16, 32, or 64", size)
	}

	head, rest, err := data.TakeBits(size)
	if err != nil {
		return nil, bits.Empty, toSegmentErr(err)
	}
	raw := head.Bytes()

	var bitsVal uint64
	numBytes := int(size / 8)
	if e.IsLittle() {
		for i := numBytes - 1; i >= 0; i-- {
			bitsVal = bitsVal<<8 | uint64(raw[i])
		}
	} else {
		for i := 0; i < numBytes; i++ {
			bitsVal = bitsVal<<8 | uint64(raw[i])
		}
	}

	switch size {
	case 16:
		return float16ToFloat64(uint16(bitsVal)), rest, nil
	case 32:
		return float64(math.Float32frombits(uint32(bitsVal))), rest, nil
	default:
		return math.Float64frombits(bitsVal), rest, nil
	}
}

// float64ToFloat16 converts to IEEE-754 binary16, matching the
// reference builder's half-precision conversion.
func float64ToFloat16(f float64) uint16 {
	bits32 := math.Float32bits(float32(f))
	sign := uint16((bits32 >> 16) & 0x8000)
	exp := int32((bits32>>23)&0xFF) - 127 + 15
	mant := bits32 & 0x7FFFFF

	switch {
	case exp <= 0:
		return sign
	case exp >= 0x1F:
		return sign | 0x7C00
	default:
		return sign | uint16(exp<<10) | uint16(mant>>13)
	}
}

func float16ToFloat64(h uint16) float64 {
	sign := uint32(h&0x8000) << 16
	exp := uint32((h >> 10) & 0x1F)
	mant := uint32(h & 0x3FF)

	var bits32 uint32
	switch {
	case exp == 0:
		bits32 = sign
	case exp == 0x1F:
		bits32 = sign | 0x7F800000 | (mant << 13)
	default:
		bits32 = sign | ((exp-15+127)<<23)&0x7F800000 | (mant << 13)
	}
	return float64(math.Float32frombits(bits32))
}
