package primitive

import (
	"reflect"

	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/segment"
)

// EncodeArray packs a homogeneous sequence contiguously with no
// separator, length prefix, or terminator (spec.md §4.2).
func EncodeArray(value interface{}, opts Options) (bits.String, error) {
	elems, err := toSlice(value)
	if err != nil {
		return bits.Empty, err
	}

	elemOpts := elementOptions(opts)
	parts := make([]bits.String, len(elems))
	for i, e := range elems {
		encoded, err := Encode(e, elemOpts)
		if err != nil {
			return bits.Empty, err
		}
		parts[i] = encoded
	}
	return bits.Concat(parts...), nil
}

// DecodeArray computes n = size/element_size (failing with InvalidSize
// if it does not divide exactly) then decodes n elements in sequence.
func DecodeArray(data bits.String, opts Options) (interface{}, bits.String, error) {
	size, ok := bitsSize(opts)
	if !ok {
		return nil, bits.Empty, segment.NewError(segment.InvalidSize, "array decode requires a total size")
	}
	elemSize := opts.ElemSize
	if elemSize == 0 {
		elemSize = 8
	}
	if size == 0 {
		return []interface{}{}, data, nil
	}
	if size%elemSize != 0 {
		return nil, bits.Empty, segment.NewErrorWithContext(segment.InvalidSize,
			"array size does not divide evenly by element_size", size)
	}
	n := size / elemSize

	elemOpts := elementOptions(opts)
	out := make([]interface{}, n)
	cur := data
	for i := uint(0); i < n; i++ {
		val, rest, err := Decode(cur, elemOpts)
		if err != nil {
			return nil, bits.Empty, err
		}
		out[i] = val
		cur = rest
	}
	return out, cur, nil
}

func elementOptions(opts Options) Options {
	elemSize := opts.ElemSize
	if elemSize == 0 {
		elemSize = 8
	}
	return Options{
		Size:   WithSize(elemSize),
		Type:   opts.ElemType,
		Sign:   opts.Sign,
		Endian: opts.Endian,
	}
}

func toSlice(value interface{}) ([]interface{}, error) {
	if v, ok := value.([]interface{}); ok {
		return v, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, segment.NewErrorWithContext(segment.TypeMismatch, "value is not an array", value)
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
