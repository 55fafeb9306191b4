package block

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/primitive"
	"github.com/alboratech/bitcraft/internal/segment"
)

// Encode walks the block's segments in wire order, concatenating each
// one's encoded bits (spec.md §4.3). The leftover field is never
// inspected.
func (b *Block) Encode(r *Record) (bits.String, error) {
	var parts []bits.String

	for _, s := range b.segments {
		switch s.Size.Kind {
		case segment.SizeAbsent:
			continue

		case segment.SizeFixed:
			value, ok := r.Get(s.Name)
			if !ok {
				value = s.Default
			}
			size := declaredSizeBits(s)
			encoded, err := primitive.Encode(value, toOptions(s, &size))
			if err != nil {
				return bits.Empty, err
			}
			parts = append(parts, encoded)

		case segment.SizeDynamic:
			value, ok := r.Get(s.Name)
			if !ok || value == nil {
				continue
			}
			ds, ok := value.(segment.DynamicSegment)
			if !ok {
				return bits.Empty, segment.NewErrorWithContext(segment.TypeMismatch,
					"dynamic segment field is not a DynamicSegment envelope", s.Name)
			}
			size := ds.Size
			encoded, err := primitive.Encode(ds.Value, toOptions(s, &size))
			if err != nil {
				return bits.Empty, err
			}
			parts = append(parts, encoded)
		}
	}

	return bits.Concat(parts...), nil
}
