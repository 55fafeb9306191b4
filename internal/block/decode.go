package block

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/primitive"
	"github.com/alboratech/bitcraft/internal/segment"
)

// Decode is the static form (spec.md §4.4): valid only for blocks with
// no dynamic segments. It extracts each segment in order and places
// whatever remains into Leftover.
func (b *Block) Decode(data bits.String) (*Record, error) {
	if b.HasDynamic() {
		return nil, segment.NewErrorWithContext(segment.TypeMismatch,
			"block has dynamic segments; use DecodeDynamic", b.Name)
	}

	r := NewRecord()
	cur := data
	for _, s := range b.static {
		if s.Size.Kind == segment.SizeAbsent {
			r.Set(s.Name, s.Default)
			continue
		}
		size := declaredSizeBits(s)
		value, rest, err := primitive.Decode(cur, toOptions(s, &size))
		if err != nil {
			return nil, err
		}
		r.Set(s.Name, value)
		cur = rest
	}
	r.Leftover = cur
	return r, nil
}

// DecodeDynamic is the dynamic form (spec.md §4.4): it extracts the
// static prefix exactly as Decode does, then invokes resolver once per
// dynamic segment, in declaration order, threading acc across calls.
func (b *Block) DecodeDynamic(data bits.String, acc interface{}, resolver Resolver) (*Record, error) {
	r := NewRecord()
	cur := data
	for _, s := range b.static {
		if s.Size.Kind == segment.SizeAbsent {
			r.Set(s.Name, s.Default)
			continue
		}
		size := declaredSizeBits(s)
		value, rest, err := primitive.Decode(cur, toOptions(s, &size))
		if err != nil {
			return nil, err
		}
		r.Set(s.Name, value)
		cur = rest
	}
	r.Leftover = cur

	for _, d := range b.dynamic {
		view := RecordView{record: r}
		size, newAcc, err := resolver.Resolve(view, d.Name, acc)
		if err != nil {
			return nil, err
		}
		acc = newAcc

		value, rest, err := primitive.Decode(r.Leftover, toOptions(d, &size))
		if err != nil {
			return nil, err
		}
		r.Set(d.Name, segment.DynamicSegment{Value: value, Size: size})
		r.Leftover = rest
	}

	return r, nil
}
