package block

import "github.com/alboratech/bitcraft/internal/segment"

// Segments returns the block's field names in declaration order,
// excluding the implicit leftover field (spec.md §4.6).
func (b *Block) Segments() []string {
	names := make([]string, len(b.segments))
	for i, s := range b.segments {
		names[i] = s.Name
	}
	return names
}

// SegmentInfo returns the descriptor for a named segment, or false if
// no segment with that name was declared.
func (b *Block) SegmentInfo(name string) (segment.Segment, bool) {
	for _, s := range b.segments {
		if s.Name == name {
			return s, true
		}
	}
	return segment.Segment{}, false
}
