// Package block implements the block descriptor, encoder, and
// dynamic-size-resolving decoder from spec.md §4.3–§4.6: an ordered
// list of segment descriptors, a generic encode/decode that interprets
// that list (rather than code specialized per block at compile time —
// spec.md §9's "single generic encode/decode"), and the resolver
// protocol threading an opaque accumulator across a block's dynamic
// tail.
package block

import (
	"github.com/alboratech/bitcraft/internal/segment"
	"github.com/google/uuid"
)

// Block is the immutable descriptor of one bit-block: a name, its
// segments in wire order, and the pre-partition into the static prefix
// and dynamic tail spec.md §4.5 requires of the constructor.
type Block struct {
	ID       uuid.UUID
	Name     string
	segments []segment.Segment
	static   []segment.Segment // fixed and absent segments, in declaration order
	dynamic  []segment.Segment // dynamic segments, in declaration order
}

// New builds a Block, assigning it a fresh identity and partitioning
// its segments into static and dynamic groups.
//
// spec.md §9 leaves open whether dynamic segments may appear between
// fixed segments; this constructor takes the "safe interpretation" it
// names and rejects any dynamic segment that is not followed only by
// other dynamic segments.
func New(name string, segs ...segment.Segment) (*Block, error) {
	b := &Block{ID: uuid.New(), Name: name, segments: segs}

	seenDynamic := false
	for _, s := range segs {
		switch s.Size.Kind {
		case segment.SizeDynamic:
			seenDynamic = true
			b.dynamic = append(b.dynamic, s)
		default:
			if seenDynamic {
				return nil, segment.NewErrorWithContext(segment.InvalidSize,
					"fixed-size segment follows a dynamic segment", s.Name)
			}
			b.static = append(b.static, s)
		}
	}

	names := make(map[string]struct{}, len(segs))
	for _, s := range segs {
		if _, dup := names[s.Name]; dup {
			return nil, segment.NewErrorWithContext(segment.InvalidSize, "duplicate segment name", s.Name)
		}
		names[s.Name] = struct{}{}
	}

	return b, nil
}

// HasDynamic reports whether the block declares any dynamic segment.
func (b *Block) HasDynamic() bool {
	return len(b.dynamic) > 0
}
