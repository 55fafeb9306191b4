// Package segment implements the segment descriptor data model from
// spec.md §3: the immutable per-field description of a bit-block's
// wire layout (name, size, type, sign, endianness, default), plus the
// DynamicSegment envelope carried for segments whose wire size is
// supplied at decode time.
package segment

import "github.com/alboratech/bitcraft/internal/endian"

// Type is one of the base types spec.md §3 enumerates. Bits and Bytes
// are aliases of Bitstring and Binary respectively, matching spec.md's
// "bits (alias of bitstring)" / "bytes (alias of binary)".
type Type string

const (
	Integer   Type = "integer"
	Float     Type = "float"
	Bitstring Type = "bitstring"
	Binary    Type = "binary"
	UTF8      Type = "utf8"
	UTF16     Type = "utf16"
	UTF32     Type = "utf32"
	Array     Type = "array"

	Bits  = Bitstring
	Bytes = Binary
)

// Sign is a segment's signedness; only meaningful for Integer.
type Sign bool

const (
	Unsigned Sign = false
	Signed   Sign = true
)

// SizeKind classifies a Size value: a fixed bit count, a dynamic
// (resolved at decode time) size, or the absent "skip this segment"
// marker.
type SizeKind int

const (
	SizeFixed SizeKind = iota
	SizeDynamic
	SizeAbsent
)

// Size is the tagged union spec.md §3 describes for a segment's size:
// "a non-negative integer number of bits, the sentinel dynamic, or
// absent/nil". Go has no bare union, so Kind discriminates Bits.
type Size struct {
	Kind SizeKind
	Bits uint
}

// Fixed returns a Size describing exactly n bits.
func Fixed(n uint) Size { return Size{Kind: SizeFixed, Bits: n} }

// Dynamic is the sentinel size resolved by a Resolver at decode time.
var Dynamic = Size{Kind: SizeDynamic}

// Absent marks a segment that is neither encoded nor decoded.
var Absent = Size{Kind: SizeAbsent}

// DynamicSegment is carried as both the encode input and the decode
// output for every dynamic-sized segment, making the intended on-wire
// size explicit rather than inferred — spec.md §3's "Record / struct".
type DynamicSegment struct {
	Value interface{}
	Size  uint
}

// Segment is the immutable descriptor of one named field of a block.
type Segment struct {
	Name     string
	Size     Size
	Type     Type
	ElemType Type // meaningful when Type == Array
	ElemSize uint // meaningful when Type == Array, default 8
	Sign     Sign
	Endian   endian.Kind
	Default  interface{}
}

// Option configures a Segment at construction time.
type Option func(*Segment)

// WithType overrides the segment's base type (default Integer).
func WithType(t Type) Option {
	return func(s *Segment) { s.Type = t }
}

// WithSign sets the segment's signedness (default Unsigned).
func WithSign(sign Sign) Option {
	return func(s *Segment) { s.Sign = sign }
}

// WithEndian sets the segment's endianness (default endian.Big).
func WithEndian(e endian.Kind) Option {
	return func(s *Segment) { s.Endian = e }
}

// WithDefault sets the value placed into the struct field at
// construction and used for "skip" segments on decode.
func WithDefault(v interface{}) Option {
	return func(s *Segment) { s.Default = v }
}

// New builds a Segment descriptor for name with the given size and
// options, defaulting to an unsigned, big-endian integer per spec.md
// §4.1 ("type=integer, sign=unsigned, endian=big").
func New(name string, size Size, opts ...Option) Segment {
	s := Segment{
		Name:   name,
		Size:   size,
		Type:   Integer,
		Sign:   Unsigned,
		Endian: endian.Big,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ArrayOption configures an array segment built via NewArray.
type ArrayOption func(*Segment)

// WithElementSize overrides the default 8-bit array element size.
func WithElementSize(bits uint) ArrayOption {
	return func(s *Segment) { s.ElemSize = bits }
}

// WithArraySign sets the signedness applied to every array element.
func WithArraySign(sign Sign) ArrayOption {
	return func(s *Segment) { s.Sign = sign }
}

// WithArrayEndian sets the endianness applied to every array element.
func WithArrayEndian(e endian.Kind) ArrayOption {
	return func(s *Segment) { s.Endian = e }
}

// NewArray builds an always-dynamic array segment: "a sequence of
// elemType values, each element_size bits", desugaring per spec.md
// §4.5 to segment(name, dynamic, type: Array{elemType, element_size}).
// The default element size is 8 bits, matching the reference's
// element_size default.
func NewArray(name string, elemType Type, opts ...ArrayOption) Segment {
	s := Segment{
		Name:     name,
		Size:     Dynamic,
		Type:     Array,
		ElemType: elemType,
		ElemSize: 8,
		Sign:     Unsigned,
		Endian:   endian.Big,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
