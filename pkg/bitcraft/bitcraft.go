// Package bitcraft is the public facade over the bit-block codec: the
// segment and block descriptor model, the primitive and array codecs,
// and the block encoder/decoder with its dynamic-size resolver
// protocol. Internal packages hold the implementation; this package
// re-exports the pieces a caller needs under one import.
package bitcraft

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/block"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/primitive"
	"github.com/alboratech/bitcraft/internal/segment"
)

// Core types.
type (
	BitString      = bits.String
	Block          = block.Block
	Record         = block.Record
	RecordView     = block.RecordView
	Resolver       = block.Resolver
	ResolverFunc   = block.ResolverFunc
	Segment        = segment.Segment
	Size           = segment.Size
	Type           = segment.Type
	Sign           = segment.Sign
	Endian         = endian.Kind
	DynamicSegment = segment.DynamicSegment
	Options        = primitive.Options
	Error          = segment.Error
	ErrorKind      = segment.Kind
)

// Base types (spec's Option enumeration).
const (
	Integer   = segment.Integer
	Float     = segment.Float
	Bitstring = segment.Bitstring
	Bits      = segment.Bits
	Binary    = segment.Binary
	Bytes     = segment.Bytes
	UTF8      = segment.UTF8
	UTF16     = segment.UTF16
	UTF32     = segment.UTF32
	Array     = segment.Array
)

// Signedness.
const (
	Signed   = segment.Signed
	Unsigned = segment.Unsigned
)

// Endianness.
const (
	Big    = endian.Big
	Little = endian.Little
	Native = endian.Native
)

// Error kinds.
const (
	ErrSizeUnderflow  = segment.SizeUnderflow
	ErrTypeMismatch   = segment.TypeMismatch
	ErrInvalidSize    = segment.InvalidSize
	ErrResolverFailed = segment.ResolverFailed
)

// Segment construction.

// NewSegment builds a segment descriptor, defaulting to an unsigned,
// big-endian integer when no options override it.
func NewSegment(name string, size Size, opts ...segment.Option) Segment {
	return segment.New(name, size, opts...)
}

// NewArraySegment builds an always-dynamic array segment.
func NewArraySegment(name string, elemType Type, opts ...segment.ArrayOption) Segment {
	return segment.NewArray(name, elemType, opts...)
}

// Fixed describes a segment of exactly n bits.
func Fixed(n uint) Size { return segment.Fixed(n) }

// Dynamic and Absent are the non-fixed size sentinels.
var (
	Dynamic = segment.Dynamic
	Absent  = segment.Absent
)

// Segment option re-exports.
var (
	WithType    = segment.WithType
	WithSign    = segment.WithSign
	WithEndian  = segment.WithEndian
	WithDefault = segment.WithDefault
)

// Array option re-exports.
var (
	WithElementSize = segment.WithElementSize
	WithArraySign   = segment.WithArraySign
	WithArrayEndian = segment.WithArrayEndian
)

// Block construction.

// NewBlock builds a block descriptor from its segments in wire order.
func NewBlock(name string, segs ...Segment) (*Block, error) {
	return block.New(name, segs...)
}

// NewRecord returns an empty record ready to be populated with Set.
func NewRecord() *Record { return block.NewRecord() }

// Primitive codec.

// EncodePrimitive encodes a single value per opts.
func EncodePrimitive(value interface{}, opts Options) (BitString, error) {
	return primitive.Encode(value, opts)
}

// DecodePrimitive decodes a single value per opts, returning the
// unconsumed suffix.
func DecodePrimitive(data BitString, opts Options) (interface{}, BitString, error) {
	return primitive.Decode(data, opts)
}

// WithSize builds an Options.Size pointer.
func WithSize(n uint) *uint { return primitive.WithSize(n) }

// Bitstring construction.

// FromBytes builds a BitString from a byte slice.
func FromBytes(data []byte) BitString { return bits.FromBytes(data) }

// FromBits builds a BitString of exactly bitLen bits.
func FromBits(data []byte, bitLen uint) (BitString, error) { return bits.FromBits(data, bitLen) }

// Concat bit-exactly concatenates bitstrings.
func Concat(parts ...BitString) BitString { return bits.Concat(parts...) }

// CountOnes is the Hamming weight utility spec.md §6 names, used by
// example resolvers to derive a dynamic size from already-decoded
// fields. Implemented with Brian Kernighan's bit-clearing loop.
func CountOnes(n uint64) uint {
	var count uint
	for n != 0 {
		n &= n - 1
		count++
	}
	return count
}
