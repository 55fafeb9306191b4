// Package protocols demonstrates the bit-block codec against two wire
// formats: an IPv4 datagram (spec.md §8 scenario 2) and a telemetry
// frame with a dynamically-sized typed sample array.
package protocols

import (
	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/block"
	"github.com/alboratech/bitcraft/internal/endian"
	"github.com/alboratech/bitcraft/internal/segment"
)

// IPv4Datagram is the fixed 20-byte header plus the variable-length
// options and payload that follow it.
type IPv4Datagram struct {
	Version        uint64
	HeaderLength   uint64 // in 32-bit words; 5 means no options
	ServiceType    uint64
	TotalLength    uint64
	Identification uint64
	Flags          uint64
	FragmentOffset uint64
	TTL            uint64
	Protocol       uint64
	Checksum       uint64
	SourceIP       uint64
	DestinationIP  uint64
	Options        []byte // (HeaderLength-5)*4 bytes, empty when HeaderLength==5
	Payload        []byte
}

// IPv4Block is the block descriptor for an IPv4 datagram: the 20-byte
// fixed header, a dynamic `opts` segment sized (hlen-5)*32 bits, and a
// dynamic `data` segment sized to whatever remains.
var IPv4Block = mustBuildIPv4Block()

func mustBuildIPv4Block() *block.Block {
	b, err := block.New("ipv4",
		segment.New("version", segment.Fixed(4)),
		segment.New("header_length", segment.Fixed(4)),
		segment.New("service_type", segment.Fixed(8)),
		segment.New("total_length", segment.Fixed(16), segment.WithEndian(endian.Big)),
		segment.New("identification", segment.Fixed(16), segment.WithEndian(endian.Big)),
		segment.New("flags", segment.Fixed(3)),
		segment.New("fragment_offset", segment.Fixed(13)),
		segment.New("ttl", segment.Fixed(8)),
		segment.New("protocol", segment.Fixed(8)),
		segment.New("checksum", segment.Fixed(16), segment.WithEndian(endian.Big)),
		segment.New("source_ip", segment.Fixed(32), segment.WithEndian(endian.Big)),
		segment.New("destination_ip", segment.Fixed(32), segment.WithEndian(endian.Big)),
		segment.New("opts", segment.Dynamic, segment.WithType(segment.Binary)),
		segment.New("data", segment.Dynamic, segment.WithType(segment.Binary)),
	)
	if err != nil {
		panic(err)
	}
	return b
}

// IPv4Resolver implements the dynamic-size rules spec.md §8 scenario 2
// describes: opts occupies (header_length-5) 32-bit words; data takes
// whatever bits remain.
var IPv4Resolver = block.ResolverFunc(func(view block.RecordView, name string, acc interface{}) (uint, interface{}, error) {
	switch name {
	case "opts":
		hlenVal, _ := view.Get("header_length")
		hlen := hlenVal.(uint64)
		if hlen < 5 {
			return 0, acc, segment.NewErrorWithContext(segment.InvalidSize, "header_length below minimum", hlen)
		}
		return uint(hlen-5) * 32, acc, nil
	case "data":
		return view.Leftover().Length(), acc, nil
	default:
		return 0, acc, nil
	}
})

// EncodeIPv4 builds the on-wire bitstring for a datagram.
func EncodeIPv4(d IPv4Datagram) (bits.String, error) {
	r := block.NewRecord()
	r.Set("version", d.Version)
	r.Set("header_length", d.HeaderLength)
	r.Set("service_type", d.ServiceType)
	r.Set("total_length", d.TotalLength)
	r.Set("identification", d.Identification)
	r.Set("flags", d.Flags)
	r.Set("fragment_offset", d.FragmentOffset)
	r.Set("ttl", d.TTL)
	r.Set("protocol", d.Protocol)
	r.Set("checksum", d.Checksum)
	r.Set("source_ip", d.SourceIP)
	r.Set("destination_ip", d.DestinationIP)

	if len(d.Options) > 0 {
		r.Set("opts", segment.DynamicSegment{Value: d.Options, Size: uint(len(d.Options)) * 8})
	}
	r.Set("data", segment.DynamicSegment{Value: d.Payload, Size: uint(len(d.Payload)) * 8})

	return IPv4Block.Encode(r)
}

// DecodeIPv4 parses a datagram, threading the total input bit-length
// as the resolver's accumulator per spec.md §8 scenario 2.
func DecodeIPv4(data bits.String) (IPv4Datagram, error) {
	r, err := IPv4Block.DecodeDynamic(data, data.Length(), IPv4Resolver)
	if err != nil {
		return IPv4Datagram{}, err
	}

	get := func(name string) uint64 {
		v, _ := r.Get(name)
		return v.(uint64)
	}
	optsVal, _ := r.Get("opts")
	dataVal, _ := r.Get("data")

	return IPv4Datagram{
		Version:        get("version"),
		HeaderLength:   get("header_length"),
		ServiceType:    get("service_type"),
		TotalLength:    get("total_length"),
		Identification: get("identification"),
		Flags:          get("flags"),
		FragmentOffset: get("fragment_offset"),
		TTL:            get("ttl"),
		Protocol:       get("protocol"),
		Checksum:       get("checksum"),
		SourceIP:       get("source_ip"),
		DestinationIP:  get("destination_ip"),
		Options:        optsVal.(segment.DynamicSegment).Value.(bits.String).Bytes(),
		Payload:        dataVal.(segment.DynamicSegment).Value.(bits.String).Bytes(),
	}, nil
}
