package protocols

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIPv4RoundTripWithOptions(t *testing.T) {
	datagram := IPv4Datagram{
		Version:        4,
		HeaderLength:   6,
		ServiceType:    0,
		TotalLength:    28,
		Identification: 1,
		Flags:          0,
		FragmentOffset: 0,
		TTL:            64,
		Protocol:       17,
		Checksum:       0,
		SourceIP:       0x0A0A0A01,
		DestinationIP:  0x0A0A0A02,
		Options:        []byte{10, 10, 10, 1},
		Payload:        []byte("ping"),
	}

	encoded, err := EncodeIPv4(datagram)
	require.NoError(t, err)

	decoded, err := DecodeIPv4(encoded)
	require.NoError(t, err)
	require.Equal(t, datagram.Version, decoded.Version)
	require.Equal(t, datagram.HeaderLength, decoded.HeaderLength)
	require.Equal(t, datagram.SourceIP, decoded.SourceIP)
	require.Equal(t, []byte{10, 10, 10, 1}, decoded.Options)
	require.Equal(t, []byte("ping"), decoded.Payload)
}

func TestIPv4RoundTripWithoutOptions(t *testing.T) {
	datagram := IPv4Datagram{
		Version:       4,
		HeaderLength:  5,
		TTL:           64,
		Protocol:      6,
		SourceIP:      0x0A0A0A01,
		DestinationIP: 0x0A0A0A02,
		Payload:       []byte("hi"),
	}

	encoded, err := EncodeIPv4(datagram)
	require.NoError(t, err)

	decoded, err := DecodeIPv4(encoded)
	require.NoError(t, err)
	require.Equal(t, uint64(5), decoded.HeaderLength)
	require.Empty(t, decoded.Options)
	require.Equal(t, []byte("hi"), decoded.Payload)
}
