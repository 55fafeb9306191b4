package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alboratech/bitcraft/internal/bits"
	"github.com/alboratech/bitcraft/internal/protocols"
)

// bitsFromBytes wraps a raw byte slice read from the command line as
// the bitstring the codec operates on.
func bitsFromBytes(raw []byte) bits.String { return bits.FromBytes(raw) }

// parseIPv4Literal parses a dotted-quad or bare uint32 into the
// host-order value the codec's source_ip/destination_ip fields hold.
func parseIPv4Literal(s string) (uint64, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("expected dotted-quad or integer, got %q", s)
		}
		return v, nil
	}
	var out uint64
	for _, p := range parts {
		octet, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid octet %q", p)
		}
		out = out<<8 | octet
	}
	return out, nil
}

func formatIPv4Literal(v uint64) string {
	return fmt.Sprintf("%d.%d.%d.%d", (v>>24)&0xFF, (v>>16)&0xFF, (v>>8)&0xFF, v&0xFF)
}

func printIPv4(w io.Writer, d protocols.IPv4Datagram) {
	fmt.Fprintln(w, "ipv4 datagram:")
	printField(w, "version", d.Version)
	printField(w, "header_length", d.HeaderLength)
	printField(w, "total_length", d.TotalLength)
	printField(w, "ttl", d.TTL)
	printField(w, "protocol", d.Protocol)
	printField(w, "source_ip", formatIPv4Literal(d.SourceIP))
	printField(w, "destination_ip", formatIPv4Literal(d.DestinationIP))
	printField(w, "options", hex.EncodeToString(d.Options))
	printField(w, "payload", hex.EncodeToString(d.Payload))
}

func printTelemetry(w io.Writer, f protocols.TelemetryFrame) {
	fmt.Fprintln(w, "telemetry frame:")
	printField(w, "sensor_id", f.SensorID)
	printField(w, "sample_count", f.SampleCount)
	printField(w, "samples", f.Samples)
}
