package bitcraft

import "fmt"

// ToHexDump renders a bitstring's bytes as space-separated uppercase
// hex pairs, for log lines and CLI output.
func ToHexDump(s BitString) string {
	if s.IsEmpty() {
		return ""
	}
	data := s.Bytes()
	out := make([]byte, 0, len(data)*3)
	for i, b := range data {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, []byte(fmt.Sprintf("%02X", b))...)
	}
	return string(out)
}

// ToBinaryString renders a bitstring as a run of '0'/'1' characters,
// one per bit (not padded to a byte boundary).
func ToBinaryString(s BitString) string {
	out := make([]byte, 0, s.Length())
	data := s.Bytes()
	for i := uint(0); i < s.Length(); i++ {
		byteIdx := i / 8
		bitIdx := 7 - (i % 8)
		if data[byteIdx]&(1<<bitIdx) != 0 {
			out = append(out, '1')
		} else {
			out = append(out, '0')
		}
	}
	return string(out)
}
