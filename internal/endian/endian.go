// Package endian resolves the big/little/native endianness a segment
// was declared with against the host's actual byte order.
package endian

import "unsafe"

// Kind is one of Big, Little, or Native.
type Kind string

const (
	Big    Kind = "big"
	Little Kind = "little"
	Native Kind = "native"
)

// Valid reports whether k is one of the three recognized endian kinds.
func (k Kind) Valid() bool {
	switch k {
	case Big, Little, Native:
		return true
	default:
		return false
	}
}

// Resolve turns Native into whichever of Big/Little this host actually
// is; Big and Little pass through unchanged.
func (k Kind) Resolve() Kind {
	if k == Native {
		return hostOrder
	}
	return k
}

// IsLittle reports whether k resolves to Little on this host.
func (k Kind) IsLittle() bool {
	return k.Resolve() == Little
}

var hostOrder = detectHostOrder()

func detectHostOrder() Kind {
	var probe uint16 = 0x0102
	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x02 {
		return Little
	}
	return Big
}
