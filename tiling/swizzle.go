package tiling

import (
	"fmt"

	"github.com/gogpu/fblayout/internal/align"
)

// Swizzle is a bit-6 address swizzling mode.
//
// The values mirror the kernel's I915_BIT_6_SWIZZLE_* constants.
type Swizzle uint8

const (
	// SwizzleNone leaves addresses unchanged.
	SwizzleNone Swizzle = 0
	// Swizzle9 XORs bit 6 with bit 9.
	Swizzle9 Swizzle = 1
	// Swizzle9_10 XORs bit 6 with bits 9 and 10.
	Swizzle9_10 Swizzle = 2
	// Swizzle9_11 XORs bit 6 with bits 9 and 11.
	Swizzle9_11 Swizzle = 3
	// Swizzle9_10_11 XORs bit 6 with bits 9, 10 and 11.
	Swizzle9_10_11 Swizzle = 4
	// SwizzleUnknown is reported when the kernel cannot tell the mode.
	SwizzleUnknown Swizzle = 5
	// Swizzle9_17 depends on physical address bit 17 and cannot be
	// reproduced from a buffer offset.
	Swizzle9_17 Swizzle = 6
	// Swizzle9_10_17 depends on physical address bit 17.
	Swizzle9_10_17 Swizzle = 7
)

// String returns a string representation of the swizzle mode.
func (s Swizzle) String() string {
	switch s {
	case SwizzleNone:
		return "none"
	case Swizzle9:
		return "9"
	case Swizzle9_10:
		return "9_10"
	case Swizzle9_11:
		return "9_11"
	case Swizzle9_10_11:
		return "9_10_11"
	case Swizzle9_17:
		return "9_17"
	case Swizzle9_10_17:
		return "9_10_17"
	case SwizzleUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Swizzle(%d)", uint8(s))
	}
}

// Supported reports whether addresses can be swizzled in this mode.
func (s Swizzle) Supported() bool {
	return s <= Swizzle9_10_11
}

// Apply swizzles addr. The XOR only ever touches bit 6, and bit 6 is never a
// source bit, so Apply is its own inverse.
//
// Apply panics on unsupported modes; NewSurface rejects them up front.
func (s Swizzle) Apply(addr uint64) uint64 {
	switch s {
	case SwizzleNone:
		return addr
	case Swizzle9:
		return addr ^ swizzleBit(9, addr)
	case Swizzle9_10:
		return addr ^ swizzleBit(9, addr) ^ swizzleBit(10, addr)
	case Swizzle9_11:
		return addr ^ swizzleBit(9, addr) ^ swizzleBit(11, addr)
	case Swizzle9_10_11:
		return addr ^ swizzleBit(9, addr) ^ swizzleBit(10, addr) ^ swizzleBit(11, addr)
	default:
		panic(fmt.Sprintf("tiling: swizzle mode %s applied", s))
	}
}

// swizzleBit moves bit n of addr onto bit 6.
func swizzleBit(n uint, addr uint64) uint64 {
	return align.BitOf(addr, n) << 6
}
