// Package modifier maps 64-bit DRM format modifiers to tiling modes and
// compression kinds.
//
// Values are bit-exact with the kernel's drm_fourcc.h: the top 8 bits carry
// the vendor and the low 56 bits a vendor-defined value. Only the Intel
// modifiers and LINEAR decode to a tiling mode; the Broadcom, NVIDIA and AMD
// helpers exist so that vendor tile sizers can recognise their own values.
package modifier

import (
	"errors"
	"fmt"
)

// ErrUnsupportedModifier is returned for modifiers outside the supported
// table. Callers should skip or fall back to another modifier.
var ErrUnsupportedModifier = errors.New("modifier: unsupported modifier")

// Modifier is a DRM framebuffer modifier.
type Modifier uint64

// Vendor is the vendor namespace stored in the top byte of a modifier.
type Vendor uint8

// Vendor namespaces.
const (
	VendorNone     Vendor = 0
	VendorIntel    Vendor = 1
	VendorAMD      Vendor = 2
	VendorNVIDIA   Vendor = 3
	VendorSamsung  Vendor = 4
	VendorQCOM     Vendor = 5
	VendorVivante  Vendor = 6
	VendorBroadcom Vendor = 7
	VendorARM      Vendor = 8
)

var vendorNames = [...]string{
	VendorNone:     "none",
	VendorIntel:    "intel",
	VendorAMD:      "amd",
	VendorNVIDIA:   "nvidia",
	VendorSamsung:  "samsung",
	VendorQCOM:     "qcom",
	VendorVivante:  "vivante",
	VendorBroadcom: "broadcom",
	VendorARM:      "arm",
}

// String returns the lower-case vendor name.
func (v Vendor) String() string {
	if int(v) < len(vendorNames) {
		return vendorNames[v]
	}
	return fmt.Sprintf("Vendor(%d)", uint8(v))
}

// ParseVendor returns the vendor with the given lower-case name.
func ParseVendor(name string) (Vendor, error) {
	for v, n := range vendorNames {
		if n == name {
			return Vendor(v), nil
		}
	}
	return VendorNone, fmt.Errorf("modifier: unknown vendor %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (v Vendor) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Vendor) UnmarshalText(text []byte) error {
	p, err := ParseVendor(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

const valueMask = 0x00ffffffffffffff

// Make builds a modifier from a vendor and a 56-bit value.
func Make(vendor Vendor, value uint64) Modifier {
	return Modifier(uint64(vendor)<<56 | value&valueMask)
}

// Vendor returns the vendor namespace of m.
func (m Modifier) Vendor() Vendor {
	return Vendor(m >> 56)
}

// Value returns the vendor-defined low 56 bits of m.
func (m Modifier) Value() uint64 {
	return uint64(m) & valueMask
}

// Generic modifiers.
const (
	Linear  Modifier = 0
	Invalid Modifier = valueMask
)

// Intel modifiers.
const (
	IntelX             = Modifier(uint64(VendorIntel)<<56 | 1)
	IntelY             = Modifier(uint64(VendorIntel)<<56 | 2)
	IntelYf            = Modifier(uint64(VendorIntel)<<56 | 3)
	IntelYCCS          = Modifier(uint64(VendorIntel)<<56 | 4)
	IntelYfCCS         = Modifier(uint64(VendorIntel)<<56 | 5)
	IntelYGen12RCCCS   = Modifier(uint64(VendorIntel)<<56 | 6)
	IntelYGen12MCCCS   = Modifier(uint64(VendorIntel)<<56 | 7)
	IntelYGen12RCCCSCC = Modifier(uint64(VendorIntel)<<56 | 8)
	Intel4             = Modifier(uint64(VendorIntel)<<56 | 9)
	Intel4DG2RCCCS     = Modifier(uint64(VendorIntel)<<56 | 10)
	Intel4DG2MCCCS     = Modifier(uint64(VendorIntel)<<56 | 11)
	Intel4DG2RCCCSCC   = Modifier(uint64(VendorIntel)<<56 | 12)
	Intel4MTLRCCCS     = Modifier(uint64(VendorIntel)<<56 | 13)
	Intel4MTLMCCCS     = Modifier(uint64(VendorIntel)<<56 | 14)
	Intel4MTLRCCCSCC   = Modifier(uint64(VendorIntel)<<56 | 15)
	Intel4LNLCCS       = Modifier(uint64(VendorIntel)<<56 | 16)
	Intel4BMGCCS       = Modifier(uint64(VendorIntel)<<56 | 17)
)

// Broadcom modifiers. The SAND modifiers carry a column height parameter,
// see BroadcomParam.
const (
	BroadcomVC4TTiled = Modifier(uint64(VendorBroadcom)<<56 | 1)
	BroadcomSAND32    = Modifier(uint64(VendorBroadcom)<<56 | 2)
	BroadcomSAND64    = Modifier(uint64(VendorBroadcom)<<56 | 3)
	BroadcomSAND128   = Modifier(uint64(VendorBroadcom)<<56 | 4)
	BroadcomSAND256   = Modifier(uint64(VendorBroadcom)<<56 | 5)
)

const broadcomParamMask = 0xffffffffffff

// BroadcomSAND returns a SAND modifier with the given column height.
// base must be one of the BroadcomSAND constants.
func BroadcomSAND(base Modifier, columnHeight uint64) Modifier {
	return Make(VendorBroadcom, base.Value()|(columnHeight&broadcomParamMask)<<8)
}

// BroadcomParam returns the parameter stored in bits 8..55 of a Broadcom
// modifier.
func BroadcomParam(m Modifier) uint64 {
	return (uint64(m) >> 8) & broadcomParamMask
}

// BroadcomBase strips the parameter from a Broadcom modifier.
func BroadcomBase(m Modifier) Modifier {
	return m &^ (broadcomParamMask << 8)
}

// NVIDIABlockLinear2D builds an NVIDIA block-linear modifier from its
// compression, sector layout, kind generation, page kind and block height
// log2 fields.
func NVIDIABlockLinear2D(c, s, g, k, h uint64) Modifier {
	return Make(VendorNVIDIA, 0x10|h&0xf|(k&0xff)<<12|(g&0x3)<<20|(s&0x1)<<22|(c&0x7)<<23)
}

// NVIDIA16BX2Block returns the legacy block-linear modifier with block height
// log2 v. Use CanonicalizeNVIDIA before comparing it against
// NVIDIABlockLinear2D values.
func NVIDIA16BX2Block(v uint64) Modifier {
	return Make(VendorNVIDIA, 0x10|v&0xf)
}

// IsNVIDIABlockLinear reports whether m is an NVIDIA block-linear modifier
// in either encoding.
func IsNVIDIABlockLinear(m Modifier) bool {
	return m.Vendor() == VendorNVIDIA && m.Value()&0x10 != 0
}

// CanonicalizeNVIDIA rewrites a legacy 16BX2 modifier into the kind-aware
// encoding. Other modifiers are returned unchanged.
func CanonicalizeNVIDIA(m Modifier) Modifier {
	if !IsNVIDIABlockLinear(m) || m&(0xff<<12) != 0 {
		return m
	}
	return m | 0xfe<<12
}

// NVIDIABlockHeight returns the block height in rows of a block-linear
// modifier: 2^h GOBs of 8 rows each.
func NVIDIABlockHeight(m Modifier) uint32 {
	return 8 << (uint64(m) & 0xf)
}

// IsAMD reports whether m is in the AMD vendor namespace.
func IsAMD(m Modifier) bool {
	return m.Vendor() == VendorAMD
}
