package modifier

import (
	"fmt"

	"github.com/gogpu/fblayout/tiling"
)

// Compression is the lossless compression scheme carried by a modifier.
type Compression uint8

// Compression kinds.
const (
	// CompressionNone is an uncompressed surface.
	CompressionNone Compression = iota

	// CompressionCCS is the skl-era render compression with a separate
	// control surface.
	CompressionCCS

	// CompressionRC is gen12+ render compression with an aux plane per
	// color plane.
	CompressionRC

	// CompressionRCClearColor is render compression with an extra clear
	// color plane.
	CompressionRCClearColor

	// CompressionMC is gen12+ media compression.
	CompressionMC

	// CompressionFlat is compression with implicit metadata that the CPU
	// never maps.
	CompressionFlat

	compressionCount
)

var compressionNames = [...]string{
	CompressionNone:         "none",
	CompressionCCS:          "ccs",
	CompressionRC:           "rc-ccs",
	CompressionRCClearColor: "rc-ccs-cc",
	CompressionMC:           "mc-ccs",
	CompressionFlat:         "flat-ccs",
}

// String returns the compression name.
func (c Compression) String() string {
	if c < compressionCount {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// Platform is the hardware family a compressed modifier is defined for.
// Uncompressed modifiers use PlatformAny.
type Platform uint8

// Platforms.
const (
	PlatformAny Platform = iota
	PlatformGen9
	PlatformGen12
	PlatformDG2
	PlatformMTL
	PlatformLNL
	PlatformBMG

	platformCount
)

var platformNames = [...]string{
	PlatformAny:   "any",
	PlatformGen9:  "gen9",
	PlatformGen12: "gen12",
	PlatformDG2:   "dg2",
	PlatformMTL:   "mtl",
	PlatformLNL:   "lnl",
	PlatformBMG:   "bmg",
}

// String returns the platform name.
func (p Platform) String() string {
	if p < platformCount {
		return platformNames[p]
	}
	return fmt.Sprintf("Platform(%d)", uint8(p))
}

// Descriptor is the decoded form of a modifier.
type Descriptor struct {
	Mode        tiling.Mode
	Compression Compression
	Platform    Platform
}

// String returns a compact form such as "Y/rc-ccs/gen12".
func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s/%s", d.Mode, d.Compression, d.Platform)
}

// entry is one row of the modifier table.
type entry struct {
	mod   Modifier
	desc  Descriptor
	name  string // kernel macro name
	short string // display name
}

// table lists every modifier Decode accepts. Descriptors are unique, which
// makes Encode the exact inverse of Decode.
var table = []entry{
	{Linear, Descriptor{tiling.Linear, CompressionNone, PlatformAny}, "DRM_FORMAT_MOD_LINEAR", "linear"},
	{IntelX, Descriptor{tiling.X, CompressionNone, PlatformAny}, "I915_FORMAT_MOD_X_TILED", "x"},
	{IntelY, Descriptor{tiling.Y, CompressionNone, PlatformAny}, "I915_FORMAT_MOD_Y_TILED", "y"},
	{IntelYf, Descriptor{tiling.Yf, CompressionNone, PlatformAny}, "I915_FORMAT_MOD_Yf_TILED", "yf"},
	{IntelYCCS, Descriptor{tiling.Y, CompressionCCS, PlatformGen9}, "I915_FORMAT_MOD_Y_TILED_CCS", "y-ccs"},
	{IntelYfCCS, Descriptor{tiling.Yf, CompressionCCS, PlatformGen9}, "I915_FORMAT_MOD_Yf_TILED_CCS", "yf-ccs"},
	{IntelYGen12RCCCS, Descriptor{tiling.Y, CompressionRC, PlatformGen12}, "I915_FORMAT_MOD_Y_TILED_GEN12_RC_CCS", "y-rc-ccs"},
	{IntelYGen12MCCCS, Descriptor{tiling.Y, CompressionMC, PlatformGen12}, "I915_FORMAT_MOD_Y_TILED_GEN12_MC_CCS", "y-mc-ccs"},
	{IntelYGen12RCCCSCC, Descriptor{tiling.Y, CompressionRCClearColor, PlatformGen12}, "I915_FORMAT_MOD_Y_TILED_GEN12_RC_CCS_CC", "y-rc-ccs-cc"},
	{Intel4, Descriptor{tiling.Tile4, CompressionNone, PlatformAny}, "I915_FORMAT_MOD_4_TILED", "4"},
	{Intel4DG2RCCCS, Descriptor{tiling.Tile4, CompressionRC, PlatformDG2}, "I915_FORMAT_MOD_4_TILED_DG2_RC_CCS", "4-rc-ccs"},
	{Intel4DG2MCCCS, Descriptor{tiling.Tile4, CompressionMC, PlatformDG2}, "I915_FORMAT_MOD_4_TILED_DG2_MC_CCS", "4-mc-ccs"},
	{Intel4DG2RCCCSCC, Descriptor{tiling.Tile4, CompressionRCClearColor, PlatformDG2}, "I915_FORMAT_MOD_4_TILED_DG2_RC_CCS_CC", "4-rc-ccs-cc"},
	{Intel4MTLRCCCS, Descriptor{tiling.Tile4, CompressionRC, PlatformMTL}, "I915_FORMAT_MOD_4_TILED_MTL_RC_CCS", "4-rc-ccs"},
	{Intel4MTLMCCCS, Descriptor{tiling.Tile4, CompressionMC, PlatformMTL}, "I915_FORMAT_MOD_4_TILED_MTL_MC_CCS", "4-mc-ccs"},
	{Intel4MTLRCCCSCC, Descriptor{tiling.Tile4, CompressionRCClearColor, PlatformMTL}, "I915_FORMAT_MOD_4_TILED_MTL_RC_CCS_CC", "4-rc-ccs-cc"},
	{Intel4LNLCCS, Descriptor{tiling.Tile4, CompressionFlat, PlatformLNL}, "I915_FORMAT_MOD_4_TILED_LNL_CCS", "4-rc-ccs"},
	{Intel4BMGCCS, Descriptor{tiling.Tile4, CompressionFlat, PlatformBMG}, "I915_FORMAT_MOD_4_TILED_BMG_CCS", "4-rc-ccs"},
}

func lookup(m Modifier) (*entry, bool) {
	for i := range table {
		if table[i].mod == m {
			return &table[i], true
		}
	}
	return nil, false
}

// Decode splits m into its tiling mode, compression kind and platform.
// It fails with ErrUnsupportedModifier for anything outside the Intel table
// and LINEAR.
func Decode(m Modifier) (Descriptor, error) {
	e, ok := lookup(m)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %#016x", ErrUnsupportedModifier, uint64(m))
	}
	return e.desc, nil
}

// Encode is the inverse of Decode.
func Encode(d Descriptor) (Modifier, error) {
	for i := range table {
		if table[i].desc == d {
			return table[i].mod, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %s", ErrUnsupportedModifier, d)
}

// Tiling returns the tiling mode of m.
func (m Modifier) Tiling() (tiling.Mode, error) {
	d, err := Decode(m)
	if err != nil {
		return tiling.Linear, err
	}
	return d.Mode, nil
}

// FromTiling returns the uncompressed modifier for a tiling mode.
func FromTiling(mode tiling.Mode) (Modifier, error) {
	return Encode(Descriptor{Mode: mode, Compression: CompressionNone, Platform: PlatformAny})
}

// IsMediaCCS reports whether m carries gen12+ media compression.
func IsMediaCCS(m Modifier) bool {
	return compressionOf(m) == CompressionMC
}

// HasClearColor reports whether m carries an explicit clear color plane.
func HasClearColor(m Modifier) bool {
	return compressionOf(m) == CompressionRCClearColor
}

// IsGen12CCS reports whether m is a gen12+ compression modifier with a
// separate aux plane layout. Flat compression is not included.
func IsGen12CCS(m Modifier) bool {
	switch compressionOf(m) {
	case CompressionRC, CompressionRCClearColor, CompressionMC:
		return true
	default:
		return false
	}
}

// IsCCS reports whether m requires compression aux planes on devices
// without flat CCS.
func IsCCS(m Modifier) bool {
	return IsGen12CCS(m) || compressionOf(m) == CompressionCCS
}

// IsFlatCCS reports whether m uses implicit compression metadata.
func IsFlatCCS(m Modifier) bool {
	return compressionOf(m) == CompressionFlat
}

func compressionOf(m Modifier) Compression {
	e, ok := lookup(m)
	if !ok {
		return CompressionNone
	}
	return e.desc.Compression
}

// Modifiers returns every modifier Decode accepts, in table order.
func Modifiers() []Modifier {
	out := make([]Modifier, len(table))
	for i := range table {
		out[i] = table[i].mod
	}
	return out
}
