package fblayout

import (
	"github.com/gogpu/fblayout/modifier"
	"github.com/gogpu/fblayout/tiling"
)

// Device describes the hardware a buffer is planned for.
//
// The zero value is a vendor-neutral device with linear-only tiling.
type Device struct {
	// Name is an optional label, e.g. the profile name.
	Name string

	// Vendor selects the built-in tile sizer when Tiles is nil.
	Vendor modifier.Vendor

	// DisplayVersion is the Intel display IP version. Versions 2 and 3
	// use power-of-two strides and fence-sized allocations.
	DisplayVersion int

	// Is915 marks the 915G/915GM family, whose Y tiles are 512x8.
	Is915 bool

	// FlatCCS is set on devices where compression metadata is implicit
	// and never mapped as separate aux planes.
	FlatCCS bool

	// Xe is set for devices driven by the xe kernel driver. Buffer sizes
	// are rounded up to AllocAlignment.
	Xe bool

	// AllocAlignment is the minimum allocation granularity in bytes.
	// Zero disables the final rounding pass.
	AllocAlignment uint64

	// NouveauChipset is the NVIDIA chipset id, used to pick the linear
	// pitch alignment.
	NouveauChipset uint32

	// Tiles overrides the built-in tile sizer for Vendor.
	Tiles TileSizer
}

// Generation returns the tile geometry family of an Intel device.
func (d Device) Generation() tiling.Generation {
	switch {
	case d.DisplayVersion == 2:
		return tiling.Gen2
	case d.Is915:
		return tiling.Gen3_915
	default:
		return tiling.Gen4Plus
	}
}

// IsIntel reports whether d is an Intel device.
func (d Device) IsIntel() bool {
	return d.Vendor == modifier.VendorIntel
}

// legacyFencing reports whether tiled buffers need power-of-two strides and
// fence-sized allocations.
func (d Device) legacyFencing() bool {
	return d.IsIntel() && d.DisplayVersion > 0 && d.DisplayVersion <= 3
}

// TileSizer returns the tile sizer used for d.
func (d Device) TileSizer() TileSizer {
	if d.Tiles != nil {
		return d.Tiles
	}
	switch d.Vendor {
	case modifier.VendorIntel:
		return IntelTiles{Generation: d.Generation()}
	case modifier.VendorAMD:
		return AMDTiles{}
	case modifier.VendorBroadcom:
		return BroadcomTiles{}
	case modifier.VendorNVIDIA:
		return NVIDIATiles{Chipset: d.NouveauChipset}
	default:
		return LinearTiles{}
	}
}
