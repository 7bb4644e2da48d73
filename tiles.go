package fblayout

import (
	"fmt"
	"math/bits"

	"github.com/gogpu/fblayout/modifier"
	"github.com/gogpu/fblayout/tiling"
)

// TileSizer reports the tile shape a vendor uses for a modifier.
//
// Implementations must be pure and safe for concurrent use.
type TileSizer interface {
	// TileSize returns the tile width in bytes and height in rows of
	// modifier m at bpp bits per pixel. Linear surfaces report the row
	// granularity as a 1-row tile.
	TileSize(m modifier.Modifier, bpp uint32) (widthBytes, height uint32, err error)

	// StrideAlign returns a stride alignment that replaces the tile width
	// for m, or 0 when the tile width applies. yuv is set for planes of
	// YUV formats.
	StrideAlign(m modifier.Modifier, yuv bool) uint32
}

// IntelTiles sizes Intel X, Y, Yf and Tile4 tiles through tiling.Resolve.
// Linear rows are padded to 64 bytes.
type IntelTiles struct {
	Generation tiling.Generation
}

// TileSize implements TileSizer.
func (t IntelTiles) TileSize(m modifier.Modifier, bpp uint32) (uint32, uint32, error) {
	mode, err := m.Tiling()
	if err != nil {
		return 0, 0, err
	}
	if mode == tiling.Linear {
		return 64, 1, nil
	}
	g, err := tiling.Resolve(mode, bpp, t.Generation)
	if err != nil {
		return 0, 0, err
	}
	return g.WidthBytes, g.Height, nil
}

// StrideAlign implements TileSizer.
func (IntelTiles) StrideAlign(modifier.Modifier, bool) uint32 { return 0 }

// AMDTiles sizes the 64 KiB swizzled tiles AMD uses for every non-linear
// modifier.
type AMDTiles struct{}

// amdTileLog2 is log2 of the AMD tile size in bytes.
const amdTileLog2 = 16

// TileSize implements TileSizer. The tile is as square as possible in
// pixels: 2^w x 2^h pixels with w = ceil(n/2), h = floor(n/2) where
// n = 16 - log2(bytes per pixel).
func (AMDTiles) TileSize(m modifier.Modifier, bpp uint32) (uint32, uint32, error) {
	if m == modifier.Linear {
		return 1, 1, nil
	}
	if !modifier.IsAMD(m) {
		return 0, 0, fmt.Errorf("%w: %v on amd", modifier.ErrUnsupportedModifier, m)
	}
	cpp := bpp / 8
	if bpp%8 != 0 || cpp == 0 || cpp&(cpp-1) != 0 {
		return 0, 0, fmt.Errorf("%w: amd tiling with %d bpp", tiling.ErrUnsupportedConfiguration, bpp)
	}
	pixelLog2 := amdTileLog2 - bits.TrailingZeros32(cpp)
	wlog := (pixelLog2 + 1) / 2
	hlog := pixelLog2 - wlog
	return cpp << wlog, 1 << hlog, nil
}

// StrideAlign implements TileSizer. Chroma planes must start on 256-byte
// boundaries, which is guaranteed by aligning the luma stride.
func (AMDTiles) StrideAlign(_ modifier.Modifier, yuv bool) uint32 {
	if yuv {
		return 256
	}
	return 0
}

// BroadcomTiles sizes VC4 T-tiles and SAND column layouts.
type BroadcomTiles struct{}

// TileSize implements TileSizer. SAND tiles are one column wide and as
// tall as the column height parameter of the modifier.
func (BroadcomTiles) TileSize(m modifier.Modifier, _ uint32) (uint32, uint32, error) {
	if m == modifier.Linear {
		return 1, 1, nil
	}
	if m.Vendor() != modifier.VendorBroadcom {
		return 0, 0, fmt.Errorf("%w: %v on broadcom", modifier.ErrUnsupportedModifier, m)
	}

	var width uint32
	switch modifier.BroadcomBase(m) {
	case modifier.BroadcomVC4TTiled:
		return 128, 32, nil
	case modifier.BroadcomSAND32:
		width = 32
	case modifier.BroadcomSAND64:
		width = 64
	case modifier.BroadcomSAND128:
		width = 128
	case modifier.BroadcomSAND256:
		width = 256
	default:
		return 0, 0, fmt.Errorf("%w: %v", modifier.ErrUnsupportedModifier, m)
	}

	height := modifier.BroadcomParam(m)
	if height == 0 || height > 1<<31 {
		return 0, 0, fmt.Errorf("%w: sand column height %d", tiling.ErrUnsupportedConfiguration, height)
	}
	return width, uint32(height), nil
}

// StrideAlign implements TileSizer.
func (BroadcomTiles) StrideAlign(modifier.Modifier, bool) uint32 { return 0 }

// NouveauChipsetGV100 is the first NVIDIA chipset with 47-bit addressing.
const NouveauChipsetGV100 = 0x140

// NVIDIATiles sizes NVIDIA block-linear tiles: one 64-byte GOB wide and a
// block of GOBs tall.
type NVIDIATiles struct {
	// Chipset selects the linear pitch alignment.
	Chipset uint32
}

// maxNVIDIABlockHeightLog2 is the tallest block the display engine scans.
const maxNVIDIABlockHeightLog2 = 5

// TileSize implements TileSizer. Legacy 16BX2 modifiers are canonicalized
// first.
func (NVIDIATiles) TileSize(m modifier.Modifier, _ uint32) (uint32, uint32, error) {
	if m == modifier.Linear {
		return 1, 1, nil
	}
	if !modifier.IsNVIDIABlockLinear(m) {
		return 0, 0, fmt.Errorf("%w: %v on nvidia", modifier.ErrUnsupportedModifier, m)
	}
	m = modifier.CanonicalizeNVIDIA(m)
	if m.Value()&0xf > maxNVIDIABlockHeightLog2 {
		return 0, 0, fmt.Errorf("%w: block height log2 %d", modifier.ErrUnsupportedModifier, m.Value()&0xf)
	}
	return 64, modifier.NVIDIABlockHeight(m), nil
}

// StrideAlign implements TileSizer. Linear pitches are 64-byte aligned on
// GV100 and later and 256-byte aligned before.
func (t NVIDIATiles) StrideAlign(m modifier.Modifier, _ bool) uint32 {
	if m != modifier.Linear {
		return 0
	}
	if t.Chipset >= NouveauChipsetGV100 {
		return 64
	}
	return 256
}

// LinearTiles supports only linear buffers with byte granularity.
type LinearTiles struct{}

// TileSize implements TileSizer.
func (LinearTiles) TileSize(m modifier.Modifier, _ uint32) (uint32, uint32, error) {
	if m != modifier.Linear {
		return 0, 0, fmt.Errorf("%w: %v", modifier.ErrUnsupportedModifier, m)
	}
	return 1, 1, nil
}

// StrideAlign implements TileSizer.
func (LinearTiles) StrideAlign(modifier.Modifier, bool) uint32 { return 0 }
