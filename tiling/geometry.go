// Package tiling maps linear pixel coordinates to byte offsets inside
// GPU-tiled surfaces and back.
//
// The package covers the X, Y, Yf and Tile4 layouts used by several
// generations of Intel graphics hardware, including bit-6 address swizzling.
// Tile dimensions are resolved once into a Geometry value; a single generic
// tile walk is then parameterized by that value, so per-generation behavior
// is data rather than code.
//
// All functions are pure and safe for concurrent use.
package tiling

import (
	"errors"
	"fmt"
)

// Common errors for tiling operations.
var (
	// ErrUnsupportedConfiguration is returned for tiling, bpp or swizzle
	// combinations that are not implemented.
	ErrUnsupportedConfiguration = errors.New("tiling: unsupported configuration")

	// ErrLinear is returned when a geometry is requested for a linear surface.
	// Linear surfaces are addressed as row*stride + x*cpp by the caller.
	ErrLinear = errors.New("tiling: linear surfaces have no tile geometry")

	// ErrUnalignedStride is returned when a stride is not a positive multiple
	// of the tile width.
	ErrUnalignedStride = errors.New("tiling: stride is not a multiple of the tile width")
)

// Mode is a tiling layout.
type Mode uint8

const (
	// Linear stores rows contiguously with no tiling.
	Linear Mode = iota

	// X is the legacy X-major tiling (rows of bytes inside a tile).
	X

	// Y is the Y-major tiling of OWord columns.
	Y

	// Yf is the 4 KiB "standard" Y tiling whose shape depends on bpp.
	Yf

	// Tile4 is the 128x32 tiling built from an 8x8 grid of 64-byte subtiles.
	Tile4

	modeCount
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case X:
		return "x"
	case Y:
		return "y"
	case Yf:
		return "yf"
	case Tile4:
		return "4"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// IsValid returns true if the mode is a known tiling mode.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// Generation selects the hardware family whose tile shapes apply.
type Generation uint8

const (
	// Gen2 is the oldest family: X and Y tiles are both 128 bytes x 16 rows.
	Gen2 Generation = iota

	// Gen3_915 is the 915G/915GM family whose Y tiles are 512 bytes x 8 rows.
	Gen3_915

	// Gen4Plus covers i945 and everything later.
	Gen4Plus
)

// String returns a string representation of the generation.
func (g Generation) String() string {
	switch g {
	case Gen2:
		return "gen2"
	case Gen3_915:
		return "gen3-915"
	case Gen4Plus:
		return "gen4+"
	default:
		return fmt.Sprintf("Generation(%d)", uint8(g))
	}
}

// Tile size constants shared by the resolver and the Tile4 walk.
const (
	// OWordBytes is the size of an OWord, the granule of the Y-major walk.
	OWordBytes = 16

	// PageBytes is the size of a 4 KiB tile.
	PageBytes = 4096
)

// Geometry is a resolved tile shape. It is immutable once returned by Resolve.
type Geometry struct {
	// Mode is the tiling mode this geometry was resolved for.
	Mode Mode

	// WidthBytes is the tile width in bytes.
	WidthBytes uint32

	// Height is the tile height in rows.
	Height uint32

	// OWordBytes is the column granule of a Y-major walk in bytes.
	// Zero means the tile is walked X-major (row by row).
	OWordBytes uint32
}

// SizeBytes returns the number of bytes in one tile.
func (g Geometry) SizeBytes() uint64 {
	return uint64(g.WidthBytes) * uint64(g.Height)
}

// YMajor reports whether the tile is walked in OWord columns.
func (g Geometry) YMajor() bool {
	return g.OWordBytes != 0
}

// String returns a short description such as "x 512x8".
func (g Geometry) String() string {
	if g.YMajor() {
		return fmt.Sprintf("%s %dx%d/ow%d", g.Mode, g.WidthBytes, g.Height, g.OWordBytes)
	}
	return fmt.Sprintf("%s %dx%d", g.Mode, g.WidthBytes, g.Height)
}

// Resolve returns the tile geometry for mode at the given bits per pixel on
// hardware generation gen.
//
// X tiles are 128x16 on Gen2 and 512x8 later; bpp does not matter. Y tiles
// are 128x16 (OWord 8) on Gen2, 512x8 (OWord 32) on Gen3_915 and 128x32
// (OWord 16) later. Yf tiles depend on bpp. Tile4 is always 128x32.
func Resolve(mode Mode, bpp uint32, gen Generation) (Geometry, error) {
	if mode == Linear {
		return Geometry{}, ErrLinear
	}
	if bpp == 0 || bpp%8 != 0 {
		return Geometry{}, fmt.Errorf("%w: %s tiling with %d bpp", ErrUnsupportedConfiguration, mode, bpp)
	}

	switch mode {
	case X:
		if gen == Gen2 {
			return Geometry{Mode: X, WidthBytes: 128, Height: 16}, nil
		}
		return Geometry{Mode: X, WidthBytes: 512, Height: 8}, nil

	case Y:
		switch gen {
		case Gen2:
			return Geometry{Mode: Y, WidthBytes: 128, Height: 16, OWordBytes: 8}, nil
		case Gen3_915:
			return Geometry{Mode: Y, WidthBytes: 512, Height: 8, OWordBytes: 32}, nil
		default:
			return Geometry{Mode: Y, WidthBytes: 128, Height: 32, OWordBytes: OWordBytes}, nil
		}

	case Yf:
		switch bpp {
		case 8:
			return Geometry{Mode: Yf, WidthBytes: 64, Height: 64, OWordBytes: OWordBytes}, nil
		case 16, 32:
			return Geometry{Mode: Yf, WidthBytes: 128, Height: 32, OWordBytes: OWordBytes}, nil
		case 64, 128:
			return Geometry{Mode: Yf, WidthBytes: 256, Height: 16, OWordBytes: OWordBytes}, nil
		default:
			return Geometry{}, fmt.Errorf("%w: yf tiling with %d bpp", ErrUnsupportedConfiguration, bpp)
		}

	case Tile4:
		return Geometry{Mode: Tile4, WidthBytes: tile4WidthBytes, Height: tile4Height, OWordBytes: OWordBytes}, nil

	default:
		return Geometry{}, fmt.Errorf("%w: %s", ErrUnsupportedConfiguration, mode)
	}
}
