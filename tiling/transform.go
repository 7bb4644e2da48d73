package tiling

import "fmt"

// Surface binds a tile geometry to a concrete plane: its stride, pixel size
// and swizzle mode. A Surface is validated once by NewSurface; its methods
// never fail afterward.
//
// Offsets are byte offsets from the start of the plane.
type Surface struct {
	geom    Geometry
	stride  uint32
	cpp     uint32
	swizzle Swizzle
}

// NewSurface validates and returns a Surface.
//
// The swizzle mode must be one of the implemented modes, Tile4 surfaces must
// use SwizzleNone, and the stride must be a positive multiple of the tile
// width.
func NewSurface(geom Geometry, stride, bpp uint32, swizzle Swizzle) (Surface, error) {
	if !geom.Mode.IsValid() || geom.Mode == Linear || geom.WidthBytes == 0 || geom.Height == 0 {
		return Surface{}, fmt.Errorf("%w: geometry %v", ErrUnsupportedConfiguration, geom)
	}
	if bpp == 0 || bpp%8 != 0 {
		return Surface{}, fmt.Errorf("%w: %d bpp", ErrUnsupportedConfiguration, bpp)
	}
	if !swizzle.Supported() {
		return Surface{}, fmt.Errorf("%w: swizzle %s", ErrUnsupportedConfiguration, swizzle)
	}
	if geom.Mode == Tile4 && (geom.WidthBytes != tile4WidthBytes || geom.Height != tile4Height) {
		return Surface{}, fmt.Errorf("%w: tile4 geometry %v", ErrUnsupportedConfiguration, geom)
	}
	if geom.Mode == Tile4 && swizzle != SwizzleNone {
		return Surface{}, fmt.Errorf("%w: tile4 with swizzle %s", ErrUnsupportedConfiguration, swizzle)
	}
	if stride == 0 || stride%geom.WidthBytes != 0 {
		return Surface{}, fmt.Errorf("%w: stride %d, tile width %d", ErrUnalignedStride, stride, geom.WidthBytes)
	}
	if geom.YMajor() && geom.WidthBytes%geom.OWordBytes != 0 {
		return Surface{}, fmt.Errorf("%w: tile width %d not a multiple of oword %d",
			ErrUnsupportedConfiguration, geom.WidthBytes, geom.OWordBytes)
	}

	return Surface{
		geom:    geom,
		stride:  stride,
		cpp:     bpp / 8,
		swizzle: swizzle,
	}, nil
}

// Geometry returns the tile geometry of the surface.
func (s Surface) Geometry() Geometry {
	return s.geom
}

// Stride returns the stride in bytes.
func (s Surface) Stride() uint32 {
	return s.stride
}

// BytesPerPixel returns the pixel size in bytes.
func (s Surface) BytesPerPixel() uint32 {
	return s.cpp
}

// Swizzle returns the swizzle mode.
func (s Surface) Swizzle() Swizzle {
	return s.swizzle
}

// TilesPerRow returns the number of tiles in one tile row.
func (s Surface) TilesPerRow() uint32 {
	return s.stride / s.geom.WidthBytes
}

// Offset returns the byte offset of pixel (x, y).
func (s Surface) Offset(x, y uint32) uint64 {
	xb := uint64(x) * uint64(s.cpp)

	if s.geom.Mode == Tile4 {
		return tile4Offset(xb, uint64(y), uint64(s.stride))
	}

	var pos uint64
	if s.geom.YMajor() {
		ow := uint64(s.geom.OWordBytes)
		// The tile is a Y-major grid of OWords: walk it in OWord units, then
		// add back the byte inside the OWord.
		n := tileWalk(xb/ow, uint64(y), uint64(s.geom.WidthBytes)/ow,
			uint64(s.geom.Height), uint64(s.stride)/ow, false)
		pos = n*ow + xb%ow
	} else {
		pos = tileWalk(xb, uint64(y), uint64(s.geom.WidthBytes),
			uint64(s.geom.Height), uint64(s.stride), true)
	}

	return s.swizzle.Apply(pos)
}

// PixelIndex returns Offset(x, y) in units of whole pixels.
func (s Surface) PixelIndex(x, y uint32) uint64 {
	return s.Offset(x, y) / uint64(s.cpp)
}

// Coord returns the pixel coordinate stored at byte offset off.
// It is the exact inverse of Offset for every pixel of the surface.
// Offsets inside a pixel map to that pixel.
func (s Surface) Coord(off uint64) (x, y uint32) {
	if s.geom.Mode == Tile4 {
		xb, yy := tile4Coord(off, uint64(s.stride))
		return uint32(xb / uint64(s.cpp)), uint32(yy)
	}

	pos := s.swizzle.Apply(off)

	var xb, yy uint64
	if s.geom.YMajor() {
		ow := uint64(s.geom.OWordBytes)
		xo, yo := tileUnwalk(pos/ow, uint64(s.geom.WidthBytes)/ow,
			uint64(s.geom.Height), uint64(s.stride)/ow, false)
		xb = xo*ow + pos%ow
		yy = yo
	} else {
		xb, yy = tileUnwalk(pos, uint64(s.geom.WidthBytes),
			uint64(s.geom.Height), uint64(s.stride), true)
	}

	return uint32(xb / uint64(s.cpp)), uint32(yy)
}

// tileWalk returns the position of unit (x, y) in a surface made of tiles
// that are tw units wide and th rows tall, with line units per tile row.
// X-major tiles store rows inside the tile; Y-major tiles store columns.
func tileWalk(x, y, tw, th, line uint64, xmajor bool) uint64 {
	tilesPerLine := line / tw
	tileSize := tw * th

	tileN := (y/th)*tilesPerLine + x/tw
	xo := x % tw
	yo := y % th

	var off uint64
	if xmajor {
		off = yo*tw + xo
	} else {
		off = xo*th + yo
	}

	return tileN*tileSize + off
}

// tileUnwalk inverts tileWalk.
func tileUnwalk(pos, tw, th, line uint64, xmajor bool) (x, y uint64) {
	tilesPerLine := line / tw
	tileSize := tw * th

	tileN := pos / tileSize
	off := pos % tileSize

	var xo, yo uint64
	if xmajor {
		yo = off / tw
		xo = off % tw
	} else {
		yo = off % th
		xo = off / th
	}

	x = (tileN%tilesPerLine)*tw + xo
	y = (tileN/tilesPerLine)*th + yo
	return x, y
}

// LinearToTiled returns the byte offset of pixel (x, y) in a tiled surface.
func LinearToTiled(x, y, stride, bpp uint32, geom Geometry, swizzle Swizzle) (uint64, error) {
	s, err := NewSurface(geom, stride, bpp, swizzle)
	if err != nil {
		return 0, err
	}
	return s.Offset(x, y), nil
}

// TiledToLinear returns the pixel coordinate stored at byte offset off in a
// tiled surface.
func TiledToLinear(off uint64, stride, bpp uint32, geom Geometry, swizzle Swizzle) (x, y uint32, err error) {
	s, err := NewSurface(geom, stride, bpp, swizzle)
	if err != nil {
		return 0, 0, err
	}
	x, y = s.Coord(off)
	return x, y, nil
}
