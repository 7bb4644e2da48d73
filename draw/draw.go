// Package draw fills rectangles of framebuffer planes through a layout plan.
//
// Writes go through one of two primitives: a Mapping, a byte-addressable
// view of the whole buffer, or an io.WriterAt, where every call has a fixed
// cost. Tiled planes are addressed through tiling.Surface; with a WriterAt
// the tiled plane is walked in memory order and contiguous runs inside the
// rectangle are coalesced into single writes.
package draw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/fblayout"
	"github.com/gogpu/fblayout/tiling"
)

// Common errors for draw operations.
var (
	// ErrUnsupportedBPP is returned for planes whose pixels are not 8, 16,
	// 32 or 64 bits wide.
	ErrUnsupportedBPP = errors.New("draw: unsupported bits per pixel")

	// ErrOutOfBounds is returned when a rectangle or pixel lies outside
	// the plane.
	ErrOutOfBounds = errors.New("draw: coordinates out of bounds")

	// ErrNoPrimitive is returned when a target has neither a Mapping nor
	// a Writer, or lacks the primitive an operation needs.
	ErrNoPrimitive = errors.New("draw: target has no usable write primitive")
)

// Mapping is a byte-addressable view of a whole framebuffer.
type Mapping interface {
	// Bytes returns the mapped buffer. Offsets are buffer offsets as
	// found in the layout.
	Bytes() []byte
}

// Target binds a plane of a layout to a write primitive.
// Exactly one of Mapping and Writer is used; Mapping wins if both are set.
type Target struct {
	Layout  *fblayout.Layout
	Plane   int
	Swizzle tiling.Swizzle

	Mapping Mapping
	Writer  io.WriterAt
}

// plane is the resolved form of a target.
type plane struct {
	fblayout.Plane
	cpp     uint32
	surface tiling.Surface
	tiled   bool
}

func (t Target) resolve() (plane, error) {
	if t.Layout == nil || t.Plane < 0 || t.Plane >= len(t.Layout.Planes) {
		return plane{}, fmt.Errorf("%w: plane %d", fblayout.ErrPlaneOutOfRange, t.Plane)
	}
	p := plane{Plane: t.Layout.Planes[t.Plane]}
	switch p.BPP {
	case 8, 16, 32, 64:
		p.cpp = p.BPP / 8
	default:
		return plane{}, fmt.Errorf("%w: %d", ErrUnsupportedBPP, p.BPP)
	}
	if p.Stride < p.MinStride() {
		return plane{}, fmt.Errorf("%w: stride %d shorter than a %d byte row", ErrOutOfBounds, p.Stride, p.MinStride())
	}

	s, err := t.Layout.Surface(t.Plane, t.Swizzle)
	switch {
	case errors.Is(err, tiling.ErrLinear):
	case err != nil:
		return plane{}, err
	default:
		p.surface = s
		p.tiled = true
	}
	return p, nil
}

// offset returns the buffer offset of pixel (x, y).
func (p plane) offset(x, y uint32) uint64 {
	if p.tiled {
		return p.Offset + p.surface.Offset(x, y)
	}
	return p.Offset + uint64(y)*uint64(p.Stride) + uint64(x)*uint64(p.cpp)
}

func (p plane) bounds() image.Rectangle {
	return image.Rect(0, 0, int(p.Width), int(p.Height))
}

// putPixel stores the low cpp bytes of v little-endian.
func putPixel(b []byte, cpp uint32, v uint64) {
	switch cpp {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(b, v)
	}
}

func getPixel(b []byte, cpp uint32) uint64 {
	switch cpp {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

// FillRect sets every pixel of r in the target plane to value. The low
// bits of value hold the raw pixel in the plane's memory order.
func FillRect(t Target, r image.Rectangle, value uint64) error {
	p, err := t.resolve()
	if err != nil {
		return err
	}
	if r.Empty() {
		return nil
	}
	if !r.In(p.bounds()) {
		return fmt.Errorf("%w: %v outside %v", ErrOutOfBounds, r, p.bounds())
	}

	switch {
	case t.Mapping != nil:
		return fillMapped(t.Mapping.Bytes(), p, r, value)
	case t.Writer != nil:
		if p.tiled {
			return fillTiledWriter(t.Writer, p, r, value)
		}
		return fillLinearWriter(t.Writer, p, r, value)
	default:
		return ErrNoPrimitive
	}
}

func fillMapped(buf []byte, p plane, r image.Rectangle, value uint64) error {
	if end := p.End(); uint64(len(buf)) < end {
		return fmt.Errorf("%w: mapping of %d bytes, plane ends at %d", ErrOutOfBounds, len(buf), end)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if !p.tiled {
			off := p.offset(uint32(r.Min.X), uint32(y))
			row := buf[off : off+uint64(r.Dx())*uint64(p.cpp)]
			for i := 0; i < len(row); i += int(p.cpp) {
				putPixel(row[i:], p.cpp, value)
			}
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			putPixel(buf[p.offset(uint32(x), uint32(y)):], p.cpp, value)
		}
	}
	return nil
}

// WritePixel stores value at (x, y) of the target plane.
func WritePixel(t Target, x, y int, value uint64) error {
	return FillRect(t, image.Rect(x, y, x+1, y+1), value)
}

// ReadPixel loads the pixel at (x, y) of the target plane. The target needs
// a Mapping or a Writer that also implements io.ReaderAt.
func ReadPixel(t Target, x, y int) (uint64, error) {
	p, err := t.resolve()
	if err != nil {
		return 0, err
	}
	if !image.Pt(x, y).In(p.bounds()) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	off := p.offset(uint32(x), uint32(y))

	if t.Mapping != nil {
		buf := t.Mapping.Bytes()
		if off+uint64(p.cpp) > uint64(len(buf)) {
			return 0, fmt.Errorf("%w: offset %d beyond mapping", ErrOutOfBounds, off)
		}
		return getPixel(buf[off:], p.cpp), nil
	}
	ra, ok := t.Writer.(io.ReaderAt)
	if !ok {
		return 0, ErrNoPrimitive
	}
	var px [8]byte
	if _, err := ra.ReadAt(px[:p.cpp], int64(off)); err != nil {
		return 0, err
	}
	return getPixel(px[:], p.cpp), nil
}
