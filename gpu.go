package fblayout

import (
	"errors"
	"fmt"

	"github.com/gogpu/fblayout/modifier"
	"github.com/gogpu/gputypes"
)

// ErrNotCopyable is returned when a plane cannot be used as the source of
// a GPU buffer-to-texture copy.
var ErrNotCopyable = errors.New("fblayout: plane cannot be copied to a texture")

// CopyPitchAlignment is the BytesPerRow granularity WebGPU requires for
// buffer-texture copies.
const CopyPitchAlignment = 256

// TextureCopy describes a plane as the buffer side of a buffer-to-texture
// copy.
type TextureCopy struct {
	// Offset is the byte offset of the first row in the buffer.
	Offset uint64

	// BytesPerRow is the row pitch of the plane.
	BytesPerRow uint32

	// RowsPerImage is the number of rows of the plane.
	RowsPerImage uint32

	// Size is the copy extent in texels.
	Size gputypes.Extent3D

	// Format is the texture format with the plane's memory layout.
	Format gputypes.TextureFormat
}

// Extent returns the plane size as a single-layer GPU extent.
func (p Plane) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              p.Width,
		Height:             p.Height,
		DepthOrArrayLayers: 1,
	}
}

// TextureCopy returns the copy description of plane i. Only linear color
// planes of formats with a matching texture format and a stride that is a
// multiple of CopyPitchAlignment qualify.
func (l *Layout) TextureCopy(i int) (TextureCopy, error) {
	if i < 0 || i >= len(l.Planes) {
		return TextureCopy{}, fmt.Errorf("%w: %d of %d", ErrPlaneOutOfRange, i, len(l.Planes))
	}
	p := l.Planes[i]

	switch {
	case l.Modifier != modifier.Linear:
		return TextureCopy{}, fmt.Errorf("%w: %s is tiled", ErrNotCopyable, l.Modifier.Name())
	case p.Kind != PlaneColor || l.colorPlanes != 1:
		return TextureCopy{}, fmt.Errorf("%w: plane %d of %s", ErrNotCopyable, i, l.Format)
	case p.Stride%CopyPitchAlignment != 0:
		return TextureCopy{}, fmt.Errorf("%w: stride %d not a multiple of %d", ErrNotCopyable, p.Stride, CopyPitchAlignment)
	}

	format := l.Format.TextureFormat()
	if format == gputypes.TextureFormatUndefined {
		return TextureCopy{}, fmt.Errorf("%w: no texture format for %s", ErrNotCopyable, l.Format)
	}

	return TextureCopy{
		Offset:       p.Offset,
		BytesPerRow:  p.Stride,
		RowsPerImage: p.Height,
		Size:         p.Extent(),
		Format:       format,
	}, nil
}
