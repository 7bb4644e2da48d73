package draw

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/fblayout/fourcc"
)

const (
	fnvOffsetBasis = 2166136261
	fnvPrime       = 16777619
)

// FNV1a hashes the visible pixels of a linear XRGB8888 or XRGB2101010
// plane. Each pixel is read as a little-endian 32-bit word with its X bits
// cleared and folded in with one FNV-1a round. Row padding and X bits do
// not affect the result.
func FNV1a(t Target) (uint32, error) {
	p, err := t.resolve()
	if err != nil {
		return 0, err
	}
	var mask uint32
	switch t.Layout.Format {
	case fourcc.XRGB8888:
		mask = 0x00ffffff
	case fourcc.XRGB2101010:
		mask = 0x3fffffff
	default:
		return 0, fmt.Errorf("%w: %s", fourcc.ErrUnknownFormat, t.Layout.Format)
	}
	if p.tiled {
		return 0, fmt.Errorf("%w: hashing requires a linear plane", ErrNoPrimitive)
	}
	if t.Mapping == nil {
		return 0, ErrNoPrimitive
	}
	buf := t.Mapping.Bytes()
	if uint64(len(buf)) < p.End() {
		return 0, fmt.Errorf("%w: mapping of %d bytes, plane ends at %d", ErrOutOfBounds, len(buf), p.End())
	}

	hash := uint32(fnvOffsetBasis)
	for y := range p.Height {
		row := buf[p.offset(0, y):]
		for x := range p.Width {
			hash ^= binary.LittleEndian.Uint32(row[x*4:]) & mask
			hash *= fnvPrime
		}
	}
	return hash, nil
}
