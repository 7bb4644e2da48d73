package draw

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fblayout/fourcc"
)

// Image is a draw.Image view of a mapped 32 bpp RGB plane. Tiled planes are
// addressed through their surface, so image/draw and x/image/draw
// operations can target any supported layout.
type Image struct {
	buf   []byte
	p     plane
	bgra  bool // byte order B, G, R, A
	alpha bool
}

var _ xdraw.Image = (*Image)(nil)

// NewImage returns an image view of the target plane. The target must have
// a Mapping, the plane must hold 32 bpp pixels and the layout format must be
// one of ARGB8888, XRGB8888, ABGR8888 or XBGR8888.
func NewImage(t Target) (*Image, error) {
	p, err := t.resolve()
	if err != nil {
		return nil, err
	}
	if t.Mapping == nil {
		return nil, ErrNoPrimitive
	}
	if p.BPP != 32 {
		return nil, fmt.Errorf("%w: image view of a %d bpp %s plane", ErrUnsupportedBPP, p.BPP, p.Kind)
	}
	img := &Image{buf: t.Mapping.Bytes(), p: p}
	switch t.Layout.Format {
	case fourcc.ARGB8888:
		img.bgra, img.alpha = true, true
	case fourcc.XRGB8888:
		img.bgra = true
	case fourcc.ABGR8888:
		img.alpha = true
	case fourcc.XBGR8888:
	default:
		return nil, fmt.Errorf("%w: image view of %s", fourcc.ErrUnknownFormat, t.Layout.Format)
	}
	if uint64(len(img.buf)) < p.End() {
		return nil, fmt.Errorf("%w: mapping of %d bytes, plane ends at %d", ErrOutOfBounds, len(img.buf), p.End())
	}
	return img, nil
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return m.p.bounds() }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.p.bounds()) {
		return color.RGBA{}
	}
	b := m.buf[m.p.offset(uint32(x), uint32(y)):]
	c := color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
	if m.bgra {
		c.R, c.B = c.B, c.R
	}
	if !m.alpha {
		c.A = 0xff
	}
	return c
}

// Set implements draw.Image.
func (m *Image) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(m.p.bounds()) {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if !m.alpha {
		rgba.A = 0xff
	}
	if m.bgra {
		rgba.R, rgba.B = rgba.B, rgba.R
	}
	b := m.buf[m.p.offset(uint32(x), uint32(y)):]
	b[0], b[1], b[2], b[3] = rgba.R, rgba.G, rgba.B, rgba.A
}

// Scale draws src scaled to fill dst. Large reductions use bilinear
// filtering, everything else Catmull-Rom.
func Scale(dst xdraw.Image, src image.Image) {
	db, sb := dst.Bounds(), src.Bounds()
	var s xdraw.Scaler = xdraw.CatmullRom
	if db.Dx()*4 < sb.Dx() || db.Dy()*4 < sb.Dy() {
		s = xdraw.ApproxBiLinear
	}
	s.Scale(dst, db, src, sb, xdraw.Src, nil)
}
