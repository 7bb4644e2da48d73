package fblayout

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/internal/align"
	"github.com/gogpu/fblayout/modifier"
	"github.com/gogpu/fblayout/tiling"
)

// MaxPlanes is the maximum number of planes in a layout: four color or
// aux planes plus one clear color plane.
const MaxPlanes = 5

// Size constants used by the planner.
const (
	pageSize      = 4096
	fenceMinSize  = 1 << 20
	legacyMinPot  = 512
	chromaAlign   = 64 << 10
	mtlMediaAlign = 1 << 20
	clearColorPad = 64
	bmgAlign      = 64 << 10

	gen12AuxStrideAlign = 64
	gen12TileAlign      = 4
	gen12AuxBlockBytes  = 512
	gen12AuxBlockRows   = 32

	legacyAuxColumn = 1024
	legacyAuxRows   = 512
)

// PlaneKind distinguishes color planes from compression planes.
type PlaneKind uint8

// Plane kinds.
const (
	// PlaneColor holds pixel data.
	PlaneColor PlaneKind = iota

	// PlaneCCS is a compression control surface shadowing a color plane.
	PlaneCCS

	// PlaneClearColor holds the fast-clear color value.
	PlaneClearColor
)

// String returns a string representation of the plane kind.
func (k PlaneKind) String() string {
	switch k {
	case PlaneColor:
		return "color"
	case PlaneCCS:
		return "ccs"
	case PlaneClearColor:
		return "clear-color"
	default:
		return fmt.Sprintf("PlaneKind(%d)", uint8(k))
	}
}

// Plane is one addressable plane of a framebuffer.
type Plane struct {
	// Kind is the plane role.
	Kind PlaneKind

	// Width and Height are in pixels of BPP bits. Aux planes use 8 bpp,
	// so their width is in bytes.
	Width, Height uint32

	// BPP is the bits per pixel of the plane.
	BPP uint32

	// Stride is the row pitch in bytes.
	Stride uint32

	// Offset is the byte offset of the plane from the start of the buffer.
	Offset uint64

	// Size is the plane size in bytes.
	Size uint64
}

// MinStride returns the unpadded row size in bytes.
func (p Plane) MinStride() uint32 {
	return p.Width * (p.BPP / 8)
}

// End returns the offset of the first byte after the plane.
func (p Plane) End() uint64 {
	return p.Offset + p.Size
}

// Layout is the planned memory layout of a framebuffer.
//
// Init fills the plane shapes; Compute fills strides, offsets and sizes.
// Strides or a total size set between the two calls are kept verbatim.
type Layout struct {
	Width, Height uint32
	Format        fourcc.Code
	Modifier      modifier.Modifier
	ColorEncoding ColorEncoding
	ColorRange    ColorRange

	// Planes holds color planes first, then one aux plane per color plane
	// when the modifier needs them, then the clear color plane.
	Planes []Plane

	// Size is the total buffer size in bytes.
	Size uint64

	device      Device
	colorPlanes int
}

// Init returns a layout with plane shapes and bits per pixel filled in and
// strides, offsets and sizes left at zero.
func Init(width, height uint32, format fourcc.Code, mod modifier.Modifier, enc ColorEncoding, dev Device) (*Layout, error) {
	desc, ok := fourcc.Lookup(format)
	if !ok {
		return nil, fmt.Errorf("%w: %#08x", ErrUnknownFormat, uint32(format))
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if _, _, err := dev.TileSizer().TileSize(mod, desc.PlaneBPP[0]); err != nil {
		return nil, err
	}

	aux := modifier.IsCCS(mod) && !dev.FlatCCS
	n := desc.NumPlanes
	if aux {
		n *= 2
	}
	if modifier.HasClearColor(mod) {
		n++
	}
	if n > MaxPlanes {
		return nil, fmt.Errorf("%w: %v with %s needs %d planes", ErrUnsupportedModifier, mod, desc.Name, n)
	}

	l := &Layout{
		Width:         width,
		Height:        height,
		Format:        format,
		Modifier:      mod,
		ColorEncoding: enc,
		Planes:        make([]Plane, n),
		device:        dev,
		colorPlanes:   desc.NumPlanes,
	}

	for i := range desc.NumPlanes {
		p := &l.Planes[i]
		p.Kind = PlaneColor
		p.BPP = desc.PlaneBPP[i]
		p.Width, p.Height = width, height
		if i > 0 {
			p.Width = align.DivRoundUp(width, desc.HSub)
			p.Height = align.DivRoundUp(height, desc.VSub)
		}
	}

	if aux {
		gen12 := modifier.IsGen12CCS(mod)
		for i := range desc.NumPlanes {
			mp := l.Planes[i]
			p := &l.Planes[desc.NumPlanes+i]
			p.Kind = PlaneCCS
			p.BPP = 8
			if gen12 {
				p.Width = align.DivRoundUp(mp.MinStride(), gen12AuxBlockBytes) * 64
				p.Height = align.DivRoundUp(mp.Height, gen12AuxBlockRows)
			} else {
				p.Width = align.DivRoundUp(width, legacyAuxColumn) * 128
				p.Height = align.DivRoundUp(height, legacyAuxRows) * 32
			}
		}
	}

	if modifier.HasClearColor(mod) {
		l.Planes[n-1] = Plane{Kind: PlaneClearColor, Width: 64, Height: 1, BPP: 8}
	}

	return l, nil
}

// Plan plans a framebuffer in one step: Init, caller overrides, Compute.
func Plan(width, height uint32, format fourcc.Code, mod modifier.Modifier, dev Device, opts ...PlanOption) (*Layout, error) {
	o := defaultPlanOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l, err := Init(width, height, format, mod, o.encoding, dev)
	if err != nil {
		return nil, err
	}
	l.ColorRange = o.colorRng
	for i := range l.Planes {
		l.Planes[i].Stride = o.strides[i]
	}
	l.Size = o.size

	if err := l.Compute(); err != nil {
		return nil, err
	}
	return l, nil
}

// Compute fills strides, offsets, sizes and the total size.
// Strides and a total size that are already non-zero are kept.
//
// Compute panics if a computed stride breaks its own alignment rule; that
// indicates a broken TileSizer.
func (l *Layout) Compute() error {
	tiles := l.device.TileSizer()
	log := Logger()

	var size uint64
	for i := range l.Planes {
		p := &l.Planes[i]

		if p.Stride == 0 {
			stride, granule, err := l.planeStride(i, tiles)
			if err != nil {
				return err
			}
			if stride < p.MinStride() || (granule != 0 && stride%granule != 0) {
				panic(fmt.Sprintf("fblayout: computed stride %d of plane %d breaks alignment %d", stride, i, granule))
			}
			p.Stride = stride
		} else if p.Stride < p.MinStride() {
			log.Warn("fblayout: forced stride below minimum",
				slog.Int("plane", i),
				slog.Uint64("stride", uint64(p.Stride)),
				slog.Uint64("min", uint64(p.MinStride())))
		}

		a, err := l.planeAlignment(i, tiles)
		if err != nil {
			return err
		}
		size = align.Up(size, a)
		p.Offset = size

		ps, err := l.planeSize(i, tiles)
		if err != nil {
			return err
		}
		p.Size = ps
		size += ps
	}

	if l.Modifier == modifier.IntelYGen12RCCCS {
		size = align.Up(size+clearColorPad, clearColorPad)
	}
	size = align.Up(size, l.device.allocAlignment())
	if l.Modifier == modifier.Intel4BMGCCS {
		size = align.Up(size, bmgAlign)
	}

	if l.Size == 0 {
		l.Size = size
	}

	log.Debug("fblayout: planned",
		slog.String("format", l.Format.String()),
		slog.String("modifier", l.Modifier.String()),
		slog.Int("planes", len(l.Planes)),
		slog.Uint64("size", l.Size))
	return nil
}

// planeStride returns the computed stride of plane i and the granule it
// must be a multiple of (0 for power-of-two strides).
func (l *Layout) planeStride(i int, tiles TileSizer) (stride, granule uint32, err error) {
	p := l.Planes[i]
	minStride := p.MinStride()

	switch {
	case l.Modifier != modifier.Linear && l.device.legacyFencing():
		return uint32(align.PowerOfTwo(uint64(max(minStride, legacyMinPot)))), 0, nil
	case p.Kind == PlaneClearColor:
		if l.device.FlatCCS {
			return 512, 512, nil
		}
		return 64, 64, nil
	case p.Kind == PlaneCCS && modifier.IsGen12CCS(l.Modifier):
		return align.Up(minStride, gen12AuxStrideAlign), gen12AuxStrideAlign, nil
	}

	if a := tiles.StrideAlign(l.Modifier, fourcc.IsYUV(l.Format)); a != 0 {
		return align.Up(minStride, a), a, nil
	}

	tw, _, err := tiles.TileSize(l.Modifier, p.BPP)
	if err != nil {
		return 0, 0, err
	}
	if modifier.IsGen12CCS(l.Modifier) {
		tw *= gen12TileAlign
	}
	return align.Up(minStride, tw), tw, nil
}

// planeSize returns the size of plane i from its stride.
func (l *Layout) planeSize(i int, tiles TileSizer) (uint64, error) {
	p := l.Planes[i]
	rows := uint64(p.Stride) * uint64(p.Height)

	switch {
	case l.Modifier != modifier.Linear && l.device.legacyFencing():
		return align.PowerOfTwo(max(rows, fenceMinSize)), nil
	case p.Kind != PlaneColor && modifier.IsGen12CCS(l.Modifier) && !l.device.FlatCCS:
		return align.Up(rows, pageSize), nil
	}

	_, th, err := tiles.TileSize(l.Modifier, p.BPP)
	if err != nil {
		return 0, err
	}
	return uint64(p.Stride) * uint64(align.Up(p.Height, th)), nil
}

// planeAlignment returns the offset alignment of plane i, or 0.
// Only the chroma plane of semiplanar YUV under gen12 compression on Intel
// has one.
func (l *Layout) planeAlignment(i int, tiles TileSizer) (uint64, error) {
	if !l.device.IsIntel() || !modifier.IsGen12CCS(l.Modifier) ||
		!fourcc.IsYUVSemiplanar(l.Format) || i != 1 {
		return 0, nil
	}

	_, th, err := tiles.TileSize(l.Modifier, l.Planes[i].BPP)
	if err != nil {
		return 0, err
	}
	a := align.LCM(uint64(l.Planes[i].Stride)*uint64(th), chromaAlign)
	if l.Modifier == modifier.Intel4MTLMCCCS && a%mtlMediaAlign != 0 {
		a = mtlMediaAlign
	}
	return a, nil
}

// Device returns the device the layout was planned for.
func (l *Layout) Device() Device {
	return l.device
}

// ColorPlanes returns the number of color planes of the format.
func (l *Layout) ColorPlanes() int {
	return l.colorPlanes
}

// MainPlane returns the color plane that plane i belongs to: itself for
// color planes, the shadowed plane for aux planes and 0 for the clear color
// plane.
func (l *Layout) MainPlane(i int) (int, error) {
	if i < 0 || i >= len(l.Planes) {
		return 0, fmt.Errorf("%w: %d of %d", ErrPlaneOutOfRange, i, len(l.Planes))
	}
	switch l.Planes[i].Kind {
	case PlaneCCS:
		return i - l.colorPlanes, nil
	case PlaneClearColor:
		return 0, nil
	default:
		return i, nil
	}
}

// Surface returns the address transform for plane i.
// Linear planes return tiling.ErrLinear.
func (l *Layout) Surface(i int, swizzle tiling.Swizzle) (tiling.Surface, error) {
	if i < 0 || i >= len(l.Planes) {
		return tiling.Surface{}, fmt.Errorf("%w: %d of %d", ErrPlaneOutOfRange, i, len(l.Planes))
	}
	p := l.Planes[i]

	mode, err := l.Modifier.Tiling()
	if err != nil {
		return tiling.Surface{}, err
	}
	geom, err := tiling.Resolve(mode, p.BPP, l.device.Generation())
	if err != nil {
		return tiling.Surface{}, err
	}
	return tiling.NewSurface(geom, p.Stride, p.BPP, swizzle)
}

// Validate checks the layout invariants: strides cover a row, planes are
// in increasing offset order without overlap and the total size covers
// every plane.
func (l *Layout) Validate() error {
	if len(l.Planes) == 0 {
		return fmt.Errorf("%w: no planes", ErrInvalidLayout)
	}

	var end uint64
	for i, p := range l.Planes {
		if p.Stride == 0 || p.Stride < p.MinStride() {
			return fmt.Errorf("%w: plane %d stride %d below row size %d", ErrInvalidLayout, i, p.Stride, p.MinStride())
		}
		if p.Offset < end {
			return fmt.Errorf("%w: plane %d at %d overlaps previous plane ending at %d", ErrInvalidLayout, i, p.Offset, end)
		}
		end = p.End()
	}
	if l.Size < end {
		return fmt.Errorf("%w: size %d smaller than planes ending at %d", ErrInvalidLayout, l.Size, end)
	}
	return nil
}

// String returns a one-line summary such as "XRGB8888 512x512 x 2 planes 1048576 bytes".
func (l *Layout) String() string {
	return fmt.Sprintf("%s %dx%d %s %d planes %d bytes",
		l.Format, l.Width, l.Height, l.Modifier.Name(), len(l.Planes), l.Size)
}

// allocAlignment returns the final rounding of the buffer size.
func (d Device) allocAlignment() uint64 {
	if d.AllocAlignment != 0 {
		return d.AllocAlignment
	}
	if d.Xe {
		return pageSize
	}
	return 0
}
