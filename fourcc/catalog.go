package fourcc

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Common errors for catalog lookups.
var (
	// ErrUnknownFormat is returned when a format code is not catalogued.
	ErrUnknownFormat = errors.New("fourcc: unknown format")

	// ErrPlaneOutOfRange is returned when a plane index exceeds the format's
	// plane count.
	ErrPlaneOutOfRange = errors.New("fourcc: plane index out of range")
)

// MaxPlanes is the maximum number of color planes of a catalogued format.
const MaxPlanes = 4

// Descriptor contains metadata about a pixel format.
type Descriptor struct {
	// Name is the human-readable catalog name, e.g. "XRGB8888".
	Name string

	// Code is the DRM fourcc code.
	Code Code

	// Depth is the legacy color depth, or -1 for formats without one.
	Depth int

	// NumPlanes is the number of color planes (1 to 3).
	NumPlanes int

	// PlaneBPP holds the bits per pixel of each plane. Exactly NumPlanes
	// entries are non-zero.
	PlaneBPP [MaxPlanes]uint32

	// HSub and VSub are the chroma subsampling factors.
	HSub, VSub uint32

	// Convert is set when the format needs an intermediate conversion before
	// it can be drawn with the common RGB paths.
	Convert bool

	// texture is the matching GPU texture format, if any.
	texture gputypes.TextureFormat
}

// formatTable is the immutable format catalog.
var formatTable = []Descriptor{
	{Name: "ARGB1555", Code: ARGB1555, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 1, VSub: 1, Convert: true},
	{Name: "C8", Code: C8, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{8}, HSub: 1, VSub: 1, Convert: true,
		texture: gputypes.TextureFormatR8Unorm},
	{Name: "XRGB1555", Code: XRGB1555, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 1, VSub: 1, Convert: true},
	{Name: "RGB565", Code: RGB565, Depth: 16, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 1, VSub: 1},
	{Name: "BGR565", Code: BGR565, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 1, VSub: 1, Convert: true},
	{Name: "BGR888", Code: BGR888, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{24}, HSub: 1, VSub: 1, Convert: true},
	{Name: "RGB888", Code: RGB888, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{24}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XYUV8888", Code: XYUV8888, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XRGB8888", Code: XRGB8888, Depth: 24, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1,
		texture: gputypes.TextureFormatBGRA8Unorm},
	{Name: "XBGR8888", Code: XBGR8888, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true,
		texture: gputypes.TextureFormatRGBA8Unorm},
	{Name: "XRGB2101010", Code: XRGB2101010, Depth: 30, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1},
	{Name: "XBGR2101010", Code: XBGR2101010, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true},
	{Name: "ARGB8888", Code: ARGB8888, Depth: 32, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1,
		texture: gputypes.TextureFormatBGRA8Unorm},
	{Name: "ABGR8888", Code: ABGR8888, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true,
		texture: gputypes.TextureFormatRGBA8Unorm},
	{Name: "ARGB2101010", Code: ARGB2101010, Depth: 30, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true},
	{Name: "ABGR2101010", Code: ABGR2101010, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XRGB16161616F", Code: XRGB16161616F, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "ARGB16161616F", Code: ARGB16161616F, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XBGR16161616F", Code: XBGR16161616F, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "ABGR16161616F", Code: ABGR16161616F, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XRGB16161616", Code: XRGB16161616, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "ARGB16161616", Code: ARGB16161616, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XBGR16161616", Code: XBGR16161616, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "ABGR16161616", Code: ABGR16161616, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "NV12", Code: NV12, Depth: -1, NumPlanes: 2, PlaneBPP: [4]uint32{8, 16}, HSub: 2, VSub: 2, Convert: true},
	{Name: "NV16", Code: NV16, Depth: -1, NumPlanes: 2, PlaneBPP: [4]uint32{8, 16}, HSub: 2, VSub: 1, Convert: true},
	{Name: "NV21", Code: NV21, Depth: -1, NumPlanes: 2, PlaneBPP: [4]uint32{8, 16}, HSub: 2, VSub: 2, Convert: true},
	{Name: "NV61", Code: NV61, Depth: -1, NumPlanes: 2, PlaneBPP: [4]uint32{8, 16}, HSub: 2, VSub: 1, Convert: true},
	{Name: "YUYV", Code: YUYV, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 2, VSub: 1, Convert: true},
	{Name: "YVYU", Code: YVYU, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 2, VSub: 1, Convert: true},
	{Name: "UYVY", Code: UYVY, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 2, VSub: 1, Convert: true},
	{Name: "VYUY", Code: VYUY, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{16}, HSub: 2, VSub: 1, Convert: true},
	{Name: "YU12", Code: YUV420, Depth: -1, NumPlanes: 3, PlaneBPP: [4]uint32{8, 8, 8}, HSub: 2, VSub: 2, Convert: true},
	{Name: "YU16", Code: YUV422, Depth: -1, NumPlanes: 3, PlaneBPP: [4]uint32{8, 8, 8}, HSub: 2, VSub: 1, Convert: true},
	{Name: "YV12", Code: YVU420, Depth: -1, NumPlanes: 3, PlaneBPP: [4]uint32{8, 8, 8}, HSub: 2, VSub: 2, Convert: true},
	{Name: "YV16", Code: YVU422, Depth: -1, NumPlanes: 3, PlaneBPP: [4]uint32{8, 8, 8}, HSub: 2, VSub: 1, Convert: true},
	{Name: "Y410", Code: Y410, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true},
	{Name: "Y412", Code: Y412, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "Y416", Code: Y416, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XV30", Code: XVYU2101010, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XV36", Code: XVYU12_16161616, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "XV48", Code: XVYU16161616, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{64}, HSub: 1, VSub: 1, Convert: true},
	{Name: "P010", Code: P010, Depth: -1, NumPlanes: 2, PlaneBPP: [4]uint32{16, 32}, HSub: 2, VSub: 2, Convert: true},
	{Name: "P012", Code: P012, Depth: -1, NumPlanes: 2, PlaneBPP: [4]uint32{16, 32}, HSub: 2, VSub: 2, Convert: true},
	{Name: "P016", Code: P016, Depth: -1, NumPlanes: 2, PlaneBPP: [4]uint32{16, 32}, HSub: 2, VSub: 2, Convert: true},
	{Name: "Y210", Code: Y210, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 2, VSub: 1, Convert: true},
	{Name: "Y212", Code: Y212, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 2, VSub: 1, Convert: true},
	{Name: "Y216", Code: Y216, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{32}, HSub: 2, VSub: 1, Convert: true},
	{Name: "IGT-FLOAT", Code: Float, Depth: -1, NumPlanes: 1, PlaneBPP: [4]uint32{128}, HSub: 1, VSub: 1},
}

// Lookup returns the descriptor for code.
// The second result is false if the code is not catalogued.
func Lookup(code Code) (Descriptor, bool) {
	for i := range formatTable {
		if formatTable[i].Code == code {
			return formatTable[i], true
		}
	}
	return Descriptor{}, false
}

// LookupName returns the descriptor with the given catalog name.
// Names are matched exactly, e.g. "XRGB8888" or "YU12".
func LookupName(name string) (Descriptor, bool) {
	for i := range formatTable {
		if formatTable[i].Name == name {
			return formatTable[i], true
		}
	}
	return Descriptor{}, false
}

// IsYUV returns true if code is a YUV format.
func IsYUV(code Code) bool {
	switch code {
	case NV12, NV16, NV21, NV61,
		YUV420, YUV422, YVU420, YVU422,
		P010, P012, P016,
		Y210, Y212, Y216,
		XVYU2101010, XVYU12_16161616, XVYU16161616,
		Y410, Y412, Y416,
		YUYV, YVYU, UYVY, VYUY,
		XYUV8888:
		return true
	default:
		return false
	}
}

// IsYUVSemiplanar returns true if code is a YUV format with two planes
// (luma and interleaved chroma).
func IsYUVSemiplanar(code Code) bool {
	d, ok := Lookup(code)
	return ok && IsYUV(code) && d.NumPlanes == 2
}

// IsFP16 returns true if code stores half-float channels.
func IsFP16(code Code) bool {
	switch code {
	case XRGB16161616F, ARGB16161616F, XBGR16161616F, ABGR16161616F:
		return true
	default:
		return false
	}
}

// PlaneBPP returns the bits per pixel of plane in format code.
func PlaneBPP(code Code, plane int) (uint32, error) {
	d, ok := Lookup(code)
	if !ok {
		return 0, fmt.Errorf("%w: %#08x", ErrUnknownFormat, uint32(code))
	}
	if plane < 0 || plane >= d.NumPlanes {
		return 0, fmt.Errorf("%w: plane %d of %s (%d planes)", ErrPlaneOutOfRange, plane, d.Name, d.NumPlanes)
	}
	return d.PlaneBPP[plane], nil
}

// BPP returns the bits per pixel of the first plane of code.
func BPP(code Code) (uint32, error) {
	return PlaneBPP(code, 0)
}

// FromBPPDepth returns the RGB format with the given first-plane bpp and
// legacy depth, e.g. (32, 24) is XRGB8888.
func FromBPPDepth(bpp uint32, depth int) (Code, error) {
	for i := range formatTable {
		if formatTable[i].PlaneBPP[0] == bpp && formatTable[i].Depth == depth {
			return formatTable[i].Code, nil
		}
	}
	return 0, fmt.Errorf("%w: bpp=%d depth=%d", ErrUnknownFormat, bpp, depth)
}

// Formats returns the catalogued codes in catalog order.
// YUV formats are skipped unless allowYUV is set.
func Formats(allowYUV bool) []Code {
	out := make([]Code, 0, len(formatTable))
	for i := range formatTable {
		if !allowYUV && IsYUV(formatTable[i].Code) {
			continue
		}
		out = append(out, formatTable[i].Code)
	}
	return out
}

// Supported reports whether buffers of this format can be created and drawn
// to. C8 is catalogued but hidden, because it needs a palette the caller has
// to program.
func Supported(code Code) bool {
	if code == C8 {
		return false
	}
	_, ok := Lookup(code)
	return ok
}

// TextureFormat returns the GPU texture format with the same memory layout
// as a single-plane code, or TextureFormatUndefined when none matches.
func (c Code) TextureFormat() gputypes.TextureFormat {
	d, ok := Lookup(c)
	if !ok {
		return gputypes.TextureFormatUndefined
	}
	return d.texture
}

// IsYUV returns true if the descriptor is a YUV format.
func (d Descriptor) IsYUV() bool {
	return IsYUV(d.Code)
}
