// Package fourcc provides the catalog of pixel formats understood by the
// layout planner.
//
// Format codes are DRM fourcc values, bit-for-bit identical to the kernel's
// drm_fourcc.h. The catalog is a compile-time table and is never mutated, so
// every function in this package is safe for concurrent use.
package fourcc

import "fmt"

// Code is a DRM fourcc pixel format code.
type Code uint32

// Make builds a fourcc code from its four characters.
func Make(a, b, c, d byte) Code {
	return Code(a) | Code(b)<<8 | Code(c)<<16 | Code(d)<<24
}

// DRM format codes in the catalog.
const (
	C8 = Code('C') | '8'<<8 | ' '<<16 | ' '<<24

	XRGB1555 = Code('X') | 'R'<<8 | '1'<<16 | '5'<<24
	ARGB1555 = Code('A') | 'R'<<8 | '1'<<16 | '5'<<24
	RGB565   = Code('R') | 'G'<<8 | '1'<<16 | '6'<<24
	BGR565   = Code('B') | 'G'<<8 | '1'<<16 | '6'<<24

	RGB888 = Code('R') | 'G'<<8 | '2'<<16 | '4'<<24
	BGR888 = Code('B') | 'G'<<8 | '2'<<16 | '4'<<24

	XRGB8888 = Code('X') | 'R'<<8 | '2'<<16 | '4'<<24
	XBGR8888 = Code('X') | 'B'<<8 | '2'<<16 | '4'<<24
	ARGB8888 = Code('A') | 'R'<<8 | '2'<<16 | '4'<<24
	ABGR8888 = Code('A') | 'B'<<8 | '2'<<16 | '4'<<24

	XRGB2101010 = Code('X') | 'R'<<8 | '3'<<16 | '0'<<24
	XBGR2101010 = Code('X') | 'B'<<8 | '3'<<16 | '0'<<24
	ARGB2101010 = Code('A') | 'R'<<8 | '3'<<16 | '0'<<24
	ABGR2101010 = Code('A') | 'B'<<8 | '3'<<16 | '0'<<24

	XRGB16161616F = Code('X') | 'R'<<8 | '4'<<16 | 'H'<<24
	ARGB16161616F = Code('A') | 'R'<<8 | '4'<<16 | 'H'<<24
	XBGR16161616F = Code('X') | 'B'<<8 | '4'<<16 | 'H'<<24
	ABGR16161616F = Code('A') | 'B'<<8 | '4'<<16 | 'H'<<24

	XRGB16161616 = Code('X') | 'R'<<8 | '4'<<16 | '8'<<24
	XBGR16161616 = Code('X') | 'B'<<8 | '4'<<16 | '8'<<24
	ARGB16161616 = Code('A') | 'R'<<8 | '4'<<16 | '8'<<24
	ABGR16161616 = Code('A') | 'B'<<8 | '4'<<16 | '8'<<24

	XYUV8888 = Code('X') | 'Y'<<8 | 'U'<<16 | 'V'<<24

	NV12 = Code('N') | 'V'<<8 | '1'<<16 | '2'<<24
	NV21 = Code('N') | 'V'<<8 | '2'<<16 | '1'<<24
	NV16 = Code('N') | 'V'<<8 | '1'<<16 | '6'<<24
	NV61 = Code('N') | 'V'<<8 | '6'<<16 | '1'<<24

	YUYV = Code('Y') | 'U'<<8 | 'Y'<<16 | 'V'<<24
	YVYU = Code('Y') | 'V'<<8 | 'Y'<<16 | 'U'<<24
	UYVY = Code('U') | 'Y'<<8 | 'V'<<16 | 'Y'<<24
	VYUY = Code('V') | 'Y'<<8 | 'U'<<16 | 'Y'<<24

	YUV420 = Code('Y') | 'U'<<8 | '1'<<16 | '2'<<24
	YUV422 = Code('Y') | 'U'<<8 | '1'<<16 | '6'<<24
	YVU420 = Code('Y') | 'V'<<8 | '1'<<16 | '2'<<24
	YVU422 = Code('Y') | 'V'<<8 | '1'<<16 | '6'<<24

	Y410 = Code('Y') | '4'<<8 | '1'<<16 | '0'<<24
	Y412 = Code('Y') | '4'<<8 | '1'<<16 | '2'<<24
	Y416 = Code('Y') | '4'<<8 | '1'<<16 | '6'<<24

	XVYU2101010     = Code('X') | 'V'<<8 | '3'<<16 | '0'<<24
	XVYU12_16161616 = Code('X') | 'V'<<8 | '3'<<16 | '6'<<24
	XVYU16161616    = Code('X') | 'V'<<8 | '4'<<16 | '8'<<24

	P010 = Code('P') | '0'<<8 | '1'<<16 | '0'<<24
	P012 = Code('P') | '0'<<8 | '1'<<16 | '2'<<24
	P016 = Code('P') | '0'<<8 | '1'<<16 | '6'<<24

	Y210 = Code('Y') | '2'<<8 | '1'<<16 | '0'<<24
	Y212 = Code('Y') | '2'<<8 | '1'<<16 | '2'<<24
	Y216 = Code('Y') | '2'<<8 | '1'<<16 | '6'<<24

	// Float is an internal 4x32-bit float format used for intermediate
	// conversions. It is never handed to the kernel.
	Float = Code('I') | 'G'<<8 | 'F'<<16 | 'x'<<24
)

// String returns the catalog name of the format, or "invalid" if the code
// is not catalogued.
func (c Code) String() string {
	if d, ok := Lookup(c); ok {
		return d.Name
	}
	return "invalid"
}

// Chars returns the four characters of the code, e.g. "XR24".
func (c Code) Chars() string {
	return fmt.Sprintf("%c%c%c%c", byte(c), byte(c>>8), byte(c>>16), byte(c>>24))
}
