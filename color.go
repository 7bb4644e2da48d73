package fblayout

import "fmt"

// ColorEncoding is the YCbCr to RGB matrix of a YUV buffer.
// It does not affect the layout; it travels with it to the consumer.
type ColorEncoding uint8

// Color encodings.
const (
	ColorBT601 ColorEncoding = iota
	ColorBT709
	ColorBT2020
)

// String returns the encoding name as used by the kernel color properties.
func (e ColorEncoding) String() string {
	switch e {
	case ColorBT601:
		return "ITU-R BT.601 YCbCr"
	case ColorBT709:
		return "ITU-R BT.709 YCbCr"
	case ColorBT2020:
		return "ITU-R BT.2020 YCbCr"
	default:
		return fmt.Sprintf("ColorEncoding(%d)", uint8(e))
	}
}

// ColorRange is the quantization range of a YUV buffer.
type ColorRange uint8

// Color ranges.
const (
	ColorRangeLimited ColorRange = iota
	ColorRangeFull
)

// String returns the range name as used by the kernel color properties.
func (r ColorRange) String() string {
	switch r {
	case ColorRangeLimited:
		return "YCbCr limited range"
	case ColorRangeFull:
		return "YCbCr full range"
	default:
		return fmt.Sprintf("ColorRange(%d)", uint8(r))
	}
}
