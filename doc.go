// Package fblayout plans the memory layout of GPU framebuffers.
//
// # Overview
//
// Given a pixel format, a size and a DRM format modifier, the planner
// computes every plane of the buffer: pixel dimensions, bits per pixel,
// stride, offset and size, plus the total allocation size. Compressed
// modifiers add auxiliary control-surface planes and, for some modifiers, a
// clear color plane.
//
// # Quick Start
//
//	import "github.com/gogpu/fblayout"
//
//	dev := fblayout.Device{Vendor: modifier.VendorIntel, DisplayVersion: 12}
//	l, err := fblayout.Plan(1920, 1080, fourcc.NV12, modifier.IntelYGen12RCCCS, dev)
//	if err != nil {
//	    return err
//	}
//	for i, p := range l.Planes {
//	    fmt.Println(i, p.Kind, p.Stride, p.Offset, p.Size)
//	}
//
// # Architecture
//
// The module is organized into:
//   - [github.com/gogpu/fblayout/fourcc]: the pixel format catalog
//   - [github.com/gogpu/fblayout/modifier]: DRM modifier decoding
//   - [github.com/gogpu/fblayout/tiling]: tile geometry and address transforms
//   - fblayout (this package): devices, vendor tile sizers and the planner
//   - [github.com/gogpu/fblayout/draw]: rectangle fills through a plan
//
// # Vendors
//
// Intel tiling is resolved from the tile geometry tables of the tiling
// package. AMD, Broadcom and NVIDIA tile shapes come from the built-in
// [TileSizer] implementations; a [Device] may supply its own.
//
// Every function in this package is pure. A [Layout] is immutable once
// computed and may be shared between goroutines.
package fblayout

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
