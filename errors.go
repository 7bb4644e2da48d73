package fblayout

import (
	"errors"

	"github.com/gogpu/fblayout/fourcc"
	"github.com/gogpu/fblayout/modifier"
)

// Common errors returned by the planner.
var (
	// ErrUnknownFormat is returned when the format is not catalogued.
	ErrUnknownFormat = fourcc.ErrUnknownFormat

	// ErrUnsupportedModifier is returned when the device cannot lay out
	// the requested modifier.
	ErrUnsupportedModifier = modifier.ErrUnsupportedModifier

	// ErrInvalidDimensions is returned for zero width or height.
	ErrInvalidDimensions = errors.New("fblayout: width and height must be positive")

	// ErrInvalidLayout is returned by Validate for layouts that break an
	// invariant, usually through a caller-forced stride or size.
	ErrInvalidLayout = errors.New("fblayout: invalid layout")

	// ErrPlaneOutOfRange is returned for plane indices the layout does not have.
	ErrPlaneOutOfRange = errors.New("fblayout: plane index out of range")
)
