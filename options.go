package fblayout

// PlanOption configures a Plan call.
// Use functional options to force strides or sizes chosen by the caller.
//
// Example:
//
//	// Computed layout
//	l, err := fblayout.Plan(1920, 1080, fourcc.XRGB8888, modifier.IntelX, dev)
//
//	// Caller-chosen stride for plane 0
//	l, err := fblayout.Plan(1920, 1080, fourcc.XRGB8888, modifier.IntelX, dev,
//	    fblayout.WithStride(0, 8192))
type PlanOption func(*planOptions)

// planOptions holds optional configuration for Plan.
type planOptions struct {
	strides  [MaxPlanes]uint32
	size     uint64
	encoding ColorEncoding
	colorRng ColorRange
}

// defaultPlanOptions returns the default plan options.
func defaultPlanOptions() planOptions {
	return planOptions{
		encoding: ColorBT709,
		colorRng: ColorRangeLimited,
	}
}

// WithStride forces the stride of plane in bytes. The value is used
// verbatim, even when it is smaller than the computed minimum.
// Planes the layout does not have are ignored.
func WithStride(plane int, stride uint32) PlanOption {
	return func(o *planOptions) {
		if plane >= 0 && plane < MaxPlanes {
			o.strides[plane] = stride
		}
	}
}

// WithSize forces the total buffer size in bytes.
func WithSize(size uint64) PlanOption {
	return func(o *planOptions) {
		o.size = size
	}
}

// WithColorEncoding sets the YCbCr encoding recorded in the layout.
func WithColorEncoding(e ColorEncoding) PlanOption {
	return func(o *planOptions) {
		o.encoding = e
	}
}

// WithColorRange sets the YCbCr range recorded in the layout.
func WithColorRange(r ColorRange) PlanOption {
	return func(o *planOptions) {
		o.colorRng = r
	}
}
