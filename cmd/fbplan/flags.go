package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/fblayout/tiling"
)

// parseSwizzle converts a -swizzle value, rejecting modes that cannot be
// applied to a buffer offset.
func parseSwizzle(v uint) (tiling.Swizzle, error) {
	if v > math.MaxUint8 || !tiling.Swizzle(v).Supported() {
		return tiling.SwizzleNone, fmt.Errorf("unsupported swizzle mode %d", v)
	}
	return tiling.Swizzle(v), nil
}

// parseInts parses exactly len(dst) comma-separated integers.
func parseInts(s string, dst []int) error {
	parts := strings.Split(s, ",")
	if len(parts) != len(dst) {
		return fmt.Errorf("want %d comma-separated values, got %q", len(dst), s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		dst[i] = n
	}
	return nil
}
