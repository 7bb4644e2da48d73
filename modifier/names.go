package modifier

import (
	"fmt"
	"strconv"
	"strings"
)

// Name returns the short display name of m, e.g. "x" or "4-mc-ccs".
// Platform variants of the same layout share a name. Modifiers outside the
// table are "unknown".
func (m Modifier) Name() string {
	if e, ok := lookup(m); ok {
		return e.short
	}
	return "unknown"
}

// String returns the kernel macro name of m. Parameterised vendor modifiers
// are printed in macro-call form.
func (m Modifier) String() string {
	if e, ok := lookup(m); ok {
		return e.name
	}
	if m == Invalid {
		return "DRM_FORMAT_MOD_INVALID"
	}

	switch m.Vendor() {
	case VendorBroadcom:
		switch BroadcomBase(m) {
		case BroadcomVC4TTiled:
			return "DRM_FORMAT_MOD_BROADCOM_VC4_T_TILED"
		case BroadcomSAND32, BroadcomSAND64, BroadcomSAND128, BroadcomSAND256:
			width := 32 << (BroadcomBase(m).Value() - BroadcomSAND32.Value())
			return fmt.Sprintf("DRM_FORMAT_MOD_BROADCOM_SAND%d_COL_HEIGHT(%d)", width, BroadcomParam(m))
		}
	case VendorNVIDIA:
		if IsNVIDIABlockLinear(m) {
			v := CanonicalizeNVIDIA(m).Value()
			return fmt.Sprintf("DRM_FORMAT_MOD_NVIDIA_BLOCK_LINEAR_2D(%d, %d, %d, %#x, %d)",
				v>>23&0x7, v>>22&0x1, v>>20&0x3, v>>12&0xff, v&0xf)
		}
	}
	return fmt.Sprintf("%s:%#x", m.Vendor(), m.Value())
}

// Parse resolves a kernel macro name, a short display name or a numeric
// value (decimal or 0x-prefixed hex) to a modifier. Short names shared by
// several platforms are rejected as ambiguous.
func Parse(s string) (Modifier, error) {
	if s == "" {
		return Invalid, fmt.Errorf("%w: empty name", ErrUnsupportedModifier)
	}
	for i := range table {
		if table[i].name == s {
			return table[i].mod, nil
		}
	}
	if s == "DRM_FORMAT_MOD_BROADCOM_VC4_T_TILED" || s == "t-tiled" {
		return BroadcomVC4TTiled, nil
	}

	var found []Modifier
	for i := range table {
		if table[i].short == s {
			found = append(found, table[i].mod)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
	default:
		names := make([]string, len(found))
		for i, m := range found {
			names[i] = m.String()
		}
		return Invalid, fmt.Errorf("%w: %q is ambiguous (%s)", ErrUnsupportedModifier, s, strings.Join(names, ", "))
	}

	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return Modifier(v), nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedModifier, s)
}
