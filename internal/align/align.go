// Package align provides the integer rounding helpers shared by the tiling
// and layout packages.
//
// All helpers operate on unsigned integers. Alignments of zero are treated as
// "no constraint" and return the value unchanged.
package align

// Unsigned is the set of integer types the helpers accept.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Up rounds v up to the next multiple of a.
// a does not need to be a power of two.
func Up[T Unsigned](v, a T) T {
	if a == 0 {
		return v
	}
	return (v + a - 1) / a * a
}

// DivRoundUp returns ceil(n / d). d must be non-zero.
func DivRoundUp[T Unsigned](n, d T) T {
	return (n + d - 1) / d
}

// IsPowerOfTwo reports whether v is a non-zero power of two.
func IsPowerOfTwo[T Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

// PowerOfTwo rounds v up to the next power of two. Zero maps to one.
func PowerOfTwo(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// GCD returns the greatest common divisor of a and b.
func GCD[T Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM[T Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// BitOf returns bit n of v shifted down to bit 0.
func BitOf(v uint64, n uint) uint64 {
	return (v >> n) & 1
}
