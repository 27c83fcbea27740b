package utils

// FloorMod - Returns a mod m rounded towards negative infinity, hence always in range 0 -> m - 1 for a positive m
func FloorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// FloorDiv - Returns a / d rounded towards negative infinity, the companion of FloorMod so that
// a == FloorDiv(a, d)*d + FloorMod(a, d) holds also for negative a
func FloorDiv(a, d int64) int64 {
	q := a / d
	if (a%d != 0) && ((a < 0) != (d < 0)) {
		q--
	}

	return q
}

// IsPowerOf2 - Returns true if n is a positive power of 2 (1 included)
func IsPowerOf2(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// RoundUp2 - Rounds up to the nearest exponent of 2
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	r := a - 1
	r |= r >> 1
	r |= r >> 2
	r |= r >> 4
	r |= r >> 8
	r |= r >> 16
	r |= r >> 32

	return r + 1
}
