package internal

import "math"

const Tolerance = 1e-9

// Float comparison is tolerance based. The areas and coordinates fed through
// the sampler come out of a tessellation engine, so exact equality is only
// ever accidental.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Rings are treated as circular buffers. This gives the modular index for
// length n, but unlike the raw modulo operator, it only gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
