package internal

import "math"

// Fan decomposition of a cell polygon around its generating point. The
// generating point of a Voronoi cell always lies inside the cell, so the fan
// (apex, V[i], V[i+1]) covers the polygon exactly, whatever the winding
// direction of the ring. No simplicity or convexity validation is performed;
// the tessellation engine guarantees each cell is a valid simple polygon
// containing its generator.

// FanAreas returns the absolute area of each fan triangle
// (apex, ring[i], ring[i+1 mod m]), one per ring vertex.
func FanAreas(apex Point, ring []Point) []float64 {
	areas := make([]float64, len(ring))
	for i, v1 := range ring {
		v2 := ring[CircularIndex(i+1, len(ring))]
		cross := (v1.X-apex.X)*(v2.Y-apex.Y) - (v2.X-apex.X)*(v1.Y-apex.Y)
		areas[i] = math.Abs(cross) / 2
	}
	return areas
}

// TriangleCDF turns the fan areas into a cumulative distribution normalized
// to end at 1. Throws DegenerateCellError for the given region if the total
// area is zero or not finite. Individual zero-area triangles (a collinear
// apex and edge) are fine; they simply get a zero-width slot in the CDF.
func TriangleCDF(region int, areas []float64) []float64 {
	cdf := make([]float64, len(areas))
	total := 0.0
	for i, area := range areas {
		total += area
		cdf[i] = total
	}
	if !(total > 0) || math.IsInf(total, 1) {
		throwDegenerate(region, total)
	}
	for i := range cdf {
		cdf[i] /= total
	}
	return cdf
}

// SelectTriangle picks the smallest index i with cdf[i] >= r. A draw landing
// exactly on a cumulative boundary resolves to the first satisfying index;
// this tie-break is part of the reproducibility contract and must not be
// changed.
func SelectTriangle(cdf []float64, r float64) int {
	for i, c := range cdf {
		if c >= r {
			return i
		}
	}
	// Roundoff can leave the final cumulative value a hair under 1.
	return len(cdf) - 1
}

// TrianglePoint maps two independent unit uniforms onto the triangle
// (a, b, c) via the square-root transform
//
//	p = (1-√r1)·a + √r1·(1-r2)·b + √r1·r2·c
//
// which folds the unit square onto the triangle with uniform density over
// its area. Plain linear interpolation would bias toward the apex.
func TrianglePoint(a, b, c Point, r1, r2 float64) Point {
	s := math.Sqrt(r1)
	return Point{
		X: (1-s)*a.X + s*(1-r2)*b.X + s*r2*c.X,
		Y: (1-s)*a.Y + s*(1-r2)*b.Y + s*r2*c.Y,
	}
}
