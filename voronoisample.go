// Uniform random point placement on the bounded cells of a Voronoi
// tessellation.
//
// Given a tessellation (vertex table, per-region vertex rings, point-region
// mapping) and the generating points, this package places one point uniformly
// at random inside every bounded cell: the cell polygon is fan-triangulated
// around its generator, a triangle is drawn with probability proportional to
// its area, and a point is placed in it with the square-root barycentric
// transform. Unbounded cells produce no point.
package voronoisample

import "github.com/pointpattern/voronoisample/internal"

type Point = internal.Point
type RingEntry = internal.RingEntry
type Ring = internal.Ring
type Tessellation = internal.Tessellation
type Polygon = internal.Polygon
type Source = internal.Source
type DegenerateCellError = internal.DegenerateCellError
type InvalidInputError = internal.InvalidInputError

// NewTessellation builds a tessellation from raw engine output, where each
// region is a vertex-index list and -1 marks a vertex at infinity.
func NewTessellation(vertices []Point, regions [][]int, pointRegion []int) (*Tessellation, error) {
	return internal.NewTessellation(vertices, regions, pointRegion)
}

// Place runs one placement pass: one uniform point in each bounded cell,
// drawing three uniforms per bounded cell from rng. It returns the placed
// points and the generating-point indices that had bounded cells, in
// ascending index order. A tessellation with no bounded cells returns empty
// slices and no error.
func Place(t *Tessellation, sites []Point, rng Source) (points []Point, bounded []int, err error) {
	defer func() {
		recoveredErr := internal.HandlePlacePanicRecover(recover())
		if recoveredErr != nil {
			points = nil
			bounded = nil
			err = recoveredErr
		}
	}()
	points, bounded = internal.PlaceUniform(t, sites, rng)
	return points, bounded, nil
}

// CellPolygon returns the polygon of a bounded region, e.g. for computing
// its analytic centroid. Unbounded or out-of-range regions are an error.
func CellPolygon(t *Tessellation, region int) (poly Polygon, err error) {
	defer func() {
		recoveredErr := internal.HandlePlacePanicRecover(recover())
		if recoveredErr != nil {
			poly = Polygon{}
			err = recoveredErr
		}
	}()
	return internal.CellPolygon(t, region), nil
}

// Accumulation collects repeated placement passes over one tessellation,
// keeping per-cell coordinate sums for Monte-Carlo averaging.
type Accumulation struct {
	// Bounded holds the generating-point indices with bounded cells, in
	// ascending order. The sums are indexed consistently with it.
	Bounded []int
	Reps    int

	sumX []float64
	sumY []float64
}

// Means returns the empirical mean of the placed points per bounded cell.
// With enough repetitions it converges to the cell's analytic centroid.
func (a *Accumulation) Means() []Point {
	means := make([]Point, len(a.Bounded))
	for i := range a.Bounded {
		means[i] = Point{
			X: a.sumX[i] / float64(a.Reps),
			Y: a.sumY[i] / float64(a.Reps),
		}
	}
	return means
}

// PlaceRepeated runs reps independent placement passes with fresh draws from
// rng and accumulates the results. The bounded index set is a property of
// the tessellation alone, so it is identical across passes. Any failing pass
// aborts the whole run.
func PlaceRepeated(t *Tessellation, sites []Point, reps int, rng Source) (*Accumulation, error) {
	if reps <= 0 {
		return nil, &InvalidInputError{Reason: "repetition count must be positive"}
	}
	var acc *Accumulation
	for rep := 0; rep < reps; rep++ {
		points, bounded, err := Place(t, sites, rng)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = &Accumulation{
				Bounded: bounded,
				sumX:    make([]float64, len(bounded)),
				sumY:    make([]float64, len(bounded)),
			}
		}
		for i, p := range points {
			acc.sumX[i] += p.X
			acc.sumY[i] += p.Y
		}
		acc.Reps++
	}
	return acc, nil
}
