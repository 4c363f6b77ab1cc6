package internal

// Source yields independent uniform draws on [0, 1). *math/rand.Rand
// satisfies it. Placement takes the source as an explicit handle rather than
// touching any process-wide generator, so callers control seeding and can
// give each run (or each cell, in a parallel caller) its own stream.
type Source interface {
	Float64() float64
}

// PlaceUniform places one uniform point in every bounded cell of the
// tessellation. sites[i] is the generating point of the cell that
// t.PointRegion[i] resolves to; it doubles as the fan apex since a cell
// always contains its own generator. Returns the placed points and the site
// indices that were bounded, in ascending index order. Unbounded and empty
// regions are skipped and produce no entry.
//
// Exactly three draws are consumed per bounded cell: one for triangle
// selection, two for the in-triangle coordinates. This draw count is a
// contract; with a seeded source the output is fully reproducible.
//
// Malformed input throws InvalidInputError, a zero-area bounded cell throws
// DegenerateCellError. Zero bounded cells is not an error: both results are
// empty.
func PlaceUniform(t *Tessellation, sites []Point, rng Source) (points []Point, bounded []int) {
	if len(sites) != len(t.PointRegion) {
		throwInvalidf("%d sites but mappings for %d", len(sites), len(t.PointRegion))
	}
	for i, site := range sites {
		ring := t.Regions[t.PointRegion[i]]
		if !ring.Bounded() {
			continue
		}
		if len(ring) < 3 {
			throwInvalidf("bounded region %d has only %d vertices", t.PointRegion[i], len(ring))
		}
		cell := ring.Vertices(t.Vertices)

		areas := FanAreas(site, cell)
		cdf := TriangleCDF(t.PointRegion[i], areas)
		tri := SelectTriangle(cdf, rng.Float64())

		b := cell[tri]
		c := cell[CircularIndex(tri+1, len(cell))]
		points = append(points, TrianglePoint(site, b, c, rng.Float64(), rng.Float64()))
		bounded = append(bounded, i)
	}
	return points, bounded
}

// CellPolygon resolves a bounded region's ring into a polygon. Throws
// InvalidInputError if the region is out of range or not bounded.
func CellPolygon(t *Tessellation, region int) Polygon {
	if region < 0 || region >= len(t.Regions) {
		throwInvalidf("region %d out of range, tessellation has %d regions", region, len(t.Regions))
	}
	ring := t.Regions[region]
	if !ring.Bounded() {
		throwInvalidf("region %d is unbounded", region)
	}
	return Polygon{Points: ring.Vertices(t.Vertices)}
}
