package internal

type Point struct {
	X float64
	Y float64
}

// RingEntry is one slot of a region's vertex ring: either a reference into
// the tessellation's shared vertex table, or an explicit marker for a vertex
// at infinity. Tessellation engines conventionally encode the latter as a -1
// index; that convention is converted to the tagged form at the ingestion
// boundary and never leaks past it.
type RingEntry struct {
	Vertex     int
	AtInfinity bool
}

// VertexRef makes a ring entry referencing vertex index i.
func VertexRef(i int) RingEntry {
	return RingEntry{Vertex: i}
}

// Infinity is the ring entry for an unreachable vertex at infinity.
var Infinity = RingEntry{Vertex: -1, AtInfinity: true}

// Ring is the ordered vertex ring of one tessellation region. The ring is
// implicitly closed: after the last entry it returns to the first.
type Ring []RingEntry

// Bounded reports whether the ring encloses a finite region: non-empty and
// free of at-infinity entries. An empty ring (a degenerate region, e.g. from
// collinear input configurations) is not bounded.
func (r Ring) Bounded() bool {
	if len(r) == 0 {
		return false
	}
	for _, entry := range r {
		if entry.AtInfinity {
			return false
		}
	}
	return true
}

// Vertices resolves the ring against the vertex table. Only valid for
// bounded rings; callers must classify first.
func (r Ring) Vertices(table []Point) []Point {
	points := make([]Point, len(r))
	for i, entry := range r {
		if entry.AtInfinity {
			fatalf("cannot resolve vertices of an unbounded ring")
		}
		if entry.Vertex < 0 || entry.Vertex >= len(table) {
			fatalf("ring references vertex %d, table has %d", entry.Vertex, len(table))
		}
		points[i] = table[entry.Vertex]
	}
	return points
}

// Tessellation is the output of an external Voronoi engine in the form the
// placement driver consumes: a shared vertex table, one ring per region, and
// the mapping from generating-point index to region index. The mapping is
// never assumed to be the identity.
type Tessellation struct {
	Vertices    []Point
	Regions     []Ring
	PointRegion []int
}

// NewTessellation builds a Tessellation from the raw engine output, where
// regions are vertex-index lists using -1 for a vertex at infinity. Any
// other negative index, an out-of-range index, or an out-of-range region in
// the point mapping is an InvalidInputError.
func NewTessellation(vertices []Point, rawRegions [][]int, pointRegion []int) (*Tessellation, error) {
	regions := make([]Ring, len(rawRegions))
	for i, raw := range rawRegions {
		ring := make(Ring, len(raw))
		for j, index := range raw {
			switch {
			case index == -1:
				ring[j] = Infinity
			case index < 0 || index >= len(vertices):
				return nil, &InvalidInputError{
					Reason: invalidf("region %d references vertex %d, table has %d", i, index, len(vertices)),
				}
			default:
				ring[j] = VertexRef(index)
			}
		}
		regions[i] = ring
	}
	for i, region := range pointRegion {
		if region < 0 || region >= len(regions) {
			return nil, &InvalidInputError{
				Reason: invalidf("point %d maps to region %d, tessellation has %d regions", i, region, len(regions)),
			}
		}
	}
	return &Tessellation{
		Vertices:    vertices,
		Regions:     regions,
		PointRegion: pointRegion,
	}, nil
}
