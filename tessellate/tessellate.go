// Package tessellate adapts Fortune-algorithm Voronoi diagrams into the
// tessellation form the placement driver consumes.
//
// The underlying engine clips every cell to a bounding box, so "extends to
// infinity" surfaces as "touches the box": any ring vertex lying on the box
// border is converted to an at-infinity entry, which classifies the cell as
// unbounded. With a box enclosing all sites this matches the usual unbounded
// set (the hull-adjacent cells).
package tessellate

import (
	"github.com/pkg/errors"
	"github.com/zzwx/voronoi"

	vs "github.com/pointpattern/voronoisample"
)

const borderTolerance = 1e-9

// Compute runs the Fortune engine over the sites, clipped and closed on
// bbox, and converts the result. The sites must all lie strictly inside the
// box.
func Compute(sites []vs.Point, bbox voronoi.BBox) (*vs.Tessellation, error) {
	if len(sites) == 0 {
		return nil, errors.New("tessellate: no sites")
	}
	for i, site := range sites {
		if site.X <= bbox.Xl || site.X >= bbox.Xr || site.Y <= bbox.Yt || site.Y >= bbox.Yb {
			return nil, errors.Errorf("tessellate: site %d (%v, %v) outside bounding box", i, site.X, site.Y)
		}
	}
	vertices := make([]voronoi.Vertex, len(sites))
	for i, site := range sites {
		vertices[i] = voronoi.Vertex{X: site.X, Y: site.Y}
	}
	diagram := voronoi.ComputeDiagram(vertices, bbox, true)
	return FromDiagram(diagram, bbox, sites)
}

// FromDiagram converts a closed-cell diagram into a Tessellation. The sites
// slice must be the generating points the diagram was computed from; the
// engine reorders its cells internally, so the point-region mapping is
// recovered by matching each site back to the cell carrying it.
func FromDiagram(diagram *voronoi.Diagram, bbox voronoi.BBox, sites []vs.Point) (*vs.Tessellation, error) {
	cellBySite := make(map[voronoi.Vertex]int, len(diagram.Cells))
	for i, cell := range diagram.Cells {
		cellBySite[cell.Site] = i
	}

	var table []vs.Point
	tableIndex := make(map[voronoi.Vertex]int)
	regions := make([][]int, len(diagram.Cells))
	for i, cell := range diagram.Cells {
		ring := make([]int, 0, len(cell.Halfedges))
		for _, halfedge := range cell.Halfedges {
			v := halfedge.GetStartpoint()
			if onBorder(v, bbox) {
				ring = append(ring, -1)
				continue
			}
			index, ok := tableIndex[v]
			if !ok {
				index = len(table)
				tableIndex[v] = index
				table = append(table, vs.Point{X: v.X, Y: v.Y})
			}
			ring = append(ring, index)
		}
		regions[i] = ring
	}

	pointRegion := make([]int, len(sites))
	for i, site := range sites {
		region, ok := cellBySite[voronoi.Vertex{X: site.X, Y: site.Y}]
		if !ok {
			return nil, errors.Errorf("tessellate: no cell for site %d (%v, %v)", i, site.X, site.Y)
		}
		pointRegion[i] = region
	}

	tess, err := vs.NewTessellation(table, regions, pointRegion)
	return tess, errors.Wrap(err, "tessellate")
}

func onBorder(v voronoi.Vertex, bbox voronoi.BBox) bool {
	return near(v.X, bbox.Xl) || near(v.X, bbox.Xr) ||
		near(v.Y, bbox.Yt) || near(v.Y, bbox.Yb)
}

func near(a, b float64) bool {
	diff := a - b
	return diff < borderTolerance && diff > -borderTolerance
}
