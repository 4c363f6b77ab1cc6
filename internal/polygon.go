package internal

type Polygon struct {
	Points []Point
}

// Crossing-number point-in-polygon. This is provided primarily for testing
// that placed points actually land inside their cell. The segment intersect
// expression follows the classic PNPoly formulation.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.crossingCount(p)%2 == 1
}

func (poly Polygon) crossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) != (nextVertex.Y > p.Y) &&
			p.X < (nextVertex.X-vertex.X)*(p.Y-vertex.Y)/(nextVertex.Y-vertex.Y)+vertex.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
