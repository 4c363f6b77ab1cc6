package internal

import "math"

// Shoelace area and centroid. Used by the validation harness and the
// convergence tests; placement itself never needs the centroid.

// SignedArea returns the shoelace area of the polygon: positive for a
// counterclockwise ring, negative for clockwise.
func (poly Polygon) SignedArea() float64 {
	sum := 0.0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return sum / 2
}

// Area returns the absolute polygon area.
func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// Centroid returns the analytic center of mass of the polygon. Throws if the
// polygon has zero area, since the centroid is undefined there.
func (poly Polygon) Centroid() Point {
	signedArea := poly.SignedArea()
	if Equal(signedArea, 0) {
		fatalf("centroid of zero-area polygon with %d points", len(poly.Points))
	}
	var cx, cy float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		cross := vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
		cx += (vertex.X + nextVertex.X) * cross
		cy += (vertex.Y + nextVertex.Y) * cross
	}
	return Point{X: cx / (6 * signedArea), Y: cy / (6 * signedArea)}
}
