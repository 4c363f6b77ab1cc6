package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs cell polygons. It parses the
// SVG, finds whatever the first polygon is, and converts it into a CCW
// Polygon. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{X: x, Y: y})
	}

	poly := Polygon{Points: points}
	if poly.SignedArea() < 0 {
		poly = poly.Reverse()
	}
	return poly
}

// cellFixture wraps a fixture polygon into a one-region tessellation with
// the polygon's centroid as the generating point. The fixtures are convex,
// so the centroid is interior and the fan decomposition is exact.
func cellFixture(name string) (*Tessellation, []Point) {
	poly := LoadFixture(name)
	ring := make([]int, len(poly.Points))
	for i := range ring {
		ring[i] = i
	}
	tess, err := NewTessellation(poly.Points, [][]int{ring}, []int{0})
	if err != nil {
		log.Fatalf("Fixture %q does not form a tessellation: %v", name, err)
	}
	return tess, []Point{poly.Centroid()}
}
