// Package pointprocess generates random planar point patterns for the
// simulation harness.
package pointprocess

import (
	"math"
	"math/rand"

	vs "github.com/pointpattern/voronoisample"
)

// Window is an axis-aligned rectangle.
type Window struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (w Window) Width() float64  { return w.X1 - w.X0 }
func (w Window) Height() float64 { return w.Y1 - w.Y0 }
func (w Window) Area() float64   { return w.Width() * w.Height() }

// HomogeneousPoisson simulates a homogeneous Poisson point process with the
// given intensity (mean density per unit area) on the window: the point
// count is Poisson distributed with mean intensity*area and positions are
// independent uniforms.
func HomogeneousPoisson(intensity float64, w Window, rng *rand.Rand) []vs.Point {
	n := poissonCount(intensity*w.Area(), rng)
	points := make([]vs.Point, n)
	for i := range points {
		points[i] = vs.Point{
			X: w.X0 + w.Width()*rng.Float64(),
			Y: w.Y0 + w.Height()*rng.Float64(),
		}
	}
	return points
}

// Uniform places exactly n independent uniform points on the window. Handy
// for fixed-size patterns in tests and demos.
func Uniform(n int, w Window, rng *rand.Rand) []vs.Point {
	points := make([]vs.Point, n)
	for i := range points {
		points[i] = vs.Point{
			X: w.X0 + w.Width()*rng.Float64(),
			Y: w.Y0 + w.Height()*rng.Float64(),
		}
	}
	return points
}

// Knuth's product method. Fine for the moderate means this harness uses;
// a rejection sampler would only pay off for means in the hundreds.
func poissonCount(mean float64, rng *rand.Rand) int {
	limit := math.Exp(-mean)
	count := 0
	product := rng.Float64()
	for product > limit {
		count++
		product *= rng.Float64()
	}
	return count
}
