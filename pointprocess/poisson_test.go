package pointprocess

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	w := Window{X0: 1, Y0: 2, X1: 4, Y1: 4}
	assert.Equal(t, 3.0, w.Width())
	assert.Equal(t, 2.0, w.Height())
	assert.Equal(t, 6.0, w.Area())
}

func TestHomogeneousPoissonStaysInWindow(t *testing.T) {
	w := Window{X0: -2, Y0: 3, X1: 5, Y1: 10}
	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 50; run++ {
		for _, p := range HomogeneousPoisson(10, w, rng) {
			assert.GreaterOrEqual(t, p.X, w.X0)
			assert.Less(t, p.X, w.X1)
			assert.GreaterOrEqual(t, p.Y, w.Y0)
			assert.Less(t, p.Y, w.Y1)
		}
	}
}

func TestHomogeneousPoissonMeanCount(t *testing.T) {
	// Mean count over many runs should match intensity * area within a few
	// standard errors (sigma = sqrt(mean/runs)).
	const runs = 2000
	const mean = 12.0
	w := Window{X0: 0, Y0: 0, X1: 1, Y1: 1}
	rng := rand.New(rand.NewSource(7))

	total := 0
	for run := 0; run < runs; run++ {
		total += len(HomogeneousPoisson(mean, w, rng))
	}
	empirical := float64(total) / runs
	assert.InDelta(t, mean, empirical, 5*math.Sqrt(mean/runs))
}

func TestHomogeneousPoissonDeterministic(t *testing.T) {
	w := Window{X0: 0, Y0: 0, X1: 1, Y1: 1}
	first := HomogeneousPoisson(12, w, rand.New(rand.NewSource(3)))
	second := HomogeneousPoisson(12, w, rand.New(rand.NewSource(3)))
	assert.Equal(t, first, second)
}

func TestUniform(t *testing.T) {
	w := Window{X0: 0, Y0: 0, X1: 2, Y1: 2}
	points := Uniform(25, w, rand.New(rand.NewSource(1)))
	require.Len(t, points, 25)
	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X < 2)
		assert.True(t, p.Y >= 0 && p.Y < 2)
	}
}
