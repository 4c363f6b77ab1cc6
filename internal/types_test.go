package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBounded(t *testing.T) {
	t.Run("all concrete vertices", func(t *testing.T) {
		ring := Ring{VertexRef(0), VertexRef(1), VertexRef(2)}
		assert.True(t, ring.Bounded())
	})

	t.Run("at-infinity entry anywhere", func(t *testing.T) {
		assert.False(t, Ring{Infinity, VertexRef(0), VertexRef(1)}.Bounded())
		assert.False(t, Ring{VertexRef(0), Infinity, VertexRef(1)}.Bounded())
		assert.False(t, Ring{VertexRef(0), VertexRef(1), Infinity}.Bounded())
	})

	t.Run("empty ring is not bounded", func(t *testing.T) {
		assert.False(t, Ring{}.Bounded())
		assert.False(t, Ring(nil).Bounded())
	})
}

func TestNewTessellation(t *testing.T) {
	vertices := []Point{{0, 0}, {1, 0}, {0, 1}}

	t.Run("converts the -1 sentinel", func(t *testing.T) {
		tess, err := NewTessellation(vertices, [][]int{{0, 1, 2}, {1, -1, 2}, {}}, []int{1, 0, 2})
		require.NoError(t, err)
		assert.Equal(t, Ring{VertexRef(0), VertexRef(1), VertexRef(2)}, tess.Regions[0])
		assert.Equal(t, Ring{VertexRef(1), Infinity, VertexRef(2)}, tess.Regions[1])
		assert.True(t, tess.Regions[0].Bounded())
		assert.False(t, tess.Regions[1].Bounded())
		assert.False(t, tess.Regions[2].Bounded())
	})

	t.Run("rejects out of range vertex index", func(t *testing.T) {
		_, err := NewTessellation(vertices, [][]int{{0, 1, 3}}, []int{0})
		require.Error(t, err)
		assert.IsType(t, &InvalidInputError{}, err)

		_, err = NewTessellation(vertices, [][]int{{0, -2, 1}}, []int{0})
		require.Error(t, err)
		assert.IsType(t, &InvalidInputError{}, err)
	})

	t.Run("rejects out of range region mapping", func(t *testing.T) {
		_, err := NewTessellation(vertices, [][]int{{0, 1, 2}}, []int{1})
		require.Error(t, err)
		assert.IsType(t, &InvalidInputError{}, err)
	})
}

func TestRingVertices(t *testing.T) {
	table := []Point{{0, 0}, {1, 0}, {1, 1}}
	ring := Ring{VertexRef(2), VertexRef(0), VertexRef(1)}
	assert.Equal(t, []Point{{1, 1}, {0, 0}, {1, 0}}, ring.Vertices(table))
}
