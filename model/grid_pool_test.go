package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPool_GetReturnsClearedGrid(t *testing.T) {
	pool := NewGridPool()

	dirty, err := NewGrid(3, 3, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	GridToPool(dirty, pool)

	for _, size := range [][2]int{{3, 3}, {2, 2}, {4, 5}} {
		g := pool.Get(size[0], size[1])
		assert.Equal(t, size[0], g.Rows())
		assert.Equal(t, size[1], g.Cols())
		assert.Len(t, g.Cells(), size[0]*size[1])
		assert.Equal(t, 0, g.CountLivingCells())
		pool.Put(g)
	}
}

func TestGridToPool_NilPool(t *testing.T) {
	g, err := EmptyGrid(1, 1)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		GridToPool(g, nil)
		GridToPool(nil, NewGridPool())
	})
}
