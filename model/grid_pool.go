package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles the backing storage of discarded generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resetting its dimensions
func (p *GridPool) Get(rows, cols int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(rows, cols)
	return g
}

// Put returns a grid to the pool. The caller must not use it afterwards.
func (p *GridPool) Put(g *Grid) {
	p.pool.Put(g)
}
