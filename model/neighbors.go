package model

// position is a (row, col) grid coordinate
type position struct {
	r, c int
}

// NeighborSum returns the sum of the values of the existing neighbors of (r, c)
// in a row-major rows x cols slice. Positions outside the grid do not exist: there
// is no wraparound. Corners have 3 neighbors, edges 5 and interior cells 8.
//
// Single-row grids only have horizontal neighbors, single-column grids only
// vertical ones and a 1x1 grid has none.
func NeighborSum(cells []uint8, rows, cols, r, c int) int {
	switch {
	case rows == 1 && cols == 1:
		return 0
	case rows == 1:
		return gather(cells, cols, lineNeighbors(c, cols, func(i int) position { return position{0, i} }))
	case cols == 1:
		return gather(cells, cols, lineNeighbors(r, rows, func(i int) position { return position{i, 0} }))
	}

	lastRow, lastCol := rows-1, cols-1
	var pos []position
	switch {
	// Top left corner
	case r == 0 && c == 0:
		pos = []position{{0, 1}, {1, 0}, {1, 1}}
	// Top right corner
	case r == 0 && c == lastCol:
		pos = []position{{0, lastCol - 1}, {1, lastCol - 1}, {1, lastCol}}
	// Bottom right corner
	case r == lastRow && c == lastCol:
		pos = []position{{lastRow - 1, lastCol}, {lastRow - 1, lastCol - 1}, {lastRow, lastCol - 1}}
	// Bottom left corner
	case r == lastRow && c == 0:
		pos = []position{{lastRow - 1, 0}, {lastRow - 1, 1}, {lastRow, 1}}
	// Top row
	case r == 0:
		pos = []position{{0, c - 1}, {1, c - 1}, {1, c}, {1, c + 1}, {0, c + 1}}
	// Right column
	case c == lastCol:
		pos = []position{{r - 1, c}, {r - 1, c - 1}, {r, c - 1}, {r + 1, c - 1}, {r + 1, c}}
	// Bottom row
	case r == lastRow:
		pos = []position{{r, c - 1}, {r - 1, c - 1}, {r - 1, c}, {r - 1, c + 1}, {r, c + 1}}
	// Left column
	case c == 0:
		pos = []position{{r - 1, 0}, {r - 1, 1}, {r, 1}, {r + 1, 1}, {r + 1, 0}}
	default:
		pos = []position{
			{r - 1, c - 1}, {r - 1, c}, {r - 1, c + 1},
			{r, c + 1}, {r + 1, c + 1}, {r + 1, c},
			{r + 1, c - 1}, {r, c - 1},
		}
	}
	return gather(cells, cols, pos)
}

// lineNeighbors returns the in-bounds neighbors of index i on a line of length n
func lineNeighbors(i, n int, at func(int) position) []position {
	pos := make([]position, 0, 2)
	if i > 0 {
		pos = append(pos, at(i-1))
	}
	if i < n-1 {
		pos = append(pos, at(i+1))
	}
	return pos
}

// gather adds the values found at every position
func gather(cells []uint8, cols int, pos []position) int {
	sum := 0
	for _, p := range pos {
		sum += int(cells[p.r*cols+p.c])
	}
	return sum
}
