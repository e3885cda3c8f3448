package model

import "github.com/sheikhrachel/go-gol-regions/rules"

// CellChange is a pending write of Value to the cell (Row, Col)
type CellChange struct {
	Row   int
	Col   int
	Value uint8
}

// Scan applies the Conway rules to every cell of the region against g and returns
// the cells whose value changes, in row-major order. g is only read.
func Scan(g *Grid, region SubRegion) []CellChange {
	var changes []CellChange
	for r := region.RowStart; r < region.RowStop; r++ {
		for c := region.ColStart; c < region.ColStop; c++ {
			if next, changed := rules.Transition(g.cells[r*g.cols+c], g.NeighborSum(r, c)); changed {
				changes = append(changes, CellChange{Row: r, Col: c, Value: next})
			}
		}
	}
	return changes
}
