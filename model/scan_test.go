package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan_LonelyCellDies(t *testing.T) {
	g := mustGrid(t, 3, 3, map[[2]int]bool{{1, 1}: true})

	changes := Scan(g, SubRegion{RowStop: 3, ColStop: 3})

	assert.Equal(t, []CellChange{{Row: 1, Col: 1, Value: 0}}, changes)
}

func TestScan_LShapeSubRegion(t *testing.T) {
	g := gridFromRows(t, [][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{1, 0, 0},
	})
	region := SubRegion{RowStart: 0, RowStop: 2, ColStart: 0, ColStop: 1}

	changes := Scan(g, region)

	// (1,0) is alive with three neighbors and survives, so only the birth is emitted
	assert.Equal(t, []CellChange{{Row: 0, Col: 0, Value: 1}}, changes)

	next := g.Apply(changes)
	assert.Equal(t, uint8(1), next.At(0, 0))
	assert.Equal(t, uint8(1), next.At(1, 0))
}

func TestScan_OnlyChangedCells(t *testing.T) {
	g := gridFromRows(t, [][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{1, 0, 0},
	})

	for _, ch := range Scan(g, SubRegion{RowStop: 3, ColStop: 3}) {
		assert.NotEqual(t, g.At(ch.Row, ch.Col), ch.Value, "no-op change emitted for (%d, %d)", ch.Row, ch.Col)
	}
}

func TestScan_StableBlock(t *testing.T) {
	g := mustGrid(t, 4, 4, map[[2]int]bool{
		{1, 1}: true, {1, 2}: true,
		{2, 1}: true, {2, 2}: true,
	})

	assert.Empty(t, Scan(g, SubRegion{RowStop: 4, ColStop: 4}))
	assert.Empty(t, Scan(g, SubRegion{RowStart: 1, RowStop: 3, ColStart: 1, ColStop: 3}))
	assert.Empty(t, Scan(g, SubRegion{RowStart: 2, RowStop: 4, ColStart: 0, ColStop: 2}))
}

func TestScan_StaysInsideRegion(t *testing.T) {
	// vertical blinker in the middle column
	g := mustGrid(t, 5, 5, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})
	region := SubRegion{RowStart: 0, RowStop: 5, ColStart: 0, ColStop: 2}

	changes := Scan(g, region)

	assert.Equal(t, []CellChange{{Row: 2, Col: 1, Value: 1}}, changes)
	for _, ch := range changes {
		assert.True(t, region.Contains(ch.Row, ch.Col))
	}
}

func TestScan_DoesNotModifyGrid(t *testing.T) {
	g := mustGrid(t, 4, 4, map[[2]int]bool{{0, 0}: true, {1, 1}: true, {2, 1}: true, {3, 3}: true})
	before := g.Cells()

	Scan(g, SubRegion{RowStop: 4, ColStop: 4})

	assert.Equal(t, before, g.Cells())
}
