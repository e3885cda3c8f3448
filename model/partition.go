package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// SubRegion is a half-open rectangle [RowStart, RowStop) x [ColStart, ColStop) of a grid
type SubRegion struct {
	RowStart int
	RowStop  int
	ColStart int
	ColStop  int
}

// Contains reports whether the cell (r, c) lies inside the region
func (s SubRegion) Contains(r, c int) bool {
	return r >= s.RowStart && r < s.RowStop && c >= s.ColStart && c < s.ColStop
}

// Size returns the number of cells in the region
func (s SubRegion) Size() int {
	return (s.RowStop - s.RowStart) * (s.ColStop - s.ColStart)
}

func (s SubRegion) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", s.RowStart, s.RowStop, s.ColStart, s.ColStop)
}

// GroupSizes splits n into the given number of contiguous groups as evenly as possible.
// The first n%groups groups get one extra unit.
func GroupSizes(n, groups int) []int {
	if groups < 1 {
		return nil
	}
	var (
		base  = n / groups
		extra = n % groups
		sizes = make([]int, groups)
	)
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

// Partition divides a rows x cols grid into rowGroups x colGroups disjoint sub-regions
// covering every cell exactly once. Regions are ordered by row span, then column span.
func Partition(rows, cols, rowGroups, colGroups int) ([]SubRegion, error) {
	switch {
	case rows < 1 || cols < 1:
		return nil, errors.Wrapf(ErrInvalidPartition, "[Partition] empty grid %dx%d", rows, cols)
	case rowGroups < 1 || colGroups < 1:
		return nil, errors.Wrapf(ErrInvalidPartition, "[Partition] group counts must be positive, got %dx%d", rowGroups, colGroups)
	case rowGroups > rows || colGroups > cols:
		return nil, errors.Wrapf(ErrInvalidPartition,
			"[Partition] %dx%d groups do not fit a %dx%d grid", rowGroups, colGroups, rows, cols)
	}

	var (
		rowSizes = GroupSizes(rows, rowGroups)
		colSizes = GroupSizes(cols, colGroups)
		regions  = make([]SubRegion, 0, rowGroups*colGroups)
		rowStart = 0
	)
	for _, rowLen := range rowSizes {
		colStart := 0
		for _, colLen := range colSizes {
			regions = append(regions, SubRegion{
				RowStart: rowStart,
				RowStop:  rowStart + rowLen,
				ColStart: colStart,
				ColStop:  colStart + colLen,
			})
			colStart += colLen
		}
		rowStart += rowLen
	}
	return regions, nil
}
