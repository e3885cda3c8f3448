package rules

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Transition returns the next value of a cell and whether it differs from the current one.
// A live cell with fewer than two or more than three neighbors dies, a dead cell with
// exactly three neighbors is born, every other cell keeps its value.
func Transition(cell uint8, neighbors int) (uint8, bool) {
	alive := cell == Alive
	next := Dead
	if ApplyConwayRules(neighbors, alive) {
		next = Alive
	}
	return next, next != cell
}
