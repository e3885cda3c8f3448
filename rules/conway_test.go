package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, ApplyConwayRules(n, true), "alive with %d neighbors", n)
		assert.Equal(t, n == 3, ApplyConwayRules(n, false), "dead with %d neighbors", n)
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name      string
		cell      uint8
		neighbors int
		next      uint8
		changed   bool
	}{
		{"underpopulation", Alive, 1, Dead, true},
		{"isolated", Alive, 0, Dead, true},
		{"survives with two", Alive, 2, Alive, false},
		{"survives with three", Alive, 3, Alive, false},
		{"overpopulation", Alive, 4, Dead, true},
		{"birth", Dead, 3, Alive, true},
		{"stays dead with two", Dead, 2, Dead, false},
		{"stays dead with eight", Dead, 8, Dead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, changed := Transition(tt.cell, tt.neighbors)
			assert.Equal(t, tt.next, next)
			assert.Equal(t, tt.changed, changed)
		})
	}
}
