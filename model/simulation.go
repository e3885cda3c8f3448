package model

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-regions/utils"
)

// Simulation owns the authoritative grid of a run and its generation counter
type Simulation struct {
	grid        *Grid
	generation  int
	lastChanges int
	generations int
	coordinator *Coordinator
	pool        *GridPool
	logger      *slog.Logger
}

// NewSimulation partitions the grid according to the configuration and prepares a run.
// A partition that does not fit the grid is a configuration error and no state is created.
func NewSimulation(g *Grid, config utils.Config, logger *slog.Logger) (*Simulation, error) {
	if g == nil {
		return nil, errors.Wrap(ErrInvalidDimensions, "[NewSimulation] nil grid")
	}
	if logger == nil {
		logger = slog.Default()
	}

	regions, err := Partition(g.Rows(), g.Cols(), config.RowGroups, config.ColGroups)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulation]")
	}

	var pool *GridPool
	if config.UseMemoryPool {
		pool = NewGridPool()
	}

	return &Simulation{
		grid:        g,
		generations: config.Generations,
		coordinator: NewCoordinator(regions, WithLogger(logger), WithGridPool(pool)),
		pool:        pool,
		logger:      logger,
	}, nil
}

// Snapshot returns the current grid and its generation index.
// With a memory pool the grid may be recycled after the next Step.
func (s *Simulation) Snapshot() (*Grid, int) {
	return s.grid, s.generation
}

// Generation returns the current generation index
func (s *Simulation) Generation() int {
	return s.generation
}

// LastChanges returns the number of cells changed by the latest Step
func (s *Simulation) LastChanges() int {
	return s.lastChanges
}

// Regions returns the sub-regions scanned every generation
func (s *Simulation) Regions() []SubRegion {
	return s.coordinator.Regions()
}

// Step advances the run by one generation. On failure the current grid and
// generation are left unchanged.
func (s *Simulation) Step(ctx context.Context) error {
	next, changes, err := s.coordinator.advance(ctx, s.grid)
	if err != nil {
		return errors.Wrapf(err, "[Step] generation %d", s.generation+1)
	}

	// the initial grid belongs to the caller and is never recycled
	prev, owned := s.grid, s.generation > 0
	s.grid = next
	s.generation++
	s.lastChanges = changes
	if owned {
		GridToPool(prev, s.pool)
	}
	return nil
}

// Run observes the initial generation, then advances and observes the configured
// number of generations. The grid handed to observe is only valid until observe returns.
func (s *Simulation) Run(ctx context.Context, observe func(g *Grid, generation int) error) error {
	s.logger.Info("simulation started",
		"rows", s.grid.Rows(),
		"cols", s.grid.Cols(),
		"regions", len(s.coordinator.regions),
		"generations", s.generations,
		"living", s.grid.CountLivingCells(),
	)

	if err := observe(s.grid, s.generation); err != nil {
		return errors.Wrapf(err, "[Run] observe generation %d", s.generation)
	}
	for s.generation < s.generations {
		if err := s.Step(ctx); err != nil {
			s.logger.Error("simulation aborted", "generation", s.generation, "error", err)
			return errors.Wrap(err, "[Run]")
		}
		if err := observe(s.grid, s.generation); err != nil {
			return errors.Wrapf(err, "[Run] observe generation %d", s.generation)
		}
	}

	s.logger.Info("simulation finished",
		"generations", s.generation,
		"living", s.grid.CountLivingCells(),
		"hash", s.grid.GetGridHash(),
	)
	return nil
}
