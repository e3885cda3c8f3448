package model

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// scanFunc computes the changes of one region of a generation
type scanFunc func(ctx context.Context, g *Grid, region SubRegion) ([]CellChange, error)

// scanRegion is the default scanFunc
func scanRegion(_ context.Context, g *Grid, region SubRegion) ([]CellChange, error) {
	return Scan(g, region), nil
}

// Coordinator advances a grid one generation at a time by scanning every
// sub-region concurrently and applying the collected changes once all scans finished.
type Coordinator struct {
	regions []SubRegion
	pool    *GridPool
	logger  *slog.Logger
	scan    scanFunc
}

// CoordinatorOption configures a Coordinator
type CoordinatorOption func(*Coordinator)

// WithLogger sets the logger used for per-generation debug output
func WithLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithGridPool makes the coordinator build new generations from pooled grids
func WithGridPool(pool *GridPool) CoordinatorOption {
	return func(c *Coordinator) {
		c.pool = pool
	}
}

// NewCoordinator creates a coordinator for a fixed set of regions. The regions
// must partition the grids later passed to Advance.
func NewCoordinator(regions []SubRegion, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		regions: append([]SubRegion(nil), regions...),
		logger:  slog.Default(),
		scan:    scanRegion,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Regions returns a copy of the regions scanned each generation
func (c *Coordinator) Regions() []SubRegion {
	return append([]SubRegion(nil), c.regions...)
}

// Advance computes the generation following g. g is shared read-only by every
// region scan and is never modified. If any scan fails no change is applied and
// the returned error wraps ErrScanFailed.
func (c *Coordinator) Advance(ctx context.Context, g *Grid) (*Grid, error) {
	next, _, err := c.advance(ctx, g)
	return next, err
}

// advance is Advance that also reports how many cells changed
func (c *Coordinator) advance(ctx context.Context, g *Grid) (*Grid, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "[Advance] context done before dispatch")
	}

	ctx, span := startAdvanceSpan(ctx, g, len(c.regions))
	defer span.End()
	start := time.Now()

	results, err := c.dispatch(ctx, g)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordAdvanceMetrics(ctx, time.Since(start), 0, false)
		return nil, 0, err
	}

	var changes []CellChange
	for _, res := range results {
		changes = append(changes, res...)
	}

	var next *Grid
	if c.pool != nil {
		next = g.applyInto(c.pool.Get(g.rows, g.cols), changes)
	} else {
		next = g.Apply(changes)
	}

	elapsed := time.Since(start)
	span.SetAttributes(attribute.Int("grid.changes", len(changes)))
	recordAdvanceMetrics(ctx, elapsed, len(changes), true)
	c.logger.Debug("generation advanced",
		"regions", len(c.regions),
		"changes", len(changes),
		"duration", elapsed,
	)
	return next, len(changes), nil
}

// dispatch runs one scan per region and waits for all of them.
// Each worker writes only its own slot of the result slice.
func (c *Coordinator) dispatch(ctx context.Context, g *Grid) ([][]CellChange, error) {
	results := make([][]CellChange, len(c.regions))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, region := range c.regions {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("panic: %v", r)
				}
				if err != nil {
					err = errors.Wrapf(ErrScanFailed, "[Advance] region %d %s: %v", i, region, err)
				}
			}()
			results[i], err = c.scan(egCtx, g, region)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Step computes the generation following g on the calling goroutine with a
// single region covering the whole grid.
func Step(g *Grid) *Grid {
	return g.Apply(Scan(g, SubRegion{RowStop: g.rows, ColStop: g.cols}))
}
