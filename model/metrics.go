package model

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("gol-regions.model")
	meter  = otel.Meter("gol-regions.model")
)

var (
	advanceLatency   metric.Float64Histogram
	generationsTotal metric.Int64Counter
	changesTotal     metric.Int64Counter
	scanFailures     metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		advanceLatency, err = meter.Float64Histogram(
			"gol_advance_duration_seconds",
			metric.WithDescription("Duration of one generation: scan of every region plus apply"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		generationsTotal, err = meter.Int64Counter(
			"gol_generations_total",
			metric.WithDescription("Total number of generations computed"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		changesTotal, err = meter.Int64Counter(
			"gol_cell_changes_total",
			metric.WithDescription("Total number of cell changes applied"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		scanFailures, err = meter.Int64Counter(
			"gol_scan_failures_total",
			metric.WithDescription("Total number of generations aborted by a failed region scan"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// startAdvanceSpan creates a span for one generation.
func startAdvanceSpan(ctx context.Context, g *Grid, regions int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Coordinator.Advance",
		trace.WithAttributes(
			attribute.Int("grid.rows", g.Rows()),
			attribute.Int("grid.cols", g.Cols()),
			attribute.Int("grid.regions", regions),
		),
	)
}

// recordAdvanceMetrics records metrics for a finished generation.
func recordAdvanceMetrics(ctx context.Context, duration time.Duration, changes int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("success", success))
	advanceLatency.Record(ctx, duration.Seconds(), attrs)
	if !success {
		scanFailures.Add(ctx, 1)
		return
	}
	generationsTotal.Add(ctx, 1)
	changesTotal.Add(ctx, int64(changes))
}
