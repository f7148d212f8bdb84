package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OpenTelemetry instruments for match evaluation.
// It implements matcher.Observer so compile and cache traffic can be
// recorded by wiring it into the matcher at construction.
type Metrics struct {
	matchTotal     metric.Int64Counter
	matchDuration  metric.Float64Histogram
	compileTotal   metric.Int64Counter
	cacheHitTotal  metric.Int64Counter
	cacheMissTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	matchTotal, err := meter.Int64Counter("match.total",
		metric.WithDescription("Total number of match evaluations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating match.total counter: %w", err)
	}

	matchDuration, err := meter.Float64Histogram("match.duration",
		metric.WithDescription("Duration of match evaluations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating match.duration histogram: %w", err)
	}

	compileTotal, err := meter.Int64Counter("compile.total",
		metric.WithDescription("Total number of template compilations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating compile.total counter: %w", err)
	}

	cacheHitTotal, err := meter.Int64Counter("cache.hit.total",
		metric.WithDescription("Compiled-pattern cache hits"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cache.hit.total counter: %w", err)
	}

	cacheMissTotal, err := meter.Int64Counter("cache.miss.total",
		metric.WithDescription("Compiled-pattern cache misses"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cache.miss.total counter: %w", err)
	}

	return &Metrics{
		matchTotal:     matchTotal,
		matchDuration:  matchDuration,
		compileTotal:   compileTotal,
		cacheHitTotal:  cacheHitTotal,
		cacheMissTotal: cacheMissTotal,
	}, nil
}

// RecordMatch records one match evaluation with its outcome and duration.
func (m *Metrics) RecordMatch(ctx context.Context, status string, matched bool, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("status", status),
		attribute.Bool("matched", matched),
	)
	m.matchTotal.Add(ctx, 1, attrs)
	m.matchDuration.Record(ctx, d.Seconds(), attrs)
}

// OnCompile implements matcher.Observer.
func (m *Metrics) OnCompile(string) {
	m.compileTotal.Add(context.Background(), 1)
}

// OnCacheHit implements matcher.Observer.
func (m *Metrics) OnCacheHit(string) {
	m.cacheHitTotal.Add(context.Background(), 1)
}

// OnCacheMiss implements matcher.Observer.
func (m *Metrics) OnCacheMiss(string) {
	m.cacheMissTotal.Add(context.Background(), 1)
}
