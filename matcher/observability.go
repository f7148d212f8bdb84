package matcher

import (
	"context"
	"strconv"
	"time"

	"github.com/crochee/ope/logger"
	"github.com/crochee/ope/observability"
)

// WithTracing wraps a Matcher with OpenTelemetry span creation.
// Each call creates a span named "{prefix}.matches".
func WithTracing(m Matcher, prefix string) Matcher {
	return &tracingMatcher{inner: m, prefix: prefix}
}

type tracingMatcher struct {
	inner  Matcher
	prefix string
}

func (t *tracingMatcher) Matches(ctx context.Context, haystack []string, needle string) (bool, error) {
	ctx, span := observability.StartSpan(ctx, t.prefix+".matches")
	defer span.End()

	observability.SetSpanAttribute(ctx, "match.haystack_size", strconv.Itoa(len(haystack)))

	matched, err := t.inner.Matches(ctx, haystack, needle)
	if err != nil {
		observability.SetSpanError(ctx, err)
	} else {
		observability.SetSpanAttribute(ctx, "match.matched", strconv.FormatBool(matched))
	}

	return matched, err
}

// WithMetrics wraps a Matcher with metric recording.
// Records evaluation count, duration, and outcome.
func WithMetrics(m Matcher, metrics *observability.Metrics) Matcher {
	return &metricsMatcher{inner: m, metrics: metrics}
}

type metricsMatcher struct {
	inner   Matcher
	metrics *observability.Metrics
}

func (t *metricsMatcher) Matches(ctx context.Context, haystack []string, needle string) (bool, error) {
	start := time.Now()
	matched, err := t.inner.Matches(ctx, haystack, needle)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
	}
	t.metrics.RecordMatch(ctx, status, matched, duration)

	return matched, err
}

// WithLogging wraps a Matcher with evaluation logging.
// Logs needle, haystack size, duration, and success/error status.
func WithLogging(m Matcher, log *logger.Logger) Matcher {
	return &loggingMatcher{inner: m, log: log}
}

type loggingMatcher struct {
	inner Matcher
	log   *logger.Logger
}

func (t *loggingMatcher) Matches(ctx context.Context, haystack []string, needle string) (bool, error) {
	start := time.Now()
	matched, err := t.inner.Matches(ctx, haystack, needle)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldNeedle:   needle,
		"haystack_size":      len(haystack),
		logger.FieldDuration: duration.Milliseconds(),
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		t.log.Error("match evaluation failed", fields)
	} else {
		fields["matched"] = matched
		t.log.Debug("match evaluation completed", fields)
	}

	return matched, err
}

// Interface Guards
var _ Observer = (*observability.Metrics)(nil)
