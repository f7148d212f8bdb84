package matcher

import (
	"context"
	"testing"

	"github.com/crochee/ope/errors"
	"github.com/crochee/ope/logger"
	"github.com/crochee/ope/observability"
)

func newTestMatcher(t *testing.T) *Regexp {
	t.Helper()
	m, err := New(16)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestWithLogging_PassesThroughResult(t *testing.T) {
	log := logger.NewDefault("test").WithComponent("matcher")
	m := WithLogging(newTestMatcher(t), log)

	ok, err := m.Matches(context.Background(), []string{"<create|delete>"}, "delete")
	if err != nil || !ok {
		t.Errorf("expected match through logging decorator, got %v %v", ok, err)
	}
}

func TestWithLogging_PassesThroughError(t *testing.T) {
	log := logger.NewDefault("test")
	m := WithLogging(newTestMatcher(t), log)

	_, err := m.Matches(context.Background(), []string{"<abc"}, "abc")
	if !errors.HasCode(err, errors.ErrCodeUnbalancedDelimiters) {
		t.Errorf("expected UNBALANCED_DELIMITERS through decorator, got %v", err)
	}
}

func TestWithMetrics_PassesThroughResult(t *testing.T) {
	metrics, err := observability.NewMetrics(observability.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	m := WithMetrics(newTestMatcher(t), metrics)

	ok, err := m.Matches(context.Background(), []string{"admin"}, "admin")
	if err != nil || !ok {
		t.Errorf("expected match through metrics decorator, got %v %v", ok, err)
	}
}

func TestWithTracing_PassesThroughResult(t *testing.T) {
	m := WithTracing(newTestMatcher(t), "ope")

	ok, err := m.Matches(context.Background(), []string{"<a|b>"}, "b")
	if err != nil || !ok {
		t.Errorf("expected match through tracing decorator, got %v %v", ok, err)
	}
}

func TestDecorators_Compose(t *testing.T) {
	metrics, err := observability.NewMetrics(observability.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	log := logger.NewDefault("test")

	var m Matcher = newTestMatcher(t)
	m = WithMetrics(m, metrics)
	m = WithLogging(m, log)
	m = WithTracing(m, "ope")

	ok, err := m.Matches(context.Background(), []string{"articles:<[0-9]+>"}, "articles:7")
	if err != nil || !ok {
		t.Errorf("expected match through composed decorators, got %v %v", ok, err)
	}
}
