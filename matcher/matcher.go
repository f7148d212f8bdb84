package matcher

import (
	"context"
	"regexp"

	"github.com/crochee/ope/cache"
	"github.com/crochee/ope/logger"
)

// Default delimiter pair marking embedded-regex regions in templates.
const (
	DefaultDelimiterStart = '<'
	DefaultDelimiterEnd   = '>'
)

// Matcher decides whether needle satisfies at least one template in
// haystack, in order, short-circuiting on the first match. It is a pure
// predicate: the only side effect is compiled-pattern cache population.
//
// Any balance, compile, or cache failure for the template currently being
// processed aborts the whole call; later templates are not examined.
type Matcher interface {
	Matches(ctx context.Context, haystack []string, needle string) (bool, error)
}

// Observer receives compilation and cache events. All methods may be
// called concurrently. The zero use case is counting compilations in
// tests; the observability package provides a metrics-backed Observer.
type Observer interface {
	OnCompile(template string)
	OnCacheHit(template string)
	OnCacheMiss(template string)
}

// Option configures a Regexp matcher.
type Option func(*Regexp)

// WithDelimiters sets the delimiter pair marking embedded-regex regions.
// The pair is fixed for the matcher's lifetime; compiled patterns are
// cached by template text alone, which is only sound because of this.
func WithDelimiters(start, end rune) Option {
	return func(m *Regexp) {
		m.start = start
		m.end = end
	}
}

// WithCache injects a replacement compiled-pattern cache. The cache must
// be safe for concurrent use. When set, the capacity passed to New is
// ignored.
func WithCache(c cache.Interface[string, *regexp.Regexp]) Option {
	return func(m *Regexp) {
		m.cache = c
	}
}

// WithLogger sets a logger for debug-level compile and error logging.
func WithLogger(log *logger.Logger) Option {
	return func(m *Regexp) {
		m.log = log
	}
}

// WithObserver sets an Observer notified of compile and cache events.
func WithObserver(obs Observer) Option {
	return func(m *Regexp) {
		m.obs = obs
	}
}
