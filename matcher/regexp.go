package matcher

import (
	"context"
	"regexp"
	"strings"

	"github.com/crochee/ope/cache"
	"github.com/crochee/ope/logger"
)

// Regexp is the template-compiling Matcher implementation. It is safe for
// concurrent use: the only shared mutable state is the compiled-pattern
// cache, and compiled patterns are immutable once stored.
type Regexp struct {
	start rune
	end   rune
	cache cache.Interface[string, *regexp.Regexp]
	log   *logger.Logger
	obs   Observer
}

// New creates a Regexp matcher whose compiled-pattern cache holds up to
// cacheSize entries. Fails with an invalid-cache-size error when cacheSize
// is not positive, unless a cache is injected via WithCache.
func New(cacheSize int, opts ...Option) (*Regexp, error) {
	m := &Regexp{
		start: DefaultDelimiterStart,
		end:   DefaultDelimiterEnd,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cache == nil {
		c, err := cache.NewLRU[string, *regexp.Regexp](cacheSize)
		if err != nil {
			return nil, err
		}
		m.cache = c
	}
	return m, nil
}

// Matches reports whether needle satisfies at least one template in
// haystack, testing templates in order and returning on the first match.
//
// A template without the start delimiter is compared as a plain literal
// and never compiled. Otherwise the compiled pattern is looked up in the
// cache and compiled on miss; compilation happens without holding any
// cache lock, so two callers missing concurrently may both compile — the
// results are equivalent and the last insert wins.
func (m *Regexp) Matches(ctx context.Context, haystack []string, needle string) (bool, error) {
	for _, tpl := range haystack {
		if !strings.ContainsRune(tpl, m.start) {
			if tpl == needle {
				return true, nil
			}
			continue
		}

		if re, ok := m.cache.Get(tpl); ok {
			if m.obs != nil {
				m.obs.OnCacheHit(tpl)
			}
			if re.MatchString(needle) {
				return true, nil
			}
			continue
		}
		if m.obs != nil {
			m.obs.OnCacheMiss(tpl)
		}

		re, err := m.compile(tpl)
		if err != nil {
			return false, err
		}
		m.cache.Add(tpl, re)

		if re.MatchString(needle) {
			return true, nil
		}
	}
	return false, nil
}

func (m *Regexp) compile(tpl string) (*regexp.Regexp, error) {
	re, err := compileTemplate(tpl, m.start, m.end)
	if err != nil {
		if m.log != nil {
			m.log.WithError(err).Debug("template compilation failed",
				logger.Fields(logger.FieldTemplate, tpl))
		}
		return nil, err
	}
	if m.obs != nil {
		m.obs.OnCompile(tpl)
	}
	if m.log != nil {
		m.log.Debug("template compiled", logger.Fields(
			logger.FieldTemplate, tpl,
			logger.FieldPattern, re.String(),
		))
	}
	return re, nil
}

// Interface Guards
var _ Matcher = (*Regexp)(nil)
