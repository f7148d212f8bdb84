package matcher

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/crochee/ope/errors"
)

// delimiterIndices scans a template left to right and returns the byte
// offsets of its top-level delimited regions as a flat list: for each
// region, the offset of the opening delimiter and the offset one past the
// closing delimiter. Nested delimiters (depth > 1) are not recorded; their
// characters stay inside the enclosing region's content so embedded
// expressions can use their own grouping syntax.
func delimiterIndices(s string, start, end rune) ([]int, error) {
	var idxs []int
	level, idx := 0, 0
	for i, r := range s {
		switch r {
		case start:
			level++
			if level == 1 {
				idx = i
			}
		case end:
			level--
			switch {
			case level < 0:
				return nil, errors.UnbalancedDelimiters(s)
			case level == 0:
				idxs = append(idxs, idx, i+utf8.RuneLen(r))
			}
		}
	}
	if level != 0 {
		return nil, errors.UnbalancedDelimiters(s)
	}
	return idxs, nil
}

// BuildPattern compiles a template into an anchored composite regular
// expression string of the shape ^lit0(region0)lit1(region1)…litN$.
// Literal spans are escaped; each region's raw content is embedded verbatim
// as a capturing group after being validated as a standalone expression.
// A region that is not a valid expression fails with a pattern-compile
// error before any later region is examined.
func BuildPattern(tpl string, start, end rune) (string, error) {
	idxs, err := delimiterIndices(tpl, start, end)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('^')
	startLen := utf8.RuneLen(start)
	endLen := utf8.RuneLen(end)
	pos := 0
	for i := 0; i+1 < len(idxs); i += 2 {
		open, stop := idxs[i], idxs[i+1]
		if open < pos || stop > len(tpl) || open+startLen > stop-endLen {
			return "", errors.IndexOutOfRange(fmt.Sprintf("boundary pair (%d, %d) does not fit %q", open, stop, tpl))
		}
		region := tpl[open+startLen : stop-endLen]
		if _, err := regexp.Compile("^" + region + "$"); err != nil {
			return "", errors.PatternCompile(tpl, err)
		}
		b.WriteString(regexp.QuoteMeta(tpl[pos:open]))
		b.WriteByte('(')
		b.WriteString(region)
		b.WriteByte(')')
		pos = stop
	}
	if len(idxs)%2 != 0 {
		return "", errors.IndexOutOfRange(fmt.Sprintf("dangling boundary index %d for %q", idxs[len(idxs)-1], tpl))
	}
	b.WriteString(regexp.QuoteMeta(tpl[pos:]))
	b.WriteByte('$')
	return b.String(), nil
}

// compileTemplate builds and compiles the composite pattern for a template.
func compileTemplate(tpl string, start, end rune) (*regexp.Regexp, error) {
	pattern, err := BuildPattern(tpl, start, end)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.PatternCompile(tpl, err)
	}
	return re, nil
}
