package matcher

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/crochee/ope/errors"
)

func TestDelimiterIndices(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		want []int
	}{
		{"no delimiters", "create", nil},
		{"single region", "<create|delete>", []int{0, 15}},
		{"two regions", "foo<a|b>bar<c|d>baz", []int{3, 8, 11, 16}},
		{"nested stays one region", "<a<b>c>", []int{0, 7}},
		{"trailing literal", "<x>tail", []int{0, 3}},
	}
	for _, tc := range tests {
		got, err := delimiterIndices(tc.tpl, '<', '>')
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: indices = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDelimiterIndices_Unbalanced(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
	}{
		{"missing close", "<abc"},
		{"close without open", "abc>"},
		{"nested missing close", "<a<b>"},
		{"extra close", "<a>>"},
	}
	for _, tc := range tests {
		_, err := delimiterIndices(tc.tpl, '<', '>')
		if err == nil {
			t.Errorf("%s: expected error for %q", tc.name, tc.tpl)
			continue
		}
		if !errors.HasCode(err, errors.ErrCodeUnbalancedDelimiters) {
			t.Errorf("%s: expected UNBALANCED_DELIMITERS, got %v", tc.name, err)
		}
	}
}

func TestBuildPattern(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		want string
	}{
		{"single region", "<create|delete>", "^(create|delete)$"},
		{"two regions", "foo<a|b>bar<c|d>baz", "^foo(a|b)bar(c|d)baz$"},
		{"no region", "create", "^create$"},
		{"literal metacharacters escaped", "a.b<x|y>c*d", `^a\.b(x|y)c\*d$`},
		{"character class region", "id:<[0-9]+>", `^id:([0-9]+)$`},
		{"nested groups pass through", "<a(b|c)d>", "^(a(b|c)d)$"},
	}
	for _, tc := range tests {
		got, err := BuildPattern(tc.tpl, '<', '>')
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: BuildPattern = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBuildPattern_Unbalanced(t *testing.T) {
	for _, tpl := range []string{"<abc", "abc>"} {
		_, err := BuildPattern(tpl, '<', '>')
		if !errors.HasCode(err, errors.ErrCodeUnbalancedDelimiters) {
			t.Errorf("%q: expected UNBALANCED_DELIMITERS, got %v", tpl, err)
		}
	}
}

func TestBuildPattern_InvalidRegion(t *testing.T) {
	_, err := BuildPattern("<a(b>", '<', '>')
	if !errors.HasCode(err, errors.ErrCodePatternCompile) {
		t.Errorf("expected PATTERN_COMPILE_FAILED, got %v", err)
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected AppError")
	}
	if appErr.Cause == nil {
		t.Error("expected the regexp error as cause")
	}
}

func TestBuildPattern_CustomDelimiters(t *testing.T) {
	got, err := BuildPattern("{create|delete}", '{', '}')
	if err != nil {
		t.Fatal(err)
	}
	if got != "^(create|delete)$" {
		t.Errorf("BuildPattern = %q, want %q", got, "^(create|delete)$")
	}
}

func TestBuildPattern_MultiByteDelimiters(t *testing.T) {
	got, err := BuildPattern("id:«[0-9]+»:read", '«', '»')
	if err != nil {
		t.Fatal(err)
	}
	if got != "^id:([0-9]+):read$" {
		t.Errorf("BuildPattern = %q, want %q", got, "^id:([0-9]+):read$")
	}
}

func TestBuildPattern_ResultAnchors(t *testing.T) {
	pattern, err := BuildPattern("articles:<[0-9]+>", '<', '>')
	if err != nil {
		t.Fatal(err)
	}
	re := regexp.MustCompile(pattern)
	if !re.MatchString("articles:42") {
		t.Error("expected anchored pattern to match exact value")
	}
	// Anchors must reject values with surrounding text.
	if re.MatchString("xarticles:42") || re.MatchString("articles:42x") {
		t.Error("expected anchors to reject partial matches")
	}
}
