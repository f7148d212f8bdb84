package version

import (
	"strings"
	"testing"
)

func TestShort_DefaultIsDev(t *testing.T) {
	if got := Short(); got == "" {
		t.Error("expected non-empty version")
	}
}

func TestFull_IncludesCommit(t *testing.T) {
	old := GitCommit
	GitCommit = "abc1234"
	defer func() { GitCommit = old }()

	if got := Full(); !strings.HasSuffix(got, "+abc1234") {
		t.Errorf("expected commit suffix, got %q", got)
	}
}

func TestFull_NoCommit(t *testing.T) {
	old := GitCommit
	GitCommit = ""
	defer func() { GitCommit = old }()

	if got := Full(); strings.Contains(got, "+") {
		t.Errorf("expected no commit suffix, got %q", got)
	}
}
