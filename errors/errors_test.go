package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_Error_WithoutCause(t *testing.T) {
	err := New(ErrCodeInvalidCacheSize, "invalid cache size 0")
	got := err.Error()
	if !strings.Contains(got, string(ErrCodeInvalidCacheSize)) {
		t.Errorf("expected code in message, got %q", got)
	}
	if !strings.Contains(got, "invalid cache size 0") {
		t.Errorf("expected message text, got %q", got)
	}
}

func TestAppError_Error_WithCause(t *testing.T) {
	cause := stderrors.New("missing closing )")
	err := PatternCompile("<a|b", cause)
	if !strings.Contains(err.Error(), "missing closing )") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(ErrCodeCacheFailure, "cache failure").WithCause(cause)
	if got := stderrors.Unwrap(err); got != cause {
		t.Errorf("expected unwrapped cause, got %v", got)
	}
}

func TestInvalidCacheSize_Details(t *testing.T) {
	err := InvalidCacheSize(0)
	if err.Code != ErrCodeInvalidCacheSize {
		t.Errorf("expected INVALID_CACHE_SIZE, got %s", err.Code)
	}
	if err.Details["size"] != 0 {
		t.Errorf("expected size=0 detail, got %v", err.Details["size"])
	}
}

func TestUnbalancedDelimiters_NamesTemplate(t *testing.T) {
	err := UnbalancedDelimiters("<abc")
	if !strings.Contains(err.Message, "<abc") {
		t.Errorf("expected offending template in message, got %q", err.Message)
	}
	if err.Details["template"] != "<abc" {
		t.Errorf("expected template detail, got %v", err.Details["template"])
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct", InvalidCacheSize(-1), ErrCodeInvalidCacheSize},
		{"wrapped", fmt.Errorf("constructing matcher: %w", UnbalancedDelimiters("a>")), ErrCodeUnbalancedDelimiters},
		{"plain error", stderrors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tc := range tests {
		if got := CodeOf(tc.err); got != tc.want {
			t.Errorf("%s: CodeOf = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestHasCode(t *testing.T) {
	err := IndexOutOfRange("no index 3 in [0 5]")
	if !HasCode(err, ErrCodeIndexOutOfRange) {
		t.Error("expected HasCode to match INDEX_OUT_OF_RANGE")
	}
	if HasCode(err, ErrCodePatternCompile) {
		t.Error("did not expect HasCode to match PATTERN_COMPILE_FAILED")
	}
}

func TestIsInputCode(t *testing.T) {
	if !IsInputCode(ErrCodeUnbalancedDelimiters) {
		t.Error("UNBALANCED_DELIMITERS should be an input code")
	}
	if IsInputCode(ErrCodeIndexOutOfRange) {
		t.Error("INDEX_OUT_OF_RANGE should not be an input code")
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", CacheFailure(stderrors.New("poisoned")))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the AppError")
	}
	if appErr.Code != ErrCodeCacheFailure {
		t.Errorf("expected CACHE_FAILURE, got %s", appErr.Code)
	}
	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("did not expect AsAppError to match a plain error")
	}
}
