package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors — caused by the caller's configuration or templates.
const (
	// ErrCodeInvalidCacheSize indicates a non-positive compiled-pattern
	// cache capacity at construction time.
	ErrCodeInvalidCacheSize ErrorCode = "INVALID_CACHE_SIZE"
	// ErrCodeUnbalancedDelimiters indicates a template whose delimiter
	// nesting closes before it opens or never returns to zero.
	ErrCodeUnbalancedDelimiters ErrorCode = "UNBALANCED_DELIMITERS"
	// ErrCodePatternCompile indicates an embedded region or the assembled
	// composite pattern is not a valid regular expression.
	ErrCodePatternCompile ErrorCode = "PATTERN_COMPILE_FAILED"
)

// Internal errors — defects, never caused by user input.
const (
	// ErrCodeIndexOutOfRange indicates the delimiter boundary list and the
	// template disagree. This signals a defect in the scanner, not bad input.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	// ErrCodeCacheFailure indicates the shared compiled-pattern cache
	// backend failed. The built-in LRU cannot fail; the code exists for
	// injected cache implementations backed by fallible storage.
	ErrCodeCacheFailure ErrorCode = "CACHE_FAILURE"
)

// inputCodes marks the codes a caller can fix by changing input.
var inputCodes = map[ErrorCode]bool{
	ErrCodeInvalidCacheSize:     true,
	ErrCodeUnbalancedDelimiters: true,
	ErrCodePatternCompile:       true,
}

// IsInputCode reports whether code identifies a caller-correctable error.
func IsInputCode(code ErrorCode) bool {
	return inputCodes[code]
}
