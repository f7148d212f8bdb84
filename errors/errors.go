package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type surfaced by this module.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Error Constructors ---

// InvalidCacheSize creates an AppError for a non-positive cache capacity.
func InvalidCacheSize(size int) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCacheSize,
		Message: fmt.Sprintf("invalid cache size %d", size),
		Details: map[string]any{"size": size},
	}
}

// UnbalancedDelimiters creates an AppError for a template whose delimiters
// do not balance.
func UnbalancedDelimiters(template string) *AppError {
	return &AppError{
		Code:    ErrCodeUnbalancedDelimiters,
		Message: fmt.Sprintf("unbalanced delimiters in %q", template),
		Details: map[string]any{"template": template},
	}
}

// PatternCompile creates an AppError for a template whose embedded region
// or assembled pattern failed to compile.
func PatternCompile(template string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodePatternCompile,
		Message: fmt.Sprintf("compiling pattern for %q", template),
		Details: map[string]any{"template": template},
		Cause:   cause,
	}
}

// IndexOutOfRange creates an AppError for a boundary list that disagrees
// with its template. This is a defect signal, not an input error.
func IndexOutOfRange(detail string) *AppError {
	return &AppError{
		Code:    ErrCodeIndexOutOfRange,
		Message: detail,
	}
}

// CacheFailure creates an AppError for a failing cache backend.
func CacheFailure(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeCacheFailure,
		Message: "compiled-pattern cache failure",
		Cause:   cause,
	}
}

// --- Inspection helpers ---

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
// Returns an empty code if err carries no AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// AsAppError extracts an *AppError from err, unwrapping as needed.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
