// Package errors provides structured error handling for the ope matching
// primitive. Every failure surfaced by the matcher carries a
// machine-readable error code so callers can decide, per kind, whether to
// skip a pattern, retry, or translate the failure into a denial.
package errors
