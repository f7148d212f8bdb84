// Package matcher decides whether a runtime value satisfies at least one
// pattern from a policy statement.
//
// Patterns are either plain literals (exact match) or templates containing
// delimited regions whose content is an embedded regular expression:
//
//	"articles:<[0-9]+>:read"
//
// compiles to the anchored pattern `^articles:([0-9]+):read$`. Text outside
// the delimiters is matched literally; regex metacharacters there are
// escaped. Compiled patterns are kept in a bounded LRU cache shared by all
// callers of a Matcher.
//
// # Usage
//
//	m, err := matcher.New(512)
//	if err != nil { ... }
//	ok, err := m.Matches(ctx, policy.Resources, "articles:42:read")
//
// The delimiter pair is fixed at construction (default '<' and '>') so the
// template-keyed cache stays sound for the Matcher's lifetime.
package matcher
