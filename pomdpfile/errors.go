package pomdpfile

import "errors"

var (
	// ErrSyntax indicates malformed POMDP file syntax: an unexpected
	// token, a directive missing its required shape, or a number that
	// fails to parse.
	ErrSyntax = errors.New("pomdpfile: syntax error")

	// ErrDomain indicates a file that parses but violates a domain rule:
	// both `prio` and `atom` directives present, a name that was never
	// declared in `states:`/`actions:`/`observations:`, or a directive
	// referencing an index out of range.
	ErrDomain = errors.New("pomdpfile: domain error")

	errBadMatrixLen = errors.New("matrix length matches neither a single row nor a full per-entity matrix")
)
