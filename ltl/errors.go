package ltl

import "errors"

// Sentinel errors for the ltl package.
var (
	// ErrSyntax indicates the input does not parse as a well-formed formula.
	ErrSyntax = errors.New("ltl: syntax error")

	// ErrBadAtom indicates an atom token outside the p<digits> grammar.
	ErrBadAtom = errors.New("ltl: malformed atom")

	// ErrUnexpectedEOF indicates the input ended mid-expression.
	ErrUnexpectedEOF = errors.New("ltl: unexpected end of formula")
)
