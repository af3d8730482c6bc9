package tlsf

import "errors"

var (
	// ErrNoGuarantees indicates the file has no GUARANTEES { ... } block,
	// or the block contains no non-comment formula lines.
	ErrNoGuarantees = errors.New("tlsf: no GUARANTEES section")
)
