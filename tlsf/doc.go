// Package tlsf extracts the INPUTS and GUARANTEES sections from a TLSF
// (Temporal Logic Synthesis Format) specification file and reduces them to
// a single LTL formula and atom list the ltl package can parse.
//
// This is a narrow extraction, not a TLSF parser: it recognizes the
// INPUTS { ... } and GUARANTEES { ... } blocks, desugars TLSF's && / || /
// \! spellings back to &, |, !, and conjoins every guarantee line into one
// formula. SEMANTICS, MAIN_SEMANTICS, ASSUMPTIONS, and the rest of the
// TLSF grammar are not interpreted; a file with no GUARANTEES block
// produces ErrNoGuarantees.
package tlsf
