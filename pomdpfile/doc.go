// Package pomdpfile parses the POMDP text format of §6: a permissive,
// token-order (not strictly line-order) subset of pomdp.org's grammar,
// extended with `prio`/`atom` directives that pick between the
// ParityPOMDP and AtomicPropPOMDP flavours at load time.
//
// Like the grammar it is grounded on, whitespace (including newlines) is
// insignificant between tokens; only `#` line comments and directive
// keywords carry structure. A file declares its state/action/observation
// counts and names first. At most one start directive may follow, and it
// must precede every T/O table; the tables themselves may come in any
// order.
package pomdpfile
