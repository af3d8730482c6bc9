package main

import (
	"errors"

	"github.com/katalvlaran/pomdp-parity/automaton"
	"github.com/katalvlaran/pomdp-parity/beliefmdp"
	"github.com/katalvlaran/pomdp-parity/pomdpfile"
	"github.com/katalvlaran/pomdp-parity/product"
	"github.com/katalvlaran/pomdp-parity/solver"
	"github.com/katalvlaran/pomdp-parity/tlsf"
)

// errNoObjective indicates neither --ltl_formula nor --tlsf_file was given
// for an AtomicPropPOMDP input, and errBadAtomList indicates --atoms did
// not parse as a comma-separated list of non-negative integers.
var (
	errNoObjective = errors.New("no --ltl_formula or --tlsf_file given for a POMDP without direct priorities")
	errBadAtomList = errors.New("malformed atom list")
)

// classify renders err as the single stderr line §7 requires: a category
// name followed by the underlying message.
func classify(err error) string {
	return category(err) + ": " + err.Error()
}

// exitCodeFor maps err to the §6 exit code: 2 for a solver timeout, 1 for
// every other fatal condition (the zero code is never reached from here,
// since main only calls this after Execute returns a non-nil error).
func exitCodeFor(err error) int {
	if errors.Is(err, solver.ErrCanceled) {
		return 2
	}
	return 1
}

func category(err error) string {
	switch {
	case errors.Is(err, solver.ErrCanceled):
		return "timeout"
	case errors.Is(err, pomdpfile.ErrSyntax), errors.Is(err, tlsf.ErrNoGuarantees):
		return "parse error"
	case errors.Is(err, pomdpfile.ErrDomain):
		return "domain error"
	case errors.Is(err, product.ErrAlphabetMismatch):
		return "alphabet mismatch"
	case errors.Is(err, automaton.ErrUnsupportedFormula), errors.Is(err, automaton.ErrAtomOutOfRange):
		return "domain error"
	case errors.Is(err, beliefmdp.ErrNoReachableStart), errors.Is(err, solver.ErrNoBeliefs):
		return "internal invariant"
	case errors.Is(err, errNoObjective), errors.Is(err, errBadAtomList):
		return "domain error"
	default:
		return "error"
	}
}
