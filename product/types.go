package product

import (
	"strconv"

	"github.com/katalvlaran/pomdp-parity/pomdp"
)

// Outcome mirrors pomdp.Outcome: Next is a product state index idx(s',q'),
// not a POMDP state index.
type Outcome struct {
	Next int
	Obs  int
	Prob float64
}

// Product is the immutable value built by Build. Its states are encoded
// idx(s,q) = q·numPStates + s; Decode inverts the encoding.
type Product struct {
	numPStates, numAutStates int
	numActions, numObs       int

	trans    [][][]Outcome
	start    []float64
	priority []int

	env *pomdp.POMDP
}

// NumStates returns |S|·|Q|.
func (p *Product) NumStates() int  { return p.numPStates * p.numAutStates }
func (p *Product) NumActions() int { return p.numActions }
func (p *Product) NumObs() int     { return p.numObs }

// Idx encodes (s,q) into a product state index.
func (p *Product) Idx(s, q int) int { return q*p.numPStates + s }

// Decode inverts Idx.
func (p *Product) Decode(idx int) (s, q int) {
	return idx % p.numPStates, idx / p.numPStates
}

// Trans returns the sorted outcome row for (idx, a).
func (p *Product) Trans(idx, a int) []Outcome { return p.trans[idx][a] }

// Start returns the initial probability mass on idx.
func (p *Product) Start(idx int) float64 { return p.start[idx] }

// Priority returns the priority assigned to product state idx.
func (p *Product) Priority(idx int) int { return p.priority[idx] }

// StateName renders idx as "<pomdp-state-name>-<automaton-state-index>",
// matching the original tool's product state naming.
func (p *Product) StateName(idx int) string {
	s, q := p.Decode(idx)
	return p.env.StateName(s) + "-" + strconv.Itoa(q)
}

// ActionName, ObsName delegate to the underlying POMDP since actions and
// observations are inherited unchanged.
func (p *Product) ActionName(a int) string { return p.env.ActionName(a) }
func (p *Product) ObsName(o int) string    { return p.env.ObsName(o) }
