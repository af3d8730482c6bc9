package ltl

import "fmt"

// Kind discriminates a Formula node.
type Kind int

const (
	KindAtom Kind = iota
	KindNot
	KindNext      // X
	KindAlways    // G
	KindEventually // F
	KindUntil     // U
	KindAnd
	KindOr
)

// Formula is an LTL syntax tree node. Unary operators (Not, Next, Always,
// Eventually) use Sub; binary operators (Until, And, Or) use Lhs/Rhs; Atom
// uses AtomIndex.
type Formula struct {
	Kind      Kind
	AtomIndex int // valid only when Kind == KindAtom
	Sub       *Formula
	Lhs, Rhs  *Formula
}

// Atom constructs a leaf referencing atomic proposition p<i>.
func Atom(i int) *Formula { return &Formula{Kind: KindAtom, AtomIndex: i} }

// Not, Next, Always, Eventually build unary nodes.
func Not(f *Formula) *Formula        { return &Formula{Kind: KindNot, Sub: f} }
func Next(f *Formula) *Formula       { return &Formula{Kind: KindNext, Sub: f} }
func Always(f *Formula) *Formula     { return &Formula{Kind: KindAlways, Sub: f} }
func Eventually(f *Formula) *Formula { return &Formula{Kind: KindEventually, Sub: f} }

// Until, And, Or build binary nodes.
func Until(l, r *Formula) *Formula { return &Formula{Kind: KindUntil, Lhs: l, Rhs: r} }
func And(l, r *Formula) *Formula   { return &Formula{Kind: KindAnd, Lhs: l, Rhs: r} }
func Or(l, r *Formula) *Formula    { return &Formula{Kind: KindOr, Lhs: l, Rhs: r} }

// String renders a formula back to the surface syntax, parenthesizing every
// compound subterm; it is meant for logging and error messages, not for
// round-tripping through Parse.
func (f *Formula) String() string {
	if f == nil {
		return "<nil>"
	}
	switch f.Kind {
	case KindAtom:
		return fmt.Sprintf("p%d", f.AtomIndex)
	case KindNot:
		return "!" + f.Sub.String()
	case KindNext:
		return "X(" + f.Sub.String() + ")"
	case KindAlways:
		return "G(" + f.Sub.String() + ")"
	case KindEventually:
		return "F(" + f.Sub.String() + ")"
	case KindUntil:
		return "(" + f.Lhs.String() + " U " + f.Rhs.String() + ")"
	case KindAnd:
		return "(" + f.Lhs.String() + " & " + f.Rhs.String() + ")"
	case KindOr:
		return "(" + f.Lhs.String() + " | " + f.Rhs.String() + ")"
	default:
		return "?"
	}
}
