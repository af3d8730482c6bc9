package solver

import "go.uber.org/zap"

// actPair is one (state, action) preimage edge.
type actPair struct {
	State, Action int
}

// Strategy maps a belief index to the sorted set of actions that are safe
// to play there under some winning condition; a memoryless strategy may
// legally offer more than one action at a state (any of them preserves
// the guarantee), matching §4.3's treatment of σ_R and σ_p as
// action-subset maps rather than single-action choices.
type Strategy map[int][]int

// MEC is one maximal end component: its member beliefs and the strategy
// restricted to staying inside it.
type MEC struct {
	States   []int
	Strategy Strategy
}

// config holds solver-wide options, set via functional Options following
// this codebase's established pattern (pomdp.Option, automaton's table
// builder) rather than a long positional parameter list.
type config struct {
	logger *zap.Logger
}

// Option configures solver behavior.
type Option func(*config)

// WithLogger attaches a zap logger for verbose progress tracing; the
// default is a no-op logger; solver stays silent unless the caller opts
// in, mirroring how CLI flags like -v gate diagnostic output elsewhere in
// this stack.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) *config {
	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
