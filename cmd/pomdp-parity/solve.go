package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/pomdp-parity/automaton"
	"github.com/katalvlaran/pomdp-parity/beliefmdp"
	"github.com/katalvlaran/pomdp-parity/dot"
	"github.com/katalvlaran/pomdp-parity/ltl"
	"github.com/katalvlaran/pomdp-parity/pomdp"
	"github.com/katalvlaran/pomdp-parity/pomdpfile"
	"github.com/katalvlaran/pomdp-parity/product"
	"github.com/katalvlaran/pomdp-parity/solver"
	"github.com/katalvlaran/pomdp-parity/tlsf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type solveOptions struct {
	ltlFormula string
	tlsfFile   string
	atoms      string
	verbose    bool
	plot       bool
	outputDir  string
	timeout    time.Duration
}

func solveCmd() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve <pomdp-file>",
		Short: "Solve a POMDP file for its almost-sure winning region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ltlFormula, "ltl_formula", "", "LTL objective over atoms p0, p1, ...")
	flags.StringVar(&opts.tlsfFile, "tlsf_file", "", "TLSF file naming the objective (wins over --ltl_formula if both given)")
	flags.StringVar(&opts.atoms, "atoms", "", "explicit comma-separated atom indices (default: inferred from the POMDP)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "progress tracing")
	flags.BoolVarP(&opts.plot, "plot", "p", false, "emit pomdp.dot, automaton.dot, product_pomdp.dot, belief_support_mdp.dot")
	flags.StringVar(&opts.outputDir, "output_dir", ".", "directory for --plot output")
	flags.DurationVar(&opts.timeout, "timeout", 60*time.Second, "solver deadline before aborting with a timeout (clamped to [30s,300s])")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, opts *solveOptions) error {
	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync() //nolint:errcheck

	timeout := opts.timeout
	if timeout < 30*time.Second {
		timeout = 30 * time.Second
	}
	if timeout > 300*time.Second {
		timeout = 300 * time.Second
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	env, err := pomdpfile.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("parsed pomdp", zap.String("file", path), zap.Int("states", env.NumStates()), zap.Bool("has_priorities", env.HasPriorities()))

	var (
		m           *beliefmdp.BeliefMDP
		maxPriority int
		aut         automaton.Automaton
		prod        *product.Product
	)

	if env.HasPriorities() {
		m, err = beliefmdp.BuildDirect(env)
		if err != nil {
			return err
		}
		for s := 0; s < env.NumStates(); s++ {
			if p := env.Priority(s); p > maxPriority {
				maxPriority = p
			}
		}
	} else {
		formula, numAtoms, err := resolveObjective(env, opts)
		if err != nil {
			return err
		}
		ast, err := ltl.Parse(formula)
		if err != nil {
			return fmt.Errorf("%s: %w", formula, err)
		}
		aut, err = automaton.CompileLTL(ast, numAtoms)
		if err != nil {
			return err
		}
		prod, err = product.Build(env, aut)
		if err != nil {
			return err
		}
		m, err = beliefmdp.Build(prod)
		if err != nil {
			return err
		}
		for idx := 0; idx < prod.NumStates(); idx++ {
			if p := prod.Priority(idx); p > maxPriority {
				maxPriority = p
			}
		}
	}

	result, err := solver.AlmostSureWin(ctx, m, maxPriority, solver.WithLogger(logger))
	if err != nil {
		return err
	}

	names := make(map[string]struct{})
	for _, b := range result.Winning {
		belief := m.Belief(b)
		if len(belief) != 1 {
			continue
		}
		names[env.StateName(belief[0].S)] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)
	for _, n := range sorted {
		fmt.Fprintln(cmd.OutOrStdout(), n)
	}

	if opts.plot {
		if err := writePlots(opts.outputDir, env, aut, prod, m); err != nil {
			return err
		}
	}

	return nil
}

// resolveObjective determines the LTL formula and atom count to compile
// against, applying §6's TLSF-wins-over-formula rule. The atom count is
// --atoms when given; otherwise one past the last TLSF INPUTS index when a
// TLSF file declares inputs; otherwise the POMDP's own declared atom count.
func resolveObjective(env *pomdp.POMDP, opts *solveOptions) (formula string, numAtoms int, err error) {
	numAtoms = env.NumAtoms()

	if opts.tlsfFile != "" {
		content, err := os.ReadFile(opts.tlsfFile)
		if err != nil {
			return "", 0, fmt.Errorf("reading %s: %w", opts.tlsfFile, err)
		}
		spec, err := tlsf.Parse(string(content))
		if err != nil {
			return "", 0, fmt.Errorf("%s: %w", opts.tlsfFile, err)
		}
		formula = spec.Formula
		if len(spec.Inputs) > 0 {
			numAtoms = spec.Inputs[len(spec.Inputs)-1] + 1
		}
	} else if opts.ltlFormula != "" {
		formula = opts.ltlFormula
	} else {
		return "", 0, errNoObjective
	}

	if opts.atoms != "" {
		n, err := parseAtomCount(opts.atoms)
		if err != nil {
			return "", 0, err
		}
		numAtoms = n
	}

	return formula, numAtoms, nil
}

// parseAtomCount parses the "--atoms i,j,..." flag into the atom count
// CompileLTL expects: one past the largest declared index.
func parseAtomCount(s string) (int, error) {
	max := -1
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("--atoms %q: %w", s, errBadAtomList)
		}
		if n > max {
			max = n
		}
	}
	if max < 0 {
		return 0, fmt.Errorf("--atoms %q: %w", s, errBadAtomList)
	}
	return max + 1, nil
}

func writePlots(dir string, env *pomdp.POMDP, aut automaton.Automaton, prod *product.Product, m *beliefmdp.BeliefMDP) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeFile(dir, "pomdp.dot", dot.POMDP(env)); err != nil {
		return err
	}
	if aut != nil {
		text, err := dot.Automaton(aut, env.NumAtoms())
		if err != nil {
			return err
		}
		if err := writeFile(dir, "automaton.dot", text); err != nil {
			return err
		}
	}
	if prod != nil {
		if err := writeFile(dir, "product_pomdp.dot", dot.Product(prod)); err != nil {
			return err
		}
	}
	return writeFile(dir, "belief_support_mdp.dot", dot.BeliefMDP(m))
}

func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}
