package pomdpfile

import (
	"strconv"
)

func (p *parser) lookupState(name string, line int) (int, error) {
	return resolveNameOrIndex(name, p.numStates, p.stateIdx, line, "state", p.domainErr)
}

func (p *parser) lookupAction(name string, line int) (int, error) {
	return resolveNameOrIndex(name, p.numActions, p.actionIdx, line, "action", p.domainErr)
}

func (p *parser) lookupObs(name string, line int) (int, error) {
	return resolveNameOrIndex(name, p.numObs, p.obsIdx, line, "observation", p.domainErr)
}

// resolveNameOrIndex accepts either a declared name or a raw numeric
// index, mirroring resolveSpec's dual handling: a literal index is
// always valid regardless of whether names were declared.
func resolveNameOrIndex(text string, count int, idxMap map[string]int, line int, kind string, errf func(int, string, ...interface{}) error) (int, error) {
	if isNumberWord(text) {
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 || n >= count {
			return 0, errf(line, "%s index %q out of range [0,%d)", kind, text, count)
		}
		return n, nil
	}
	if idxMap == nil {
		return 0, errf(line, "unknown %s %q", kind, text)
	}
	idx, ok := idxMap[text]
	if !ok {
		return 0, errf(line, "unknown %s %q", kind, text)
	}
	return idx, nil
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// resolveSpec reads one state/action/obs spec token (int literal, name, or
// `*` wildcard) and returns the indices it denotes.
func (p *parser) resolveSpec(count int, lookup func(string, int) (int, error)) ([]int, error) {
	t := p.cur()
	line := t.line
	switch {
	case t.kind == tokStar:
		p.advance()
		return allIndices(count), nil
	case t.kind == tokWord && isNumberWord(t.text):
		p.advance()
		n, err := strconv.Atoi(t.text)
		if err != nil || n < 0 || n >= count {
			return nil, p.domainErr(line, "index %q out of range [0,%d)", t.text, count)
		}
		return []int{n}, nil
	case t.kind == tokWord:
		p.advance()
		idx, err := lookup(t.text, line)
		if err != nil {
			return nil, err
		}
		return []int{idx}, nil
	default:
		return nil, p.syntaxErr(line, "expected a state/action/observation spec, got %q", t.text)
	}
}

// readNumbers greedily consumes consecutive numeric word tokens.
func (p *parser) readNumbers() ([]float64, error) {
	var out []float64
	for p.cur().kind == tokWord && isNumberWord(p.cur().text) {
		t := p.advance()
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, p.syntaxErr(t.line, "invalid number %q", t.text)
		}
		out = append(out, v)
	}
	return out, nil
}

// --- start: ---

func (p *parser) startDecl() error {
	line := p.cur().line
	if err := p.expectWord("start"); err != nil {
		return err
	}

	if p.peekWord("include") || p.peekWord("exclude") {
		exclude := p.peekWord("exclude")
		p.advance()
		if err := p.expectColon(); err != nil {
			return err
		}
		var names []int
		for p.cur().kind == tokWord && !isKeyword(p.cur().text) {
			idx, err := p.resolveSpec(p.numStates, p.lookupState)
			if err != nil {
				return err
			}
			names = append(names, idx...)
		}
		included := named(names, p.numStates, exclude)
		if len(included) == 0 {
			return p.domainErr(line, "start include/exclude leaves no states")
		}
		for _, s := range included {
			p.start[s] = 1.0 / float64(len(included))
		}
		return nil
	}

	if err := p.expectColon(); err != nil {
		return err
	}

	if p.peekWord("uniform") {
		p.advance()
		for s := 0; s < p.numStates; s++ {
			p.start[s] = 1.0 / float64(p.numStates)
		}
		return nil
	}

	// A single non-numeric name denotes a deterministic start state.
	if p.cur().kind == tokWord && !isNumberWord(p.cur().text) && !isKeyword(p.cur().text) {
		idx, err := p.lookupState(p.cur().text, line)
		if err != nil {
			return err
		}
		p.advance()
		p.start[idx] = 1.0
		return nil
	}

	probs, err := p.readNumbers()
	if err != nil {
		return err
	}
	if len(probs) != p.numStates {
		return p.syntaxErr(line, "start: expected %d probabilities, got %d", p.numStates, len(probs))
	}
	for s, v := range probs {
		p.start[s] = v
	}
	return nil
}

func named(incl []int, count int, exclude bool) []int {
	if !exclude {
		return dedupe(incl)
	}
	excl := make(map[int]bool, len(incl))
	for _, i := range incl {
		excl[i] = true
	}
	var out []int
	for i := 0; i < count; i++ {
		if !excl[i] {
			out = append(out, i)
		}
	}
	return out
}

func dedupe(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// --- T: ---

func (p *parser) transDecl() error {
	line := p.cur().line
	if err := p.expectWord("T"); err != nil {
		return err
	}
	if err := p.expectColon(); err != nil {
		return err
	}
	actions, err := p.resolveSpec(p.numActions, p.lookupAction)
	if err != nil {
		return err
	}

	if p.cur().kind != tokColon {
		// Form C: "T: <action> <matrix>", spanning every source state.
		return p.transMatrixSugar(actions, allIndices(p.numStates), line)
	}
	p.advance() // ':'
	srcs, err := p.resolveSpec(p.numStates, p.lookupState)
	if err != nil {
		return err
	}

	if p.cur().kind == tokColon {
		// Form A: "T: <action> : <src> : <dst> <prob>".
		p.advance()
		dsts, err := p.resolveSpec(p.numStates, p.lookupState)
		if err != nil {
			return err
		}
		nums, err := p.readNumbers()
		if err != nil {
			return err
		}
		if len(nums) != 1 {
			return p.syntaxErr(line, "T: single-entry form expects exactly one probability")
		}
		for _, a := range actions {
			for _, s := range srcs {
				for _, d := range dsts {
					p.setTransRaw(s, a, d, nums[0])
				}
			}
		}
		return nil
	}

	// Form B: "T: <action> : <src> <row>".
	return p.transMatrixSugar(actions, srcs, line)
}

// transMatrixSugar consumes the row/matrix/uniform/identity form and
// applies it across the given actions and source states.
func (p *parser) transMatrixSugar(actions, srcs []int, line int) error {
	switch {
	case p.peekWord("uniform"):
		p.advance()
		for _, a := range actions {
			for _, s := range srcs {
				for d := 0; d < p.numStates; d++ {
					p.setTransRaw(s, a, d, 1.0/float64(p.numStates))
				}
			}
		}
		return nil
	case p.peekWord("identity"):
		p.advance()
		for _, a := range actions {
			for _, s := range srcs {
				p.setTransRaw(s, a, s, 1.0)
			}
		}
		return nil
	}

	nums, err := p.readNumbers()
	if err != nil {
		return err
	}
	for _, a := range actions {
		if err := applyRows(nums, p.numStates, srcs, func(s, d int, v float64) {
			p.setTransRaw(s, a, d, v)
		}); err != nil {
			return p.syntaxErr(line, "%v", err)
		}
	}
	return nil
}

func (p *parser) setTransRaw(s, a, d int, v float64) {
	key := [2]int{s, a}
	if p.trans[key] == nil {
		p.trans[key] = make(map[int]float64)
	}
	p.trans[key][d] = v
}

// --- O: ---

func (p *parser) obsDecl() error {
	line := p.cur().line
	if err := p.expectWord("O"); err != nil {
		return err
	}
	if err := p.expectColon(); err != nil {
		return err
	}
	actions, err := p.resolveSpec(p.numActions, p.lookupAction)
	if err != nil {
		return err
	}

	if p.cur().kind != tokColon {
		return p.obsMatrixSugar(actions, allIndices(p.numStates), line)
	}
	p.advance()
	dsts, err := p.resolveSpec(p.numStates, p.lookupState)
	if err != nil {
		return err
	}

	if p.cur().kind == tokColon {
		p.advance()
		obss, err := p.resolveSpec(p.numObs, p.lookupObs)
		if err != nil {
			return err
		}
		nums, err := p.readNumbers()
		if err != nil {
			return err
		}
		if len(nums) != 1 {
			return p.syntaxErr(line, "O: single-entry form expects exactly one probability")
		}
		for _, a := range actions {
			for _, d := range dsts {
				for _, o := range obss {
					p.setObsRaw(a, d, o, nums[0])
				}
			}
		}
		return nil
	}

	return p.obsMatrixSugar(actions, dsts, line)
}

func (p *parser) obsMatrixSugar(actions, dsts []int, line int) error {
	if p.peekWord("uniform") {
		p.advance()
		for _, a := range actions {
			for _, d := range dsts {
				for o := 0; o < p.numObs; o++ {
					p.setObsRaw(a, d, o, 1.0/float64(p.numObs))
				}
			}
		}
		return nil
	}

	nums, err := p.readNumbers()
	if err != nil {
		return err
	}
	for _, a := range actions {
		if err := applyRows(nums, p.numObs, dsts, func(d, o int, v float64) {
			p.setObsRaw(a, d, o, v)
		}); err != nil {
			return p.syntaxErr(line, "%v", err)
		}
	}
	return nil
}

func (p *parser) setObsRaw(a, d, o int, v float64) {
	key := [2]int{a, d}
	if p.obsT[key] == nil {
		p.obsT[key] = make(map[int]float64)
	}
	p.obsT[key][o] = v
}

// applyRows distributes a flattened row/matrix of length rowLen (broadcast
// to every entity) or rowLen*len(entities) (one row per entity, in order)
// across entities, calling apply(entity, col, value) for every cell.
func applyRows(matrix []float64, rowLen int, entities []int, apply func(entity, col int, value float64)) error {
	switch {
	case len(matrix) == rowLen:
		for _, e := range entities {
			for col, v := range matrix {
				apply(e, col, v)
			}
		}
		return nil
	case len(entities) > 0 && len(matrix) == rowLen*len(entities):
		i := 0
		for _, e := range entities {
			for col := 0; col < rowLen; col++ {
				apply(e, col, matrix[i])
				i++
			}
		}
		return nil
	default:
		return errBadMatrixLen
	}
}
