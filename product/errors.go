package product

import "errors"

// ErrAlphabetMismatch indicates that, during product construction, an
// observation's labelling matched no automaton transition guard at some
// automaton state. It signals the automaton and the POMDP's declared
// atoms are inconsistent and is always fatal.
var ErrAlphabetMismatch = errors.New("product: observation labelling matched no automaton transition")
