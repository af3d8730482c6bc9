package tlsf_test

import (
	"testing"

	"github.com/katalvlaran/pomdp-parity/tlsf"
	"github.com/stretchr/testify/require"
)

const sample = `
INFO {
  TITLE:       "revealing-tiger"
  DESCRIPTION: "example"
  SEMANTICS:   Mealy
  TARGET:      Mealy
}
INPUTS {
  p0;
  p1;
}
GUARANTEES {
  // reach the goal
  F p0;
  G \!p1;
}
`

func TestParseExtractsInputsAndGuarantees(t *testing.T) {
	spec, err := tlsf.Parse(sample)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, spec.Inputs)
	require.Equal(t, "(F p0) & (G !p1)", spec.Formula)
}

func TestParseDesugarsAsciiOperators(t *testing.T) {
	spec, err := tlsf.Parse(`GUARANTEES { G F p0 && G !p1; }`)
	require.NoError(t, err)
	require.Equal(t, "(G F p0 & G !p1)", spec.Formula)
}

func TestParseNoGuaranteesErrors(t *testing.T) {
	_, err := tlsf.Parse(`INPUTS { p0; }`)
	require.ErrorIs(t, err, tlsf.ErrNoGuarantees)
}

func TestParseSkipsComments(t *testing.T) {
	spec, err := tlsf.Parse("GUARANTEES {\n  // nothing here yet\n  F p0;\n}")
	require.NoError(t, err)
	require.Equal(t, "(F p0)", spec.Formula)
}
