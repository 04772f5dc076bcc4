package slha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSLHA = `# SUSY Les Houches Accord 2
# test spectrum, hand-written
BLOCK MODSEL   # model selection
     1    1   # mSUGRA
BLOCK MINPAR   # input parameters
     3    1.00000000E+01   # tan(beta)
BLOCK MASS   # mass spectrum
        25   1.25000000E+02   # h0
   1000021   6.07000000E+02   # ~g
BLOCK NMIX   # neutralino mixing
   1   1   9.86000000E-01
   1   3   1.40000000E-01
BLOCK SPINFO   # program information
     1    SoftSUSY   # spectrum calculator
DECAY        25     4.07000000E-03   # h0 decays
     6.77000000E-01    2         5        -5   # BR(h0 -> b bbar)
     8.57000000E-02    2        15       -15   # BR(h0 -> tau+ tau-)
DECAY   1000021     1.50000000E+01   # gluino decays
     5.00000000E-01    2         5   1000005
     5.00000000E-01    2        -5   1000005
`

func mustParse(t *testing.T, input string) *Data {
	t.Helper()
	data, err := ParseString(input)
	require.NoError(t, err)
	return data
}

func TestParseSample(t *testing.T) {
	data := mustParse(t, sampleSLHA)

	assert.Equal(t, []string{"MODSEL", "MINPAR", "MASS", "NMIX", "SPINFO"}, data.Blocks())
	assert.Equal(t, []int{25, 1000021}, data.Decays())
	assert.Len(t, data.Preamble, 2)

	mass, err := data.FindBlock("MASS")
	require.NoError(t, err)
	assert.Equal(t, "mass spectrum", mass.Comment)
	require.Equal(t, 2, mass.Len())
	assert.Equal(t, "h0", mass.Entries()[0].Comment)

	v, err := data.GetValue("MASS", Key{25})
	require.NoError(t, err)
	assert.Equal(t, Float(125.0), v)

	// matrix-valued block
	v, err = data.GetValue("NMIX", Key{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.14, v.Float, 1e-12)

	// string-valued entry
	v, err = data.GetValue("SPINFO", Key{1})
	require.NoError(t, err)
	assert.Equal(t, String("SoftSUSY"), v)

	// integer-valued entry
	v, err = data.GetValue("MODSEL", Key{1})
	require.NoError(t, err)
	assert.Equal(t, Int(1), v)

	dec, err := data.GetDecay(25)
	require.NoError(t, err)
	assert.InDelta(t, 4.07e-3, dec.Width, 1e-15)
	require.Len(t, dec.Modes, 2)
	assert.Equal(t, []int{5, -5}, dec.Modes[0].Daughters)
	assert.Equal(t, 2, dec.Modes[0].NDA)
	assert.Equal(t, "BR(h0 -> b bbar)", dec.Modes[0].Comment)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{
			name:  "block entry with a single field",
			input: "BLOCK MASS\n 25\n",
			line:  2,
		},
		{
			name:  "block index not an integer",
			input: "BLOCK MASS\n x 125.0\n",
			line:  2,
		},
		{
			name:  "decay row missing daughters",
			input: "DECAY 25 1.0\n 0.5 2\n",
			line:  2,
		},
		{
			name:  "daughter count mismatch",
			input: "DECAY 25 1.0\n 0.5 3 5 -5\n",
			line:  2,
		},
		{
			name:  "decay header missing width",
			input: "DECAY 25\n",
			line:  1,
		},
		{
			name:  "decay width not a number",
			input: "DECAY 25 wide\n",
			line:  1,
		},
		{
			name:  "block header missing name",
			input: "BLOCK   # anonymous\n",
			line:  1,
		},
		{
			name:  "data row before any section",
			input: "# preamble\n 1 2\n",
			line:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)

			perr, ok := err.(*ParseError)
			require.True(t, ok, "expected *ParseError, got %T", err)
			assert.Equal(t, tt.line, perr.Location.Line)
		})
	}
}

func TestParseDuplicateEntryLastWins(t *testing.T) {
	data := mustParse(t, `BLOCK MINPAR
 3 1.00000000E+01   # first
 3 2.00000000E+01   # second
`)

	b, err := data.FindBlock("MINPAR")
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())

	v, err := data.GetValue("MINPAR", Key{3})
	require.NoError(t, err)
	assert.Equal(t, Float(20.0), v)
	assert.Equal(t, "second", b.Entries()[0].Comment)
}

func TestParseDuplicateDecayLastWins(t *testing.T) {
	data := mustParse(t, `DECAY 25 1.00000000E+00
 1.0 2 5 -5
DECAY 6 2.00000000E+00
 1.0 2 24 5
DECAY 25 3.00000000E+00
 1.0 2 22 22
`)

	// replaced in place, first-seen order kept
	assert.Equal(t, []int{25, 6}, data.Decays())

	w, err := data.GetWidth(25)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	dec, err := data.GetDecay(25)
	require.NoError(t, err)
	require.Len(t, dec.Modes, 1)
	assert.Equal(t, []int{22, 22}, dec.Modes[0].Daughters)
}

func TestParseReopenedBlockMerges(t *testing.T) {
	data := mustParse(t, `BLOCK MASS
 25 1.25000000E+02
BLOCK MINPAR
 3 10.0
BLOCK MASS
 6 1.73000000E+02
`)

	assert.Equal(t, []string{"MASS", "MINPAR"}, data.Blocks())

	b, err := data.FindBlock("MASS")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
}

func TestParseRepeatedDecayRowsAppend(t *testing.T) {
	// identical daughter sets are kept as distinct rows, never merged
	data := mustParse(t, `DECAY 25 1.0
 0.3 2 5 -5
 0.4 2 5 -5
`)

	dec, err := data.GetDecay(25)
	require.NoError(t, err)
	assert.Len(t, dec.Modes, 2)

	// lookup matches the first row in encounter order
	br, err := data.GetBR(25, []int{5, -5})
	require.NoError(t, err)
	assert.Equal(t, 0.3, br)
}
