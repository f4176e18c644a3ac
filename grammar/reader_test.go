package grammar_test

import (
	"testing"

	"github.com/nlparse/earley/grammar"
	"github.com/stretchr/testify/require"
)

func TestReadRules_SimpleNP(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(`
		NP -> D N
		D : dog
	`)
	require.NoError(t, err)
	require.Equal(t, []grammar.Sequence{{"D", "N"}}, productions["NP"])
	require.True(t, lexicon["dog"].Has("D"))
}

func TestReadRules_BracedLexicon(t *testing.T) {
	_, lexicon, err := grammar.ReadRules(`D : {dog, cat, mouse}`)
	require.NoError(t, err)

	for _, tok := range []string{"dog", "cat", "mouse"} {
		require.Truef(t, lexicon[tok].Has("D"), "expected %q tagged D", tok)
	}
}

func TestReadRules_OptionalityExpansion(t *testing.T) {
	productions, _, err := grammar.ReadRules(`NP -> (D) (Adj) N`)
	require.NoError(t, err)

	expected := map[string]bool{
		"N":         true,
		"D N":       true,
		"Adj N":     true,
		"D Adj N":   true,
	}
	require.Len(t, productions["NP"], len(expected))
	for _, rhs := range productions["NP"] {
		require.True(t, expected[rhs.String()], "unexpected rhs %q", rhs.String())
	}
}

func TestReadRules_FullParseSimpleGrammar(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(`
		S -> NP VP | VP
		NP -> D N | N
		VP -> V | V NP
		D : the
		N : {dog, runs}
		V : {dog, runs}
	`)
	require.NoError(t, err)

	require.ElementsMatch(t, []grammar.Sequence{{"NP", "VP"}, {"VP"}}, productions["S"])
	require.ElementsMatch(t, []grammar.Sequence{{"D", "N"}, {"N"}}, productions["NP"])
	require.ElementsMatch(t, []grammar.Sequence{{"V"}, {"V", "NP"}}, productions["VP"])
	require.True(t, lexicon["the"].Has("D"))
	require.True(t, lexicon["dog"].Has("N"))
	require.True(t, lexicon["dog"].Has("V"))
}

func TestReadRules_VerifierRejectsUndefinedSymbol(t *testing.T) {
	productions := grammar.Productions{"NP": {{"D", "N"}}}
	lexicon := grammar.Lexicon{"dog": {"N": struct{}{}}}

	require.False(t, grammar.VerifyProductions(productions, lexicon))
}

func TestReadRules_MalformedLines(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{"no colon or arrow", "NP D N"},
		{"two arrows", "NP -> D -> N"},
		{"two colons", "D : dog : cat"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := grammar.ReadRules(tt.text)
			require.ErrorIs(t, err, grammar.ErrMalformedLine)
		})
	}
}
