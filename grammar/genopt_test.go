package grammar_test

import (
	"testing"

	"github.com/nlparse/earley/grammar"
	"github.com/stretchr/testify/require"
)

func sequenceStrings(seqs []grammar.Sequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = s.String()
	}
	return out
}

func TestGenOptPoss_Optionality(t *testing.T) {
	got, err := grammar.GenOptPoss("(D) (Adj) N")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"N", "D N", "Adj N", "D Adj N"}, sequenceStrings(got))
}

func TestGenOptPoss_Alternation(t *testing.T) {
	got, err := grammar.GenOptPoss("D N | N")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"D N", "N"}, sequenceStrings(got))
}

func TestGenOptPoss_PlainSequence(t *testing.T) {
	got, err := grammar.GenOptPoss("D N")
	require.NoError(t, err)
	require.Equal(t, []string{"D N"}, sequenceStrings(got))
}

func TestGenOptPoss_RepeatBound(t *testing.T) {
	got, err := grammar.GenOptPoss("Adj+ N")
	require.NoError(t, err)

	require.Len(t, got, grammar.DefaultRepeatBound)
	for n := 1; n <= grammar.DefaultRepeatBound; n++ {
		adjs := make([]string, n)
		for i := range adjs {
			adjs[i] = "Adj"
		}
		want := append(adjs, "N")
		require.Contains(t, sequenceStrings(got), grammar.Sequence(want).String())
	}
}

func TestGenOptPoss_InvalidSyntax(t *testing.T) {
	_, err := grammar.GenOptPoss("(D N")
	require.Error(t, err)
}
