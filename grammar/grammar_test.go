package grammar_test

import (
	"testing"

	"github.com/nlparse/earley/grammar"
	"github.com/stretchr/testify/require"
)

func TestCategorySet_SortedIsDeterministic(t *testing.T) {
	set := grammar.CategorySet{"N": {}, "D": {}, "Adj": {}}
	require.Equal(t, []grammar.Category{"Adj", "D", "N"}, set.Sorted())
}

func TestReadRules_DuplicateAlternativesAreNotRepeated(t *testing.T) {
	productions, _, err := grammar.ReadRules(`
		NP -> D N
		NP -> D N
	`)
	require.NoError(t, err)
	require.Equal(t, []grammar.Sequence{{"D", "N"}}, productions["NP"])
}

func TestLexicon_PartsOfSpeech(t *testing.T) {
	_, lexicon, err := grammar.ReadRules(`
		D : the
		N : dog
		V : dog
	`)
	require.NoError(t, err)
	require.ElementsMatch(t, []grammar.Category{"D", "N", "V"}, lexicon.PartsOfSpeech().Sorted())
}
