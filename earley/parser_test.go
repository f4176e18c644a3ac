package earley_test

import (
	"context"
	"strings"
	"testing"

	"github.com/nlparse/earley/earley"
	"github.com/nlparse/earley/grammar"
	"github.com/stretchr/testify/require"
)

const simpleGrammar = `
S -> NP VP
NP -> D N
VP -> V
D : the
N : dog
V : runs
`

const ppGrammar = `
S -> NP VP
NP -> D N | D N PP
PP -> P NP
VP -> V NP | V
D : the
N : {dog, park, man}
V : {saw, walked}
P : in
`

func TestParse_SimpleSentence(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(simpleGrammar)
	require.NoError(t, err)

	sentence := strings.Fields("the dog runs")
	charts, err := earley.Parse(context.Background(), productions, lexicon, sentence)
	require.NoError(t, err)
	require.True(t, earley.Recognize(charts, "S", len(sentence)))

	trees := earley.ToTrees(charts, sentence, "S")
	require.Len(t, trees, 1)

	want := []interface{}{
		"S",
		[]interface{}{"NP",
			[]interface{}{"D", []interface{}{"the"}},
			[]interface{}{"N", []interface{}{"dog"}},
		},
		[]interface{}{"VP",
			[]interface{}{"V", []interface{}{"runs"}},
		},
	}
	require.Equal(t, want, trees[0].Nested())
}

func TestParse_PrepositionalPhrase(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(ppGrammar)
	require.NoError(t, err)

	sentence := strings.Fields("the man saw the dog in the park")
	charts, err := earley.Parse(context.Background(), productions, lexicon, sentence)
	require.NoError(t, err)
	require.True(t, earley.Recognize(charts, "S", len(sentence)))

	trees := earley.ToTrees(charts, sentence, "S")
	require.NotEmpty(t, trees)
}

func TestParse_NoParseIsNotAnError(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(simpleGrammar)
	require.NoError(t, err)

	sentence := strings.Fields("runs the dog")
	charts, err := earley.Parse(context.Background(), productions, lexicon, sentence)
	require.NoError(t, err)
	require.False(t, earley.Recognize(charts, "S", len(sentence)))
	require.Nil(t, earley.ToTrees(charts, sentence, "S"))
}

func TestParse_EmptySentence(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(simpleGrammar)
	require.NoError(t, err)

	charts, err := earley.Parse(context.Background(), productions, lexicon, nil)
	require.NoError(t, err)
	require.False(t, earley.Recognize(charts, "S", 0))
}

func TestParse_RespectsCanceledContext(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(simpleGrammar)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sentence := strings.Fields("the dog runs")
	_, err = earley.Parse(ctx, productions, lexicon, sentence)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParse_CustomStartSymbol(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(`
		Greeting -> D N
		D : the
		N : dog
	`)
	require.NoError(t, err)

	sentence := strings.Fields("the dog")
	charts, err := earley.Parse(context.Background(), productions, lexicon, sentence, earley.WithStartSymbol("Greeting"))
	require.NoError(t, err)
	require.True(t, earley.Recognize(charts, "Greeting", len(sentence)))
}

func TestDumpChart_DoesNotPanicOnSuccessfulParse(t *testing.T) {
	productions, lexicon, err := grammar.ReadRules(simpleGrammar)
	require.NoError(t, err)

	sentence := strings.Fields("the dog runs")
	charts, err := earley.Parse(context.Background(), productions, lexicon, sentence)
	require.NoError(t, err)
	require.NotPanics(t, func() { earley.DumpChart(charts) })
}
