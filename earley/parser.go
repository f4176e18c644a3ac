package earley

import (
	"context"

	"github.com/nlparse/earley/grammar"
)

// Parse runs the Earley chart construction: one chart per input
// position, predictor/scanner/completer applied to fixed point per
// column. It returns the finished chart array regardless of whether a
// full parse was found — a sentence with no parse is a normal result,
// not an error; use Recognize and ToTrees to find out afterward.
//
// ctx is checked once per column, between columns — never mid-column,
// so a single column's predictor/scanner/completer fixed point always
// completes atomically once started.
func Parse(ctx context.Context, productions grammar.Productions, lexicon grammar.Lexicon, sentence []grammar.Token, opts ...Option) ([]*Chart, error) {
	cfg := newConfig(opts)
	n := len(sentence)

	charts := make([]*Chart, n+2) // charts[1..n+1]; index 0 unused
	for i := 1; i <= n+1; i++ {
		charts[i] = newChart()
	}
	if n == 0 {
		return charts, nil
	}

	partsOfSpeech := lexicon.PartsOfSpeech()

	stateNum := 0
	nextStateNum := func() int { stateNum++; return stateNum }

	seed, err := NewState(1, 1, GammaSymbol, grammar.Sequence{cfg.startSymbol}, 1)
	if err != nil {
		return nil, err
	}
	charts[1].insert(seed, nextStateNum)

	for i := 1; i <= n+1; i++ {
		if err := ctx.Err(); err != nil {
			return charts, err
		}

		chart := charts[i]
		for idx := 0; idx < chart.Len(); idx++ {
			s := chart.At(idx)

			switch {
			case s.IsIncomplete() && !partsOfSpeech.Has(s.NextCategory()):
				predict(chart, productions, s, i, nextStateNum, cfg)
			case s.IsIncomplete() && i <= n:
				scan(charts[i+1], lexicon, sentence, s, i, nextStateNum, cfg)
			case !s.IsIncomplete():
				complete(chart, charts[s.StartIndex], s, i, nextStateNum, cfg)
			}
		}
	}

	return charts, nil
}

// predict inserts, for every alternative of s's next category, a fresh
// dotted-at-1 state starting and ending at i. Running it twice on the
// same (state, chart) is a no-op: Chart.insert already dedupes by
// identity, so re-predicting an already-predicted alternative just
// merges origins instead of creating a duplicate.
func predict(chart *Chart, productions grammar.Productions, s *State, i int, nextStateNum func() int, cfg *config) {
	next := s.NextCategory()
	for _, alt := range productions[next] {
		created, err := NewState(i, i, next, alt, 1)
		if err != nil {
			// alt came from grammar.ReadRules, which never produces an
			// out-of-range dot; this would only fire on a hand-built
			// Productions table violating that contract.
			panic(err)
		}
		if _, added := chart.insert(created, nextStateNum); added && cfg.debug {
			traceState(cfg, "predict", created)
		}
	}
}

// scan consumes sentence[i] (1-based) if it can carry s's next category,
// inserting the resulting complete state into the next column.
func scan(nextChart *Chart, lexicon grammar.Lexicon, sentence []grammar.Token, s *State, i int, nextStateNum func() int, cfg *config) {
	next := s.NextCategory()
	word := sentence[i-1]
	if !lexicon[word].Has(next) {
		return
	}
	created, err := NewState(i, i+1, next, grammar.Sequence{word}, 2)
	if err != nil {
		panic(err)
	}
	created.Lexical = true
	if _, added := nextChart.insert(created, nextStateNum); added && cfg.debug {
		traceState(cfg, "scan", created)
	}
}

// complete advances every earlier, incomplete state in startChart that
// was waiting on s's category. Chart.insert merges origins whenever the
// advanced state already exists rather than appending a duplicate.
func complete(chart *Chart, startChart *Chart, s *State, i int, nextStateNum func() int, cfg *config) {
	for _, t := range startChart.States() {
		if !t.IsIncomplete() || t.EndIndex != s.StartIndex || t.NextCategory() != s.LeftHand {
			continue
		}
		advanced := t.advance(i, s.StateNum)
		if _, added := chart.insert(advanced, nextStateNum); added && cfg.debug {
			traceState(cfg, "complete", advanced)
		}
	}
}

// Recognize reports whether charts[n+1] contains a state completing the
// γ pseudo-rule over the whole sentence — the signal that a full parse
// of startSymbol exists.
func Recognize(charts []*Chart, startSymbol string, n int) bool {
	if n+1 >= len(charts) || charts[n+1] == nil {
		return false
	}
	for _, s := range charts[n+1].States() {
		if s.LeftHand == GammaSymbol &&
			len(s.RightHand) == 1 && s.RightHand[0] == startSymbol &&
			s.DotIndex == 2 && s.StartIndex == 1 && s.EndIndex == n+1 {
			return true
		}
	}
	return false
}
