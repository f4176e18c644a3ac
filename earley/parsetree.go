package earley

import (
	"sort"

	"github.com/nlparse/earley/grammar"
	"github.com/nlparse/earley/slices"
)

// Tree is a parse-tree node: a nested sequence whose first element is a
// Category and whose remainder is either subtrees (non-terminal) or a
// single-element sequence carrying the surface Token (pre-terminal).
type Tree struct {
	Category grammar.Category
	Token    grammar.Token // set only on a pre-terminal leaf
	Children []*Tree
}

func (t *Tree) isLeaf() bool { return t.Children == nil }

// Nested renders t as the nested-sequence shape external renderers
// consume: []interface{}{Category, ...}, with a pre-terminal leaf
// rendered as []interface{}{Category, []interface{}{Token}}.
func (t *Tree) Nested() []interface{} {
	out := []interface{}{t.Category}
	if t.isLeaf() {
		return append(out, []interface{}{t.Token})
	}
	for _, c := range t.Children {
		out = append(out, c.Nested())
	}
	return out
}

// ToTrees walks backpointers in the final charts to produce every
// distinct derivation of startSymbol over the whole sentence. It
// returns nil if no top-level completion exists; that is a normal
// result, not an error.
func ToTrees(charts []*Chart, sentence []grammar.Token, startSymbol string) []*Tree {
	n := len(sentence)
	if !Recognize(charts, startSymbol, n) {
		return nil
	}

	byStateNum := indexStates(charts)

	var gamma *State
	for _, s := range charts[n+1].States() {
		if s.LeftHand == GammaSymbol && len(s.RightHand) == 1 && s.RightHand[0] == startSymbol &&
			s.DotIndex == 2 && s.StartIndex == 1 && s.EndIndex == n+1 {
			gamma = s
			break
		}
	}

	roots := matchSequence(gamma.OriginatingStates, byStateNum, grammar.Sequence{startSymbol}, 1, n+1)

	var trees []*Tree
	for _, seq := range roots {
		trees = append(trees, buildTrees(seq[0], byStateNum)...)
	}
	return trees
}

func indexStates(charts []*Chart) map[int]*State {
	out := make(map[int]*State)
	for _, chart := range charts {
		if chart == nil {
			continue
		}
		for _, s := range chart.States() {
			out[s.StateNum] = s
		}
	}
	return out
}

// buildTrees enumerates every derivation tree rooted at s, in insertion
// order of the completions it backtracks through.
func buildTrees(s *State, byStateNum map[int]*State) []*Tree {
	if s.Lexical {
		return []*Tree{{Category: s.LeftHand, Token: s.RightHand[0]}}
	}

	childSeqs := matchSequence(s.OriginatingStates, byStateNum, s.RightHand, s.StartIndex, s.EndIndex)

	var out []*Tree
	for _, seq := range childSeqs {
		perChild := make([][]*Tree, len(seq))
		for i, child := range seq {
			perChild[i] = buildTrees(child, byStateNum)
		}
		for _, combo := range slices.Possibles(perChild) {
			out = append(out, &Tree{Category: s.LeftHand, Children: combo})
		}
	}
	return out
}

// matchSequence finds every ordered way to cover [start, end) with
// completed states whose categories match rhs positionally, drawn only
// from origins — the candidates this particular state's derivation(s)
// actually recorded. A chain of unit completions is covered for free:
// an intermediate state on such a chain is itself a one-symbol
// RightHand, so recursing into it via buildTrees walks the rest of the
// chain the same way.
func matchSequence(origins map[int]struct{}, byStateNum map[int]*State, rhs grammar.Sequence, start, end int) [][]*State {
	if len(rhs) == 0 {
		if start == end {
			return [][]*State{{}}
		}
		return nil
	}

	var out [][]*State
	for _, c := range candidatesAt(origins, byStateNum, rhs[0], start) {
		for _, rest := range matchSequence(origins, byStateNum, rhs[1:], c.EndIndex, end) {
			out = append(out, append([]*State{c}, rest...))
		}
	}
	return out
}

// candidatesAt returns, in ascending StateNum order, every completed
// state in origins that could fill a RightHand slot: matching category
// and starting exactly at start.
func candidatesAt(origins map[int]struct{}, byStateNum map[int]*State, category grammar.Category, start int) []*State {
	var out []*State
	for id := range origins {
		c, ok := byStateNum[id]
		if !ok || c.IsIncomplete() || c.LeftHand != category || c.StartIndex != start {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StateNum < out[j].StateNum })
	return out
}
