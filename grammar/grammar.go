// Package grammar reads a compact grammar notation into the plain
// production and lexicon tables an Earley parser consumes.
package grammar

import (
	"strings"

	"github.com/nlparse/earley/slices"
	"golang.org/x/exp/maps"
)

// Category names a non-terminal (left-hand side) or a pre-terminal
// (lexicon value). Token is the unit of input and of lexicon keys.
type Category = string
type Token = string

// Sequence is an ordered right-hand side: the alternatives of a Production
// are Sequences, and a Lexicon entry never uses one directly.
type Sequence []Category

func (s Sequence) String() string { return strings.Join(s, " ") }

func (s Sequence) equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Productions maps a Category to its ordered alternatives. Insertion order
// is preserved for determinism; an alternative identical to one already
// recorded for lhs is not appended again.
type Productions map[Category][]Sequence

func (p Productions) append(lhs Category, rhs Sequence) {
	for _, existing := range p[lhs] {
		if existing.equal(rhs) {
			return
		}
	}
	p[lhs] = append(p[lhs], rhs)
}

// CategorySet is the set of pre-terminal tags a token can carry.
type CategorySet map[Category]struct{}

func (c CategorySet) Has(cat Category) bool {
	_, ok := c[cat]
	return ok
}

func (c CategorySet) add(cat Category) CategorySet {
	if c == nil {
		c = make(CategorySet, 1)
	}
	c[cat] = struct{}{}
	return c
}

// Sorted returns the set's members in a stable, deterministic order —
// useful anywhere a lexicon set is rendered or diffed.
func (c CategorySet) Sorted() []Category {
	return slices.SortFunc(maps.Keys(c), func(a, b Category) bool { return a < b })
}

// Lexicon maps a surface token to the pre-terminal categories it can
// carry. Multiple categories per token encode lexical ambiguity.
type Lexicon map[Token]CategorySet

func (l Lexicon) add(tok Token, cat Category) {
	l[tok] = l[tok].add(cat)
}

// PartsOfSpeech is the union of every category appearing anywhere in the
// lexicon — used by the Earley parser to decide predictor vs. scanner.
func (l Lexicon) PartsOfSpeech() CategorySet {
	all := make(CategorySet)
	for _, cats := range l {
		for cat := range cats {
			all = all.add(cat)
		}
	}
	return all
}
