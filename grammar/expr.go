package grammar

import "github.com/nlparse/earley/slices"

// DefaultRepeatBound is the hard cap on `X+` expansion: a pragmatic
// truncation, not a language feature.
const DefaultRepeatBound = 6

// term is one position in a right-hand side after parsing, before
// expansion: a bare category, an optional category, or a repeated one.
type term struct {
	name     Category
	optional bool
	plus     bool
}

// seq is one alternative's sequence of terms, prior to sugar expansion.
type seq []term

// alts is the top-level `A | B | C` split of a syntactic rule's RHS.
type alts []seq

// expand turns the raw alternatives into the final list of Sequences a
// production should carry: the top-level `|` split is already reflected
// in alts's own shape, so this only has to expand each alternative's
// `+` repetitions and take the cartesian product over its `(X)`
// inclusion choices.
func (a alts) expand(repeatBound int) []Sequence {
	var out []Sequence
	for _, s := range a {
		out = append(out, s.expand(repeatBound)...)
	}
	return out
}

func (s seq) expand(repeatBound int) []Sequence {
	choices := make([][]Sequence, len(s))
	for i, t := range s {
		choices[i] = t.choices(repeatBound)
	}
	combos := slices.Possibles(choices)
	out := make([]Sequence, 0, len(combos))
	for _, combo := range combos {
		out = append(out, Sequence(slices.AppendMany(combo...)))
	}
	if len(s) == 0 {
		// an alternative with zero terms is a single empty right-hand side
		out = []Sequence{{}}
	}
	return out
}

// choices returns the set of category fragments this term can contribute
// at its position: one fragment for a plain category, two (empty and
// present) for an optional one, and 1..repeatBound copies for a `+` term.
func (t term) choices(repeatBound int) []Sequence {
	switch {
	case t.plus:
		out := make([]Sequence, repeatBound)
		for n := 1; n <= repeatBound; n++ {
			rep := make(Sequence, n)
			for i := range rep {
				rep[i] = t.name
			}
			out[n-1] = rep
		}
		return out
	case t.optional:
		return []Sequence{{}, {t.name}}
	default:
		return []Sequence{{t.name}}
	}
}
