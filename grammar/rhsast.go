package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// rhsLexer tokenizes the right-hand side of a syntactic rule: a run of
// category names sprinkled with `(X)`, `X+` and `A | B` sugar.
// Categories may contain letters, digits and dots.
var rhsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9.]*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var rhsParser = participle.MustBuild[altsAST](
	participle.Lexer(rhsLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// altsAST, seqAST and termAST are the participle grammar for a
// right-hand side: alternatives of sequences of terms, where a term is
// a bare category, `(category)`, or `category+`. There is no grouping
// or bracketed-repeat form beyond that.
type altsAST struct {
	Seqs []seqAST `parser:"@@ ( '|' @@ )*"`
}

type seqAST struct {
	Terms []termAST `parser:"@@+"`
}

type termAST struct {
	Optional string `parser:"'(' @Ident ')' |"`
	Plus     string `parser:"@Ident '+' |"`
	Plain    string `parser:"@Ident"`
}

func (t termAST) toTerm() term {
	switch {
	case t.Optional != "":
		return term{name: t.Optional, optional: true}
	case t.Plus != "":
		return term{name: t.Plus, plus: true}
	default:
		return term{name: t.Plain}
	}
}

func (s seqAST) toSeq() seq {
	out := make(seq, len(s.Terms))
	for i, t := range s.Terms {
		out[i] = t.toTerm()
	}
	return out
}

func (a altsAST) toAlts() alts {
	out := make(alts, len(a.Seqs))
	for i, s := range a.Seqs {
		out[i] = s.toSeq()
	}
	return out
}

// parseRHS parses the text following `->` in a syntactic rule into the
// alternatives/sequence/term AST, ready for expansion.
func parseRHS(text string) (alts, error) {
	ast, err := rhsParser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	return ast.toAlts(), nil
}
