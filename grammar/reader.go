package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine is wrapped with the offending line number, content
// and reason by ReadRules.
var ErrMalformedLine = errors.New("malformed grammar line")

// ReadRules parses grammar text, one rule per non-empty line, into a
// Productions table and a Lexicon. Blank lines are ignored; leading and
// trailing whitespace is trimmed from every line before classification.
//
// A line is either a syntactic rule (`LHS -> S1 S2 ... Sn`, optionally
// using `(X)`, `X+` and top-level `A | B`) or a lexical rule
// (`CAT : token` or `CAT : {tok1, tok2, ...}`). Reader errors abort the
// read immediately and report the offending line.
func ReadRules(text string) (Productions, Lexicon, error) {
	return ReadRulesN(text, DefaultRepeatBound)
}

// ReadRulesN is ReadRules with an explicit `+` repetition bound, exposed
// mainly for tests exercising expansion at bounds other than the default.
func ReadRulesN(text string, repeatBound int) (Productions, Lexicon, error) {
	productions := make(Productions)
	lexicon := make(Lexicon)

	for lineNum, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		hasArrow := strings.Contains(line, "->")
		hasColon := strings.Contains(line, ":")

		switch {
		case hasArrow:
			if err := readSyntacticLine(productions, lineNum+1, line, repeatBound); err != nil {
				return nil, nil, err
			}
		case hasColon:
			if err := readLexicalLine(lexicon, lineNum+1, line); err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, fmt.Errorf("%w: line %d: %q: no ':' or '->' found", ErrMalformedLine, lineNum+1, line)
		}
	}

	return productions, lexicon, nil
}

func readSyntacticLine(productions Productions, lineNum int, line string, repeatBound int) error {
	if strings.Count(line, "->") > 1 {
		return fmt.Errorf("%w: line %d: %q: more than one '->'", ErrMalformedLine, lineNum, line)
	}

	parts := strings.SplitN(line, "->", 2)
	lhs := strings.TrimSpace(parts[0])
	rhsText := strings.TrimSpace(parts[1])
	if lhs == "" {
		return fmt.Errorf("%w: line %d: %q: empty left-hand side", ErrMalformedLine, lineNum, line)
	}

	parsed, err := parseRHS(rhsText)
	if err != nil {
		return fmt.Errorf("%w: line %d: %q: %v", ErrMalformedLine, lineNum, line, err)
	}

	expanded := parsed.expand(repeatBound)
	for _, rhs := range expanded {
		if len(rhs) == 0 {
			return fmt.Errorf("%w: line %d: %q: empty right-hand side after expansion", ErrMalformedLine, lineNum, line)
		}
		productions.append(lhs, rhs)
	}
	return nil
}

func readLexicalLine(lexicon Lexicon, lineNum int, line string) error {
	if strings.Count(line, ":") > 1 {
		return fmt.Errorf("%w: line %d: %q: more than one ':'", ErrMalformedLine, lineNum, line)
	}

	parts := strings.SplitN(line, ":", 2)
	cat := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if cat == "" {
		return fmt.Errorf("%w: line %d: %q: empty category", ErrMalformedLine, lineNum, line)
	}

	tokens := splitLexicalTokens(value)
	if len(tokens) == 0 {
		return fmt.Errorf("%w: line %d: %q: no tokens", ErrMalformedLine, lineNum, line)
	}
	for _, tok := range tokens {
		lexicon.add(tok, cat)
	}
	return nil
}

// splitLexicalTokens handles both `token` and `{tok1, tok2, ...}`,
// splitting the braced form on `{`, `,` and `}` with optional
// surrounding spaces.
func splitLexicalTokens(value string) []string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		if value == "" {
			return nil
		}
		return []string{value}
	}

	value = strings.TrimSuffix(strings.TrimPrefix(value, "{"), "}")
	raw := strings.Split(value, ",")
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
