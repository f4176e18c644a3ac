package grammar

// GenOptPoss expands a raw right-hand-side snippet such as
// `"(D) (Adj) N"` into every Sequence its optionality, repetition and
// alternation sugar produces — exposed standalone so the expander can
// be tested without going through a whole grammar text.
func GenOptPoss(rhs string) ([]Sequence, error) {
	parsed, err := parseRHS(rhs)
	if err != nil {
		return nil, err
	}
	return parsed.expand(DefaultRepeatBound), nil
}
