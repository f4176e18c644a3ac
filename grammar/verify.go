package grammar

// VerifyProductions confirms every Category mentioned on a right-hand
// side is either itself a production key or appears as a lexicon value.
// It never aborts — failure is reported as false, and it is up to the
// caller to decide whether to proceed with a parse anyway.
func VerifyProductions(productions Productions, lexicon Lexicon) bool {
	defined := make(CategorySet, len(productions))
	for lhs := range productions {
		defined = defined.add(lhs)
	}
	for _, cats := range lexicon {
		for cat := range cats {
			defined = defined.add(cat)
		}
	}

	for _, alternatives := range productions {
		for _, rhs := range alternatives {
			for _, cat := range rhs {
				if !defined.Has(cat) {
					return false
				}
			}
		}
	}
	return true
}

// VerifyLexicon confirms every token in sentence is a lexicon key.
func VerifyLexicon(lexicon Lexicon, sentence []Token) bool {
	for _, tok := range sentence {
		if _, ok := lexicon[tok]; !ok {
			return false
		}
	}
	return true
}
