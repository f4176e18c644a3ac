// Command earleyplay is a runnable demo of the grammar reader and the
// Earley parser together — not part of the core packages, not covered
// by tests.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nlparse/earley/earley"
	"github.com/nlparse/earley/grammar"
)

const demoGrammar = `
S -> NP VP | VP
NP -> D N | N
VP -> V | V NP
D : the
N : {dog, cat, fireworks, Pennsylvania, I}
V : {runs, bought}
`

func main() {
	sentence := strings.Fields("the dog runs")
	if len(os.Args) > 1 {
		sentence = os.Args[1:]
	}

	productions, lexicon, err := grammar.ReadRules(demoGrammar)
	if err != nil {
		log.Fatalf("read rules: %v", err)
	}

	if !grammar.VerifyProductions(productions, lexicon) {
		log.Println("warning: grammar references an undefined category")
	}
	if !grammar.VerifyLexicon(lexicon, sentence) {
		log.Println("warning: sentence contains a token outside the lexicon")
	}

	charts, err := earley.Parse(context.Background(), productions, lexicon, sentence, earley.WithDebug(true))
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	fmt.Println(earley.DumpChart(charts))

	if !earley.Recognize(charts, "S", len(sentence)) {
		fmt.Println("no parse")
		return
	}

	for i, tree := range earley.ToTrees(charts, sentence, "S") {
		fmt.Printf("tree %d: %v\n", i, tree.Nested())
	}
}
