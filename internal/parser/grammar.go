package parser

import (
	_ "embed"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar is the EBNF form of the grammar accepted by the parser. Productions
// with lower-case names are lexical.
//
//go:embed grammar.ebnf
var Grammar string

// GrammarStart is the start production of Grammar.
const GrammarStart = "Program"

// VerifyGrammar parses Grammar and checks that every production is defined
// and reachable from GrammarStart.
func VerifyGrammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("grammar.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, GrammarStart); err != nil {
		return nil, err
	}
	return grammar, nil
}
