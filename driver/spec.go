package driver

import "github.com/nihei9/wlp4/grammar"

// Grammar provides the parser with production rules. Rule 0 is the start rule.
type Grammar interface {
	Rule(num int) (*grammar.Rule, bool)
}

// ParsingTable provides the parser with actions. Shift entries for non-terminals serve as goto
// entries.
type ParsingTable interface {
	Shift(state int, sym string) (int, bool)
	Reduce(state int, lookahead string) (int, bool)
}

var (
	_ Grammar      = &grammar.Grammar{}
	_ ParsingTable = &grammar.ParsingTable{}
)

const (
	stateInitial = 0
	ruleStart    = 0
)
