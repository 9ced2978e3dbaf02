package driver

import (
	"fmt"

	verr "github.com/nihei9/wlp4/error"
	"github.com/nihei9/wlp4/grammar"
	"github.com/nihei9/wlp4/lexical"
)

type ParserOption func(p *Parser) error

// SemanticAction registers semantic action sets. The parser runs them in the order they are
// registered.
func SemanticAction(semAct ...SemanticActionSet) ParserOption {
	return func(p *Parser) error {
		p.semAct = append(p.semAct, semAct...)
		return nil
	}
}

// Parser is a shift-reduce parser driven by a parsing table. Before shifting a token, it performs
// every reduction the table has for the top state and the token. A token the top state cannot
// shift is a syntax error. When the tokens run out, the parser accepts by reducing the start rule.
type Parser struct {
	toks       TokenStream
	gram       Grammar
	tab        ParsingTable
	stateStack []int
	semAct     []SemanticActionSet
}

func NewParser(toks TokenStream, gram Grammar, tab ParsingTable, opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		toks:       toks,
		gram:       gram,
		tab:        tab,
		stateStack: []int{},
	}

	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Parser) Parse() error {
	p.push(stateInitial)
	for {
		tok, err := p.toks.Next()
		if err != nil {
			return err
		}
		if tok == nil {
			break
		}

		for {
			ruleNum, ok := p.tab.Reduce(p.top(), tok.Kind)
			if !ok {
				break
			}
			err := p.reduce(ruleNum, tok)
			if err != nil {
				return err
			}
		}

		nextState, ok := p.tab.Shift(p.top(), tok.Kind)
		if !ok {
			return &verr.Error{
				Category: verr.CategorySyntax,
				Cause:    synErrUnexpectedToken,
				Detail:   tok.String(),
				Row:      tok.Row,
				Col:      tok.Col,
			}
		}
		p.push(nextState)
		p.actOnShift(tok)
	}

	return p.accept()
}

func (p *Parser) reduce(ruleNum int, lookahead *lexical.Token) error {
	rule, ok := p.gram.Rule(ruleNum)
	if !ok {
		return &verr.Error{
			Category: verr.CategoryConfig,
			Cause:    synErrUnknownRule,
			Detail:   fmt.Sprintf("state %v, rule %v", p.top(), ruleNum),
		}
	}
	n := len(rule.RHS)
	if len(p.stateStack)-1 < n {
		return &verr.Error{
			Category: verr.CategoryConfig,
			Cause:    synErrStackUnderflow,
			Detail:   rule.String(),
		}
	}
	p.pop(n)

	nextState, ok := p.tab.Shift(p.top(), rule.LHS)
	if !ok {
		return &verr.Error{
			Category: verr.CategorySyntax,
			Cause:    synErrNoGoTo,
			Detail:   fmt.Sprintf("state %v, symbol %v", p.top(), rule.LHS),
			Row:      lookahead.Row,
			Col:      lookahead.Col,
		}
	}
	p.push(nextState)
	p.actOnReduction(rule)

	return nil
}

// accept reduces the start rule. The whole input must have been consumed into its RHS.
func (p *Parser) accept() error {
	rule, ok := p.gram.Rule(ruleStart)
	if !ok {
		return &verr.Error{
			Category: verr.CategoryConfig,
			Cause:    synErrUnknownRule,
			Detail:   fmt.Sprintf("rule %v", ruleStart),
		}
	}
	if len(p.stateStack)-1 != len(rule.RHS) {
		return &verr.Error{
			Category: verr.CategorySyntax,
			Cause:    synErrUnexpectedEOF,
		}
	}
	p.pop(len(rule.RHS))
	p.actOnReduction(rule)
	p.actOnAccepting()

	return nil
}

func (p *Parser) actOnShift(tok *lexical.Token) {
	for _, a := range p.semAct {
		a.Shift(tok)
	}
}

func (p *Parser) actOnReduction(rule *grammar.Rule) {
	for _, a := range p.semAct {
		a.Reduce(rule)
	}
}

func (p *Parser) actOnAccepting() {
	for _, a := range p.semAct {
		a.Accept()
	}
}

func (p *Parser) top() int {
	return p.stateStack[len(p.stateStack)-1]
}

func (p *Parser) push(state int) {
	p.stateStack = append(p.stateStack, state)
}

func (p *Parser) pop(n int) {
	p.stateStack = p.stateStack[:len(p.stateStack)-n]
}
