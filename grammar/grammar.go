package grammar

import (
	"fmt"
	"io"
	"sort"
	"strings"

	verr "github.com/nihei9/wlp4/error"
	"github.com/nihei9/wlp4/spec"
)

// Rule is a production rule. Num is the index of the rule in its grammar, and an empty RHS denotes
// an epsilon production.
type Rule struct {
	Num int
	LHS string
	RHS []string
}

// String returns the rule in the `LHS RHS...` form. An epsilon production is written as
// `LHS .EMPTY`.
func (r *Rule) String() string {
	if len(r.RHS) == 0 {
		return fmt.Sprintf("%v %v", r.LHS, spec.EmptySymbol)
	}
	return fmt.Sprintf("%v %v", r.LHS, strings.Join(r.RHS, " "))
}

// Grammar is an ordered list of production rules. Rule 0 is the start rule, and the parser accepts
// by reducing it. Symbols appearing as the LHS of some rule are non-terminals and the others are
// terminals.
type Grammar struct {
	Rules []*Rule

	nonTerminals map[string]struct{}
}

func ReadGrammar(r io.Reader) (*Grammar, error) {
	s, err := spec.ParseCFG(r)
	if err != nil {
		return nil, err
	}
	return NewGrammar(s)
}

func NewGrammar(s *spec.CFGSpec) (*Grammar, error) {
	if len(s.Rules) == 0 {
		return nil, &verr.SpecError{
			Cause: semErrNoProduction,
		}
	}

	g := &Grammar{
		nonTerminals: map[string]struct{}{},
	}
	known := map[string]struct{}{}
	for i, decl := range s.Rules {
		r := &Rule{
			Num: i,
			LHS: decl.LHS,
			RHS: decl.RHS,
		}
		text := r.String()
		if _, ok := known[text]; ok {
			return nil, &verr.SpecError{
				Cause:  semErrDuplicateProduction,
				Detail: text,
				Row:    decl.Row,
			}
		}
		known[text] = struct{}{}

		g.Rules = append(g.Rules, r)
		g.nonTerminals[r.LHS] = struct{}{}
	}

	return g, nil
}

func (g *Grammar) Rule(num int) (*Rule, bool) {
	if num < 0 || num >= len(g.Rules) {
		return nil, false
	}
	return g.Rules[num], true
}

// Start returns the LHS of the start rule.
func (g *Grammar) Start() string {
	return g.Rules[0].LHS
}

func (g *Grammar) IsTerminal(sym string) bool {
	_, ok := g.nonTerminals[sym]
	return !ok
}

// Terminals returns the terminal symbols used in the grammar in lexical order.
func (g *Grammar) Terminals() []string {
	var terms []string
	seen := map[string]struct{}{}
	for _, r := range g.Rules {
		for _, sym := range r.RHS {
			if !g.IsTerminal(sym) {
				continue
			}
			if _, ok := seen[sym]; ok {
				continue
			}
			seen[sym] = struct{}{}
			terms = append(terms, sym)
		}
	}
	sort.Strings(terms)
	return terms
}

// Write writes the grammar in the format ReadGrammar reads.
func (g *Grammar) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintln(&b, spec.CFGHeader)
	for _, r := range g.Rules {
		fmt.Fprintln(&b, r.String())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
