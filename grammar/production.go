package grammar

import (
	"fmt"
)

// productionNumStart is the number of the start production. The parser accepts an input by
// reducing it.
const productionNumStart = 0

// production is a rule of a grammar in terms of symbols. Its number is the rule number, which also
// identifies it within a productionSet.
type production struct {
	num int
	lhs symbol
	rhs []symbol
}

func newProduction(num int, lhs symbol, rhs []symbol) (*production, error) {
	if lhs.isNil() {
		return nil, fmt.Errorf("LHS must be a non-nil symbol; LHS: %v, RHS: %v", lhs, rhs)
	}
	for _, sym := range rhs {
		if sym.isNil() {
			return nil, fmt.Errorf("a symbol of RHS must be a non-nil symbol; LHS: %v, RHS: %v", lhs, rhs)
		}
	}

	return &production{
		num: num,
		lhs: lhs,
		rhs: rhs,
	}, nil
}

type productionSet struct {
	// prods is indexed by production numbers.
	prods []*production
	byLHS map[symbol][]*production

	// lhsSyms lists the non-terminals in the order they first appear as an LHS.
	lhsSyms []symbol
}

// genProductionSet converts the rules of g. The grammar has already rejected duplicate rules, so
// every production is kept as it is.
func genProductionSet(g *Grammar) (*productionSet, error) {
	ps := &productionSet{
		byLHS: map[symbol][]*production{},
	}
	for _, r := range g.Rules {
		if r.Num != len(ps.prods) {
			return nil, fmt.Errorf("rules must be numbered in order; expected: %v, actual: %v", len(ps.prods), r.Num)
		}
		prod, err := newProduction(r.Num, symbol(r.LHS), newSymbols(r.RHS))
		if err != nil {
			return nil, err
		}
		if _, ok := ps.byLHS[prod.lhs]; !ok {
			ps.lhsSyms = append(ps.lhsSyms, prod.lhs)
		}
		ps.byLHS[prod.lhs] = append(ps.byLHS[prod.lhs], prod)
		ps.prods = append(ps.prods, prod)
	}
	return ps, nil
}

func (ps *productionSet) start() *production {
	return ps.prods[productionNumStart]
}

func (ps *productionSet) all() []*production {
	return ps.prods
}

func (ps *productionSet) nonTerminals() []symbol {
	return ps.lhsSyms
}

func (ps *productionSet) isNonTerminal(sym symbol) bool {
	_, ok := ps.byLHS[sym]
	return ok
}

// alternatives returns the productions whose LHS is sym. It is empty for a terminal.
func (ps *productionSet) alternatives(sym symbol) []*production {
	return ps.byLHS[sym]
}
