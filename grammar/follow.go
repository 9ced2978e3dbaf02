package grammar

import (
	"fmt"
)

// followSet holds FOLLOW of every non-terminal. The start rule brackets the input with its own
// terminals (BOF and EOF), so no end-of-input marker is added to FOLLOW of the start symbol. A
// start symbol never appearing in an RHS has an empty FOLLOW, and the start rule is reduced by the
// parser after the input is exhausted.
type followSet struct {
	sets map[symbol]*terminalSet
}

func genFollowSet(prods *productionSet, first *firstSet) *followSet {
	follow := &followSet{
		sets: map[symbol]*terminalSet{},
	}
	for _, sym := range prods.nonTerminals() {
		follow.sets[sym] = newTerminalSet()
	}

	// Every occurrence of a non-terminal in an RHS passes on what may come after it: FIRST of the
	// rest of the RHS, and FOLLOW of the LHS when the rest can vanish.
	for grown := true; grown; {
		grown = false
		for _, prod := range prods.all() {
			for i, sym := range prod.rhs {
				acc, ok := follow.sets[sym]
				if !ok {
					continue
				}
				rest := first.ofSuffix(prod, i+1)
				if acc.merge(rest) {
					grown = true
				}
				if rest.empty && acc.merge(follow.sets[prod.lhs]) {
					grown = true
				}
			}
		}
	}

	return follow
}

func (flw *followSet) of(sym symbol) (*terminalSet, error) {
	s, ok := flw.sets[sym]
	if !ok {
		return nil, fmt.Errorf("FOLLOW is defined only for non-terminals; symbol: %s", sym)
	}
	return s, nil
}
