package grammar

import "sort"

// terminalSet is a set of terminals. empty tells whether the set also holds ε.
type terminalSet struct {
	symbols map[symbol]struct{}
	empty   bool
}

func newTerminalSet() *terminalSet {
	return &terminalSet{
		symbols: map[symbol]struct{}{},
	}
}

func (s *terminalSet) add(sym symbol) bool {
	if _, ok := s.symbols[sym]; ok {
		return false
	}
	s.symbols[sym] = struct{}{}
	return true
}

func (s *terminalSet) addEmpty() bool {
	if s.empty {
		return false
	}
	s.empty = true
	return true
}

// merge adds the terminals of t, leaving out ε. It reports whether s grew.
func (s *terminalSet) merge(t *terminalSet) bool {
	grown := false
	for sym := range t.symbols {
		if s.add(sym) {
			grown = true
		}
	}
	return grown
}

func (s *terminalSet) sorted() []symbol {
	return sortedSymbols(s.symbols)
}

// firstSet holds FIRST of every non-terminal.
type firstSet struct {
	prods *productionSet
	sets  map[symbol]*terminalSet
}

// genFirstSet grows FIRST of every non-terminal from the RHSs of its productions until no set
// changes.
func genFirstSet(prods *productionSet) *firstSet {
	first := &firstSet{
		prods: prods,
		sets:  map[symbol]*terminalSet{},
	}
	for _, sym := range prods.nonTerminals() {
		first.sets[sym] = newTerminalSet()
	}

	for grown := true; grown; {
		grown = false
		for _, prod := range prods.all() {
			acc := first.sets[prod.lhs]
			rhs := first.ofSuffix(prod, 0)
			if acc.merge(rhs) {
				grown = true
			}
			if rhs.empty && acc.addEmpty() {
				grown = true
			}
		}
	}
	return first
}

// of returns FIRST of a non-terminal, or nil for a terminal.
func (fst *firstSet) of(sym symbol) *terminalSet {
	return fst.sets[sym]
}

// ofSuffix returns FIRST of the RHS of prod from head onward. It holds ε when every symbol from
// head onward can derive ε, including when there is no symbol left.
func (fst *firstSet) ofSuffix(prod *production, head int) *terminalSet {
	s := newTerminalSet()
	if head < len(prod.rhs) {
		for _, sym := range prod.rhs[head:] {
			e, ok := fst.sets[sym]
			if !ok {
				s.add(sym)
				return s
			}
			s.merge(e)
			if !e.empty {
				return s
			}
		}
	}
	s.addEmpty()
	return s
}

// sortedSymbols returns the keys of m in lexical order.
func sortedSymbols[V any](m map[symbol]V) []symbol {
	syms := make([]symbol, 0, len(m))
	for sym := range m {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}
