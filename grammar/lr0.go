package grammar

import (
	"sort"
	"strconv"
)

type stateNum int

func (n stateNum) Int() int {
	return int(n)
}

func (n stateNum) String() string {
	return strconv.Itoa(int(n))
}

type lrState struct {
	num    stateNum
	kernel kernel
	next   map[symbol]stateNum

	// reducible lists the productions of the complete items of the closure in the order of their
	// numbers. An empty production `p → ε` appears here even though its item is never in a kernel.
	reducible []*production
}

// lr0Automaton is the LR(0) automaton of a grammar. states is indexed by state numbers.
type lr0Automaton struct {
	states []*lrState
}

// genLR0Automaton numbers states in the breadth-first order they are found from the kernel of the
// start production. Transitions out of a state are followed in lexical order of their symbols, so
// numbering is stable across runs.
func genLR0Automaton(prods *productionSet) *lr0Automaton {
	a := &lr0Automaton{}
	known := map[string]stateNum{}
	stateOf := func(k kernel) stateNum {
		key := k.key()
		if num, ok := known[key]; ok {
			return num
		}
		num := stateNum(len(a.states))
		known[key] = num
		a.states = append(a.states, &lrState{
			num:    num,
			kernel: k,
			next:   map[symbol]stateNum{},
		})
		return num
	}

	// The kernel of the start production becomes state 0.
	stateOf(newKernel([]item{{prod: prods.start()}}))
	for i := 0; i < len(a.states); i++ {
		state := a.states[i]
		items := state.kernel.closure(prods)

		moved := map[symbol][]item{}
		for _, it := range items {
			if it.complete() {
				state.reducible = append(state.reducible, it.prod)
				continue
			}
			sym := it.dotted()
			moved[sym] = append(moved[sym], it.advance())
		}
		sort.Slice(state.reducible, func(i, j int) bool {
			return state.reducible[i].num < state.reducible[j].num
		})

		for _, sym := range sortedSymbols(moved) {
			state.next[sym] = stateOf(newKernel(moved[sym]))
		}
	}

	return a
}
