package grammar

// GenSLR1Table generates a parsing table of a grammar. The start rule is the augmented start item,
// and the table has no reduce entries for it: the parser reduces the start rule when the input is
// exhausted. A grammar that is not SLR(1) is rejected with a list of its conflicts.
func GenSLR1Table(g *Grammar) (*ParsingTable, error) {
	prods, err := genProductionSet(g)
	if err != nil {
		return nil, err
	}
	follow := genFollowSet(prods, genFirstSet(prods))

	// An SLR(1) table is the LR(0) automaton with every complete item reduced on FOLLOW of its LHS.
	b := &lrTableBuilder{
		automaton: genLR0Automaton(prods),
		follow:    follow,
	}
	tab, err := b.build()
	if err != nil {
		return nil, err
	}
	if len(b.conflicts) > 0 {
		return nil, newConflictError(b.conflicts)
	}

	return tab, nil
}
