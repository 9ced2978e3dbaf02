package grammar

// symbol is a grammar symbol. Whether a symbol is a terminal depends on the productions: a symbol
// appearing as the LHS of some production is a non-terminal.
type symbol string

const symbolNil = symbol("")

func newSymbols(texts []string) []symbol {
	syms := make([]symbol, len(texts))
	for i, text := range texts {
		syms[i] = symbol(text)
	}
	return syms
}

func (s symbol) isNil() bool {
	return s == symbolNil
}

func (s symbol) String() string {
	return string(s)
}
