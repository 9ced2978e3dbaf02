package grammar

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	verr "github.com/nihei9/wlp4/error"
	"github.com/nihei9/wlp4/spec"
)

// ParsingTable is a pair of maps driving a shift-reduce parser. The shift map takes a state and a
// symbol to the next state; entries for non-terminals serve as goto entries after reductions. The
// reduce map takes a state and a look-ahead terminal to the number of the rule to reduce.
type ParsingTable struct {
	shift  map[int]map[string]int
	reduce map[int]map[string]int
}

func NewParsingTable() *ParsingTable {
	return &ParsingTable{
		shift:  map[int]map[string]int{},
		reduce: map[int]map[string]int{},
	}
}

// ReadParsingTable reads a shift table and a reduce table. Entries are taken as they are; when a
// text has several entries for the same key, the last one is in effect. When a text comes from a
// file, errors in it carry the file path.
func ReadParsingTable(shift, reduce io.Reader) (*ParsingTable, error) {
	shiftDecls, err := spec.ParseShiftTable(shift)
	if err != nil {
		return nil, withFilePath(err, shift)
	}
	reduceDecls, err := spec.ParseReduceTable(reduce)
	if err != nil {
		return nil, withFilePath(err, reduce)
	}

	t := NewParsingTable()
	for _, d := range shiftDecls {
		t.writeShift(d.State, d.Symbol, d.NextState)
	}
	for _, d := range reduceDecls {
		t.writeReduce(d.State, d.Lookahead, d.Rule)
	}
	return t, nil
}

// namedReader is a reader knowing the path it reads from, such as *os.File.
type namedReader interface {
	io.Reader
	Name() string
}

func withFilePath(err error, src io.Reader) error {
	f, ok := src.(namedReader)
	if !ok {
		return err
	}
	var specErr *verr.SpecError
	if errors.As(err, &specErr) && specErr.FilePath == "" {
		specErr.FilePath = f.Name()
		specErr.SourceName = f.Name()
	}
	return err
}

// Shift returns the state to move to from state on sym.
func (t *ParsingTable) Shift(state int, sym string) (int, bool) {
	next, ok := t.shift[state][sym]
	return next, ok
}

// Reduce returns the number of the rule to reduce in state when the next terminal is lookahead.
func (t *ParsingTable) Reduce(state int, lookahead string) (int, bool) {
	rule, ok := t.reduce[state][lookahead]
	return rule, ok
}

// StateCount returns the number of states the table refers to.
func (t *ParsingTable) StateCount() int {
	max := -1
	for state, entries := range t.shift {
		if state > max {
			max = state
		}
		for _, next := range entries {
			if next > max {
				max = next
			}
		}
	}
	for state := range t.reduce {
		if state > max {
			max = state
		}
	}
	return max + 1
}

func (t *ParsingTable) writeShift(state int, sym string, next int) {
	entries, ok := t.shift[state]
	if !ok {
		entries = map[string]int{}
		t.shift[state] = entries
	}
	entries[sym] = next
}

func (t *ParsingTable) writeReduce(state int, lookahead string, rule int) {
	entries, ok := t.reduce[state]
	if !ok {
		entries = map[string]int{}
		t.reduce[state] = entries
	}
	entries[lookahead] = rule
}

// Write writes the shift table and the reduce table in the formats ReadParsingTable reads. Entries
// are sorted by state and then by symbol.
func (t *ParsingTable) Write(shift, reduce io.Writer) error {
	var b strings.Builder
	fmt.Fprintln(&b, spec.ShiftTableHeader)
	writeEntries(&b, t.shift, func(state int, sym string, next int) {
		fmt.Fprintf(&b, "%v %v %v\n", state, sym, next)
	})
	_, err := io.WriteString(shift, b.String())
	if err != nil {
		return err
	}

	b.Reset()
	fmt.Fprintln(&b, spec.ReduceTableHeader)
	writeEntries(&b, t.reduce, func(state int, sym string, rule int) {
		fmt.Fprintf(&b, "%v %v %v\n", state, rule, sym)
	})
	_, err = io.WriteString(reduce, b.String())
	return err
}

func writeEntries(b *strings.Builder, m map[int]map[string]int, write func(state int, sym string, v int)) {
	states := make([]int, 0, len(m))
	for state := range m {
		states = append(states, state)
	}
	sort.Ints(states)
	for _, state := range states {
		entries := m[state]
		syms := make([]string, 0, len(entries))
		for sym := range entries {
			syms = append(syms, sym)
		}
		sort.Strings(syms)
		for _, sym := range syms {
			write(state, sym, entries[sym])
		}
	}
}

type conflict interface {
	conflict()
	String() string
}

type shiftReduceConflict struct {
	state     stateNum
	sym       symbol
	nextState stateNum
	prodNum   int
}

func (c *shiftReduceConflict) conflict() {
}

func (c *shiftReduceConflict) String() string {
	return fmt.Sprintf("state %v: shift/reduce conflict on %v (shift to %v, reduce by rule %v)", c.state, c.sym, c.nextState, c.prodNum)
}

type reduceReduceConflict struct {
	state    stateNum
	sym      symbol
	prodNum1 int
	prodNum2 int
}

func (c *reduceReduceConflict) conflict() {
}

func (c *reduceReduceConflict) String() string {
	return fmt.Sprintf("state %v: reduce/reduce conflict on %v (rules %v and %v)", c.state, c.sym, c.prodNum1, c.prodNum2)
}

var (
	_ conflict = &shiftReduceConflict{}
	_ conflict = &reduceReduceConflict{}
)

func newConflictError(conflicts []conflict) error {
	descs := make([]string, len(conflicts))
	for i, c := range conflicts {
		descs[i] = c.String()
	}
	return &verr.SpecError{
		Cause:  semErrConflict,
		Detail: strings.Join(descs, "; "),
	}
}

type lrTableBuilder struct {
	automaton *lr0Automaton
	follow    *followSet

	conflicts []conflict
}

func (b *lrTableBuilder) build() (*ParsingTable, error) {
	ptab := NewParsingTable()

	// Shift entries are written first so that conflicts are found while writing reduce entries.
	for _, state := range b.automaton.states {
		for _, sym := range sortedSymbols(state.next) {
			ptab.writeShift(state.num.Int(), sym.String(), state.next[sym].Int())
		}
	}

	for _, state := range b.automaton.states {
		for _, prod := range state.reducible {
			flw, err := b.follow.of(prod.lhs)
			if err != nil {
				return nil, err
			}
			for _, sym := range flw.sorted() {
				b.writeReduceAction(ptab, state.num, sym, prod.num)
			}
		}
	}

	return ptab, nil
}

func (b *lrTableBuilder) writeReduceAction(tab *ParsingTable, state stateNum, sym symbol, prodNum int) {
	if next, ok := tab.Shift(state.Int(), sym.String()); ok {
		b.conflicts = append(b.conflicts, &shiftReduceConflict{
			state:     state,
			sym:       sym,
			nextState: stateNum(next),
			prodNum:   prodNum,
		})
		return
	}
	if prev, ok := tab.Reduce(state.Int(), sym.String()); ok {
		if prev != prodNum {
			b.conflicts = append(b.conflicts, &reduceReduceConflict{
				state:    state,
				sym:      sym,
				prodNum1: prev,
				prodNum2: prodNum,
			})
		}
		return
	}
	tab.writeReduce(state.Int(), sym.String(), prodNum)
}
