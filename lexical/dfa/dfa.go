package dfa

import (
	"errors"
	"io"

	"github.com/nihei9/wlp4/compressor"
	verr "github.com/nihei9/wlp4/error"
	"github.com/nihei9/wlp4/spec"
)

// StateID identifies a state of a DFA. IDs are assigned in declaration order when the automaton is
// built, so they are stable for a given specification.
type StateID int

const (
	// StateIDNil represents the absence of a state. Step returns it when no transition exists.
	StateIDNil = StateID(0)

	// StateIDMin is the ID of the first declared state, which is the initial state.
	StateIDMin = StateID(1)
)

func (id StateID) Int() int {
	return int(id)
}

func (id StateID) IsNil() bool {
	return id == StateIDNil
}

// charCount is the size of the 7-bit ASCII alphabet.
const charCount = 0x80

// ErrUndeclaredState is the cause of a build error reported when a transition names a state missing
// from the .STATES section.
var ErrUndeclaredState = errors.New("undeclared state")

// DFA is a deterministic finite automaton over 7-bit ASCII characters. It doesn't change after Build
// returns, so a DFA can be shared freely.
type DFA struct {
	names     []string
	name2ID   map[string]StateID
	accepting []bool

	// transition is indexed by a state and a character. Most states have only a few outgoing
	// transitions, so the table is kept compressed.
	transition *compressor.Table
}

// Build reads an automaton specification and constructs a DFA from it.
func Build(src io.Reader) (*DFA, error) {
	s, err := spec.ParseDFA(src)
	if err != nil {
		return nil, err
	}
	return FromSpec(s)
}

// FromSpec constructs a DFA from a parsed automaton specification. Later transitions for the same
// state and character override earlier ones.
func FromSpec(s *spec.DFASpec) (*DFA, error) {
	n := len(s.States) + StateIDMin.Int()
	d := &DFA{
		names:     make([]string, n),
		name2ID:   make(map[string]StateID, len(s.States)),
		accepting: make([]bool, n),
	}
	for i, st := range s.States {
		id := StateID(i) + StateIDMin
		d.names[id] = st.Name
		d.name2ID[st.Name] = id
		d.accepting[id] = st.Accepting
	}

	trans := make([]int, n*charCount)
	for _, t := range s.Transitions {
		from, ok := d.name2ID[t.From]
		if !ok {
			return nil, &verr.SpecError{
				Cause:  ErrUndeclaredState,
				Detail: t.From,
				Row:    t.Row,
			}
		}
		to, ok := d.name2ID[t.To]
		if !ok {
			return nil, &verr.SpecError{
				Cause:  ErrUndeclaredState,
				Detail: t.To,
				Row:    t.Row,
			}
		}
		for _, c := range t.Chars {
			trans[from.Int()*charCount+int(c)] = to.Int()
		}
	}

	orig, err := compressor.NewOriginalTable(trans, charCount)
	if err != nil {
		return nil, err
	}
	d.transition = compressor.NewTable(StateIDNil.Int())
	err = d.transition.Compress(orig)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Initial returns the initial state.
func (d *DFA) Initial() StateID {
	return StateIDMin
}

// Step returns the successor of state on c. When no transition is defined, it returns StateIDNil and
// false.
func (d *DFA) Step(state StateID, c byte) (StateID, bool) {
	if !d.valid(state) || c >= charCount {
		return StateIDNil, false
	}
	v, err := d.transition.Lookup(state.Int(), int(c))
	if err != nil {
		return StateIDNil, false
	}
	next := StateID(v)
	return next, !next.IsNil()
}

func (d *DFA) IsAccepting(state StateID) bool {
	if !d.valid(state) {
		return false
	}
	return d.accepting[state]
}

// Name returns the name declared for state.
func (d *DFA) Name(state StateID) string {
	if !d.valid(state) {
		return ""
	}
	return d.names[state]
}

// Lookup returns the state declared with name.
func (d *DFA) Lookup(name string) (StateID, bool) {
	id, ok := d.name2ID[name]
	return id, ok
}

// StateCount returns the number of declared states.
func (d *DFA) StateCount() int {
	return len(d.names) - StateIDMin.Int()
}

func (d *DFA) valid(state StateID) bool {
	return state >= StateIDMin && state.Int() < len(d.names)
}
