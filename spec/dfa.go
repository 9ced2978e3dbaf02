package spec

import (
	"io"

	verr "github.com/nihei9/wlp4/error"
)

const (
	markerStates      = ".STATES"
	markerTransitions = ".TRANSITIONS"
	markerInput       = ".INPUT"

	acceptingSuffix = "!"
)

type StateDecl struct {
	Name      string
	Accepting bool
	Row       int
}

type TransitionDecl struct {
	From  string
	Chars []byte
	To    string
	Row   int
}

// DFASpec is a parsed automaton specification. The first state in States is the initial state.
type DFASpec struct {
	States      []*StateDecl
	Transitions []*TransitionDecl
}

// ParseDFA reads an automaton specification consisting of a .STATES section, a .TRANSITIONS
// section, and an optional .INPUT section. Anything following the .INPUT marker is ignored.
func ParseDFA(src io.Reader) (*DFASpec, error) {
	lines, err := readLines(src)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 || !lines[0].is(markerStates) {
		e := &verr.SpecError{
			Cause: synErrNoStatesSection,
		}
		if len(lines) > 0 {
			e.Detail = lines[0].words[0]
			e.Row = lines[0].row
		}
		return nil, e
	}

	s := &DFASpec{}
	known := map[string]struct{}{}
	rest := lines[1:]
	foundTransitions := false
STATES:
	for len(rest) > 0 {
		l := rest[0]
		rest = rest[1:]
		for _, w := range l.words {
			if w == markerTransitions {
				// The remainder of the marker line is not a part of the transitions.
				foundTransitions = true
				break STATES
			}

			decl := &StateDecl{
				Name: w,
				Row:  l.row,
			}
			if len(w) > 1 && w[len(w)-1:] == acceptingSuffix {
				decl.Name = w[:len(w)-1]
				decl.Accepting = true
			}
			if _, ok := known[decl.Name]; ok {
				return nil, &verr.SpecError{
					Cause:  synErrDuplicateState,
					Detail: decl.Name,
					Row:    l.row,
				}
			}
			known[decl.Name] = struct{}{}
			s.States = append(s.States, decl)
		}
	}
	if !foundTransitions {
		return nil, &verr.SpecError{
			Cause: synErrNoTransitionsSection,
		}
	}
	if len(s.States) == 0 {
		return nil, &verr.SpecError{
			Cause: synErrNoState,
		}
	}

	for _, l := range rest {
		if l.is(markerInput) {
			break
		}
		t, err := parseTransition(l)
		if err != nil {
			return nil, err
		}
		s.Transitions = append(s.Transitions, t)
	}

	return s, nil
}

func parseTransition(l *line) (*TransitionDecl, error) {
	if len(l.words) < 3 {
		return nil, &verr.SpecError{
			Cause: synErrIncompleteTransition,
			Row:   l.row,
		}
	}

	t := &TransitionDecl{
		From: l.words[0],
		To:   l.words[len(l.words)-1],
		Row:  l.row,
	}
	for _, w := range l.words[1 : len(l.words)-1] {
		cs, err := Escape(w)
		if err != nil {
			return nil, &verr.SpecError{
				Cause:  err,
				Detail: w,
				Row:    l.row,
			}
		}

		switch {
		case len(cs) == 1:
			if cs[0] > 0x7f {
				return nil, &verr.SpecError{
					Cause:  synErrNonASCIIChar,
					Detail: Unescape(cs),
					Row:    l.row,
				}
			}
			t.Chars = append(t.Chars, cs[0])
		case len(cs) == 3 && cs[1] == '-':
			if cs[0] > 0x7f || cs[2] > 0x7f {
				return nil, &verr.SpecError{
					Cause:  synErrNonASCIIChar,
					Detail: Unescape(cs),
					Row:    l.row,
				}
			}
			for c := int(cs[0]); c <= int(cs[2]); c++ {
				t.Chars = append(t.Chars, byte(c))
			}
		default:
			return nil, &verr.SpecError{
				Cause:  synErrInvalidCharOrRange,
				Detail: w,
				Row:    l.row,
			}
		}
	}

	return t, nil
}
