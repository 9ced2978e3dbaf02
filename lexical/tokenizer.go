package lexical

import (
	"strings"

	verr "github.com/nihei9/wlp4/error"
	"github.com/nihei9/wlp4/lexical/dfa"
	"github.com/nihei9/wlp4/spec"
)

type stateRule struct {
	kind       string
	validators []Validator
	reject     error
	normalized *string
}

// Option configures how a Tokenizer turns accepting states into tokens. Options naming a state that
// the automaton doesn't declare make NewTokenizer fail.
type Option func(t *Tokenizer) error

// Kind makes the tokenizer emit tokens accepted in the given states with kind instead of the state
// name.
func Kind(kind string, states ...string) Option {
	return func(t *Tokenizer) error {
		return t.eachRule(states, func(r *stateRule) {
			r.kind = kind
		})
	}
}

// Validate adds a validator for lexemes accepted in state.
func Validate(state string, v Validator) Option {
	return func(t *Tokenizer) error {
		return t.eachRule([]string{state}, func(r *stateRule) {
			r.validators = append(r.validators, v)
		})
	}
}

// Reject makes lexemes accepted in the given states fail with cause. Such states exist only to
// diagnose a malformed lexeme precisely.
func Reject(cause error, states ...string) Option {
	return func(t *Tokenizer) error {
		return t.eachRule(states, func(r *stateRule) {
			r.reject = cause
		})
	}
}

// Reclassify makes lexemes accepted in the given states emit kind. It is meant for states reached
// midway through a reserved word: such a lexeme is an ordinary identifier, not a kind of its own.
// Reclassification is looked up after the automaton accepts, so it never changes what is accepted.
func Reclassify(kind string, states ...string) Option {
	return func(t *Tokenizer) error {
		for _, s := range states {
			id, ok := t.dfa.Lookup(s)
			if !ok {
				return &verr.SpecError{
					Cause:  lexErrUnknownState,
					Detail: s,
				}
			}
			t.reclassified[id] = kind
		}
		return nil
	}
}

// SkipPrefix makes the tokenizer discard tokens accepted in states whose name begins with prefix.
func SkipPrefix(prefix string) Option {
	return func(t *Tokenizer) error {
		t.skipPrefixes = append(t.skipPrefixes, prefix)
		return nil
	}
}

// Normalize replaces the lexeme of tokens accepted in state with lexeme.
func Normalize(state string, lexeme string) Option {
	return func(t *Tokenizer) error {
		return t.eachRule([]string{state}, func(r *stateRule) {
			l := lexeme
			r.normalized = &l
		})
	}
}

// Tokenizer splits a source text into tokens by maximal munch over a DFA.
type Tokenizer struct {
	dfa          *dfa.DFA
	rules        map[dfa.StateID]*stateRule
	reclassified map[dfa.StateID]string
	skipPrefixes []string
}

func NewTokenizer(d *dfa.DFA, opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		dfa:          d,
		rules:        map[dfa.StateID]*stateRule{},
		reclassified: map[dfa.StateID]string{},
	}
	for _, opt := range opts {
		err := opt(t)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tokenizer) eachRule(states []string, f func(r *stateRule)) error {
	for _, s := range states {
		id, ok := t.dfa.Lookup(s)
		if !ok {
			return &verr.SpecError{
				Cause:  lexErrUnknownState,
				Detail: s,
			}
		}
		r, ok := t.rules[id]
		if !ok {
			r = &stateRule{}
			t.rules[id] = r
		}
		f(r)
	}
	return nil
}

// Tokenize returns the tokens of src, leaving out skipped ones. Every token is the longest prefix of
// the remaining input the automaton accepts: the scan extends a run while the automaton has a
// successor and commits only when it can't go further.
func (t *Tokenizer) Tokenize(src []byte) ([]*Token, error) {
	s := &scanner{
		src: src,
		row: 1,
		col: 1,
	}
	var toks []*Token
	for !s.eof() {
		tok, err := t.next(s)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			continue
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// next consumes one lexeme. It returns a nil token when the lexeme is to be skipped.
func (t *Tokenizer) next(s *scanner) (*Token, error) {
	start := s.ptr
	row, col := s.row, s.col
	state := t.dfa.Initial()
	for !s.eof() {
		next, ok := t.dfa.Step(state, s.peek())
		if !ok {
			break
		}
		state = next
		s.advance()
	}

	lexeme := string(s.src[start:s.ptr])
	if s.ptr == start || !t.dfa.IsAccepting(state) {
		// Report the character the automaton got stuck on along with the unaccepted run.
		detail := lexeme
		if !s.eof() {
			detail = string(s.src[start : s.ptr+1])
		}
		return nil, &verr.Error{
			Category: verr.CategoryLexical,
			Cause:    lexErrInvalidSequence,
			Detail:   spec.Unescape(detail),
			Row:      row,
			Col:      col,
		}
	}

	name := t.dfa.Name(state)
	for _, p := range t.skipPrefixes {
		if strings.HasPrefix(name, p) {
			return nil, nil
		}
	}

	tok := &Token{
		Kind:   name,
		Lexeme: lexeme,
		Row:    row,
		Col:    col,
	}
	if r, ok := t.rules[state]; ok {
		if r.reject != nil {
			return nil, &verr.Error{
				Category: verr.CategoryLexical,
				Cause:    r.reject,
				Detail:   spec.Unescape(lexeme),
				Row:      row,
				Col:      col,
			}
		}
		for _, v := range r.validators {
			err := v(lexeme)
			if err != nil {
				return nil, &verr.Error{
					Category: verr.CategoryLexical,
					Cause:    err,
					Detail:   spec.Unescape(lexeme),
					Row:      row,
					Col:      col,
				}
			}
		}
		if r.kind != "" {
			tok.Kind = r.kind
		}
		if r.normalized != nil {
			tok.Lexeme = *r.normalized
		}
	}
	if kind, ok := t.reclassified[state]; ok {
		tok.Kind = kind
	}

	return tok, nil
}

type scanner struct {
	src []byte
	ptr int
	row int
	col int
}

func (s *scanner) eof() bool {
	return s.ptr >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.ptr]
}

func (s *scanner) advance() {
	if s.src[s.ptr] == '\n' {
		s.row++
		s.col = 1
	} else {
		s.col++
	}
	s.ptr++
}
