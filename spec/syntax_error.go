package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	// lexical errors
	synErrInvalidChar    = newSyntaxError("invalid character")
	synErrNonASCIIEscSeq = newSyntaxError("an escape sequence must denote a character in ASCII range (0x00 to 0x7F)")

	// automaton specification
	synErrNoStatesSection      = newSyntaxError("the " + markerStates + " section is missing")
	synErrNoTransitionsSection = newSyntaxError("the " + markerTransitions + " section is missing")
	synErrNoState              = newSyntaxError("an automaton needs at least one state")
	synErrDuplicateState       = newSyntaxError("duplicate state")
	synErrIncompleteTransition = newSyntaxError("a transition line needs a source state, at least one character, and a destination state")
	synErrInvalidCharOrRange   = newSyntaxError("expected a character or a range")
	synErrNonASCIIChar         = newSyntaxError("a character is outside ASCII range")

	// grammar and parsing tables
	synErrNoLHS            = newSyntaxError("a rule needs an LHS symbol")
	synErrInvalidTableLine = newSyntaxError("a table entry needs exactly three fields")
	synErrInvalidStateNum  = newSyntaxError("a state number must be a non-negative integer")
	synErrInvalidRuleNum   = newSyntaxError("a rule number must be a non-negative integer")
)

// Exported aliases so that callers in other packages can test causes with errors.Is.
var (
	ErrInvalidChar          error = synErrInvalidChar
	ErrNonASCIIEscSeq       error = synErrNonASCIIEscSeq
	ErrNoStatesSection      error = synErrNoStatesSection
	ErrNoTransitionsSection error = synErrNoTransitionsSection
	ErrNoState              error = synErrNoState
	ErrDuplicateState       error = synErrDuplicateState
	ErrIncompleteTransition error = synErrIncompleteTransition
	ErrInvalidCharOrRange   error = synErrInvalidCharOrRange
	ErrNonASCIIChar         error = synErrNonASCIIChar
	ErrNoLHS                error = synErrNoLHS
	ErrInvalidTableLine     error = synErrInvalidTableLine
	ErrInvalidStateNum      error = synErrInvalidStateNum
	ErrInvalidRuleNum       error = synErrInvalidRuleNum
)
