package lexical

type LexicalError struct {
	message string
}

func newLexicalError(message string) *LexicalError {
	return &LexicalError{
		message: message,
	}
}

func (e *LexicalError) Error() string {
	return e.message
}

var (
	lexErrInvalidSequence = newLexicalError("invalid character sequence")
	lexErrOutOfRange      = newLexicalError("integer literal out of range")
	lexErrLeadingZeros    = newLexicalError("leading zeroes are not allowed")
	lexErrUnknownState    = newLexicalError("unknown state")
)

var (
	ErrInvalidSequence error = lexErrInvalidSequence
	ErrOutOfRange      error = lexErrOutOfRange
	ErrLeadingZeros    error = lexErrLeadingZeros
	ErrUnknownState    error = lexErrUnknownState
)
