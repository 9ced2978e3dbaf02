package driver

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return e.message
}

var (
	synErrUnexpectedToken = newSyntaxError("unexpected token")
	synErrUnexpectedEOF   = newSyntaxError("unexpected end of input")
	synErrNoGoTo          = newSyntaxError("no goto entry")
	synErrUnknownRule     = newSyntaxError("a parsing table refers to an unknown rule")
	synErrStackUnderflow  = newSyntaxError("a reduction pops more states than the stack has")
)

var (
	ErrUnexpectedToken error = synErrUnexpectedToken
	ErrUnexpectedEOF   error = synErrUnexpectedEOF
	ErrNoGoTo          error = synErrNoGoTo
	ErrUnknownRule     error = synErrUnknownRule
	ErrStackUnderflow  error = synErrStackUnderflow
)
