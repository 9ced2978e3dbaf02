package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrNoProduction        = newSemanticError("a grammar needs at least one production")
	semErrDuplicateProduction = newSemanticError("duplicate production")
	semErrConflict            = newSemanticError("the grammar is not SLR(1)")
)

var (
	ErrNoProduction        error = semErrNoProduction
	ErrDuplicateProduction error = semErrDuplicateProduction
	ErrConflict            error = semErrConflict
)
