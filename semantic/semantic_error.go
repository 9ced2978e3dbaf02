package semantic

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
	semErrDuplicateVariable   = newSemanticError("duplicate variable declaration")
	semErrDuplicateProcedure  = newSemanticError("duplicate procedure declaration")
	semErrUndeclaredVariable  = newSemanticError("undeclared variable")
	semErrUndeclaredProcedure = newSemanticError("undeclared procedure")
	semErrVariableCalled      = newSemanticError("a variable called as a procedure")
	semErrEntryCalled         = newSemanticError("the entry procedure cannot be called")
	semErrArgumentCount       = newSemanticError("wrong number of arguments")
	semErrArgumentType        = newSemanticError("argument type mismatch")
	semErrInitializer         = newSemanticError("an initializer doesn't match the declared type")
	semErrEntryParam          = newSemanticError("the second parameter of the entry procedure must be int")
	semErrAddressOf           = newSemanticError("the operand of & must be int")
	semErrDereference         = newSemanticError("the operand of * must be int*")
	semErrAllocationSize      = newSemanticError("the size of an allocation must be int")
	semErrMultiplicative      = newSemanticError("the operands of *, / and % must be int")
	semErrPointerAddition     = newSemanticError("int* + int* is not allowed")
	semErrPointerSubtraction  = newSemanticError("int - int* is not allowed")
	semErrAssignment          = newSemanticError("assignment type mismatch")
	semErrPrintln             = newSemanticError("the operand of println must be int")
	semErrDelete              = newSemanticError("the operand of delete must be int*")
	semErrComparison          = newSemanticError("compared expressions must have the same type")
	semErrReturnType          = newSemanticError("a procedure must return int")
	semErrMalformedTree       = newSemanticError("unexpected tree shape")
)

var (
	ErrDuplicateVariable   error = semErrDuplicateVariable
	ErrDuplicateProcedure  error = semErrDuplicateProcedure
	ErrUndeclaredVariable  error = semErrUndeclaredVariable
	ErrUndeclaredProcedure error = semErrUndeclaredProcedure
	ErrVariableCalled      error = semErrVariableCalled
	ErrEntryCalled         error = semErrEntryCalled
	ErrArgumentCount       error = semErrArgumentCount
	ErrArgumentType        error = semErrArgumentType
	ErrInitializer         error = semErrInitializer
	ErrEntryParam          error = semErrEntryParam
	ErrAddressOf           error = semErrAddressOf
	ErrDereference         error = semErrDereference
	ErrAllocationSize      error = semErrAllocationSize
	ErrMultiplicative      error = semErrMultiplicative
	ErrPointerAddition     error = semErrPointerAddition
	ErrPointerSubtraction  error = semErrPointerSubtraction
	ErrAssignment          error = semErrAssignment
	ErrPrintln             error = semErrPrintln
	ErrDelete              error = semErrDelete
	ErrComparison          error = semErrComparison
	ErrReturnType          error = semErrReturnType
	ErrMalformedTree       error = semErrMalformedTree
)
