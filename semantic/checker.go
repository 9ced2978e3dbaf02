package semantic

import (
	"github.com/nihei9/wlp4/driver"
)

// Check type-checks a program. It collects the procedures, and then annotates and validates each
// procedure in declaration order. A procedure may call itself and the procedures declared before it.
// On success, every factor, lvalue, term, and expr node of the tree has a type.
func Check(root *driver.Node) (*ProcedureTable, error) {
	procs, err := CollectProcedures(root)
	if err != nil {
		return nil, err
	}

	for i, proc := range procs.Procedures() {
		err := Annotate(proc.Node, proc.Locals, procs.prefix(i+1))
		if err != nil {
			return nil, err
		}

		stmts, ok := proc.Node.Child("statements")
		if !ok {
			return nil, newError(semErrMalformedTree, proc.Node, "%v", proc.Node.Label())
		}
		err = CheckStatements(stmts)
		if err != nil {
			return nil, err
		}

		ret, ok := proc.Node.Child("expr")
		if !ok {
			return nil, newError(semErrMalformedTree, proc.Node, "%v", proc.Node.Label())
		}
		if typeOf(ret) != TypeInt {
			return nil, newError(semErrReturnType, ret, "%v returns %v", proc.Name, typeOf(ret))
		}
	}

	return procs, nil
}

// Annotate types the expression nodes of a subtree bottom-up. locals resolves variables and procs
// resolves call targets.
func Annotate(node *driver.Node, locals *VariableTable, procs *ProcedureTable) error {
	a := &annotator{
		locals: locals,
		procs:  procs,
	}
	return a.annotate(node)
}

type annotator struct {
	locals *VariableTable
	procs  *ProcedureTable
}

func (a *annotator) annotate(n *driver.Node) error {
	if n.IsLeaf() {
		return nil
	}
	for _, c := range n.Children {
		err := a.annotate(c)
		if err != nil {
			return err
		}
	}

	switch n.Kind {
	case "factor":
		return a.annotateFactor(n)
	case "lvalue":
		return a.annotateLValue(n)
	case "term":
		return a.annotateTerm(n)
	case "expr":
		return a.annotateExpr(n)
	}
	return nil
}

func (a *annotator) annotateFactor(n *driver.Node) error {
	switch {
	case n.Is("factor", "ID"):
		return a.variable(n)
	case n.Is("factor", "NUM"):
		setType(n, TypeInt)
	case n.Is("factor", "NULL"):
		setType(n, TypePointer)
	case n.Is("factor", "LPAREN", "expr", "RPAREN"):
		setType(n, typeOf(n.Children[1]))
	case n.Is("factor", "AMP", "lvalue"):
		if typeOf(n.Children[1]) != TypeInt {
			return newError(semErrAddressOf, n, "&%v", typeOf(n.Children[1]))
		}
		setType(n, TypePointer)
	case n.Is("factor", "STAR", "factor"):
		return dereference(n)
	case n.Is("factor", "NEW", "INT", "LBRACK", "expr", "RBRACK"):
		if typeOf(n.Children[3]) != TypeInt {
			return newError(semErrAllocationSize, n, "new int[%v]", typeOf(n.Children[3]))
		}
		setType(n, TypePointer)
	case n.Is("factor", "ID", "LPAREN", "RPAREN"):
		return a.call(n, nil)
	case n.Is("factor", "ID", "LPAREN", "arglist", "RPAREN"):
		// arglist expr
		// arglist expr COMMA arglist
		var args []*driver.Node
		list := n.Children[2]
		for {
			args = append(args, list.Children[0])
			if len(list.Children) < 3 {
				break
			}
			list = list.Children[2]
		}
		return a.call(n, args)
	default:
		return newError(semErrMalformedTree, n, "%v", n.Label())
	}
	return nil
}

func (a *annotator) annotateLValue(n *driver.Node) error {
	switch {
	case n.Is("lvalue", "ID"):
		return a.variable(n)
	case n.Is("lvalue", "STAR", "factor"):
		return dereference(n)
	case n.Is("lvalue", "LPAREN", "lvalue", "RPAREN"):
		setType(n, typeOf(n.Children[1]))
	default:
		return newError(semErrMalformedTree, n, "%v", n.Label())
	}
	return nil
}

func (a *annotator) annotateTerm(n *driver.Node) error {
	switch {
	case n.Is("term", "factor"):
		setType(n, typeOf(n.Children[0]))
	case n.Is("term", "term", "STAR", "factor"),
		n.Is("term", "term", "SLASH", "factor"),
		n.Is("term", "term", "PCT", "factor"):
		l, r := typeOf(n.Children[0]), typeOf(n.Children[2])
		if l != TypeInt || r != TypeInt {
			return newError(semErrMultiplicative, n, "%v %v %v", l, n.Children[1].Lexeme, r)
		}
		setType(n, TypeInt)
	default:
		return newError(semErrMalformedTree, n, "%v", n.Label())
	}
	return nil
}

// annotateExpr types additive expressions.
//
//	int  + int  : int     int  - int  : int
//	int* + int  : int*    int* - int  : int*
//	int  + int* : int*    int* - int* : int
//	int* + int* : error   int  - int* : error
func (a *annotator) annotateExpr(n *driver.Node) error {
	switch {
	case n.Is("expr", "term"):
		setType(n, typeOf(n.Children[0]))
	case n.Is("expr", "expr", "PLUS", "term"):
		l, r := typeOf(n.Children[0]), typeOf(n.Children[2])
		if l == TypePointer && r == TypePointer {
			return newError(semErrPointerAddition, n, "%v + %v", l, r)
		}
		if l == TypeInt && r == TypeInt {
			setType(n, TypeInt)
		} else {
			setType(n, TypePointer)
		}
	case n.Is("expr", "expr", "MINUS", "term"):
		l, r := typeOf(n.Children[0]), typeOf(n.Children[2])
		if l == TypeInt && r == TypePointer {
			return newError(semErrPointerSubtraction, n, "%v - %v", l, r)
		}
		if l == TypePointer && r == TypeInt {
			setType(n, TypePointer)
		} else {
			setType(n, TypeInt)
		}
	default:
		return newError(semErrMalformedTree, n, "%v", n.Label())
	}
	return nil
}

func (a *annotator) variable(n *driver.Node) error {
	name := n.Children[0].Lexeme
	ty, ok := a.locals.Lookup(name)
	if !ok {
		return newError(semErrUndeclaredVariable, n, "%v", name)
	}
	setType(n, ty)
	return nil
}

func dereference(n *driver.Node) error {
	operand := n.Children[1]
	if typeOf(operand) != TypePointer {
		return newError(semErrDereference, n, "*%v", typeOf(operand))
	}
	setType(n, TypeInt)
	return nil
}

func (a *annotator) call(n *driver.Node, args []*driver.Node) error {
	name := n.Children[0].Lexeme
	if _, ok := a.locals.Lookup(name); ok {
		return newError(semErrVariableCalled, n, "%v", name)
	}
	if name == EntryProcedure {
		return newError(semErrEntryCalled, n, "%v", name)
	}
	proc, ok := a.procs.Lookup(name)
	if !ok {
		return newError(semErrUndeclaredProcedure, n, "%v", name)
	}
	if len(args) != len(proc.Signature) {
		return newError(semErrArgumentCount, n, "%v takes %v argument(s) but %v given", name, len(proc.Signature), len(args))
	}
	for i, arg := range args {
		if typeOf(arg) != proc.Signature[i] {
			return newError(semErrArgumentType, arg, "argument %v of %v must be %v but %v given", i+1, name, proc.Signature[i], typeOf(arg))
		}
	}
	setType(n, TypeInt)
	return nil
}

// CheckStatements validates the statements of a `statements` subtree whose expressions have already
// been annotated.
func CheckStatements(n *driver.Node) error {
	// statements .EMPTY
	// statements statements statement
	if n.Is("statements") {
		return nil
	}
	if !n.Is("statements", "statements", "statement") {
		return newError(semErrMalformedTree, n, "%v", n.Label())
	}
	err := CheckStatements(n.Children[0])
	if err != nil {
		return err
	}
	return checkStatement(n.Children[1])
}

func checkStatement(n *driver.Node) error {
	switch {
	case n.Is("statement", "lvalue", "BECOMES", "expr", "SEMI"):
		l, r := typeOf(n.Children[0]), typeOf(n.Children[2])
		if l != r {
			return newError(semErrAssignment, n, "%v = %v", l, r)
		}
	case n.Is("statement", "IF", "LPAREN", "test", "RPAREN", "LBRACE", "statements", "RBRACE", "ELSE", "LBRACE", "statements", "RBRACE"):
		err := checkTest(n.Children[2])
		if err != nil {
			return err
		}
		err = CheckStatements(n.Children[5])
		if err != nil {
			return err
		}
		return CheckStatements(n.Children[9])
	case n.Is("statement", "WHILE", "LPAREN", "test", "RPAREN", "LBRACE", "statements", "RBRACE"):
		err := checkTest(n.Children[2])
		if err != nil {
			return err
		}
		return CheckStatements(n.Children[5])
	case n.Is("statement", "PRINTLN", "LPAREN", "expr", "RPAREN", "SEMI"):
		if ty := typeOf(n.Children[2]); ty != TypeInt {
			return newError(semErrPrintln, n, "println(%v)", ty)
		}
	case n.Is("statement", "DELETE", "LBRACK", "RBRACK", "expr", "SEMI"):
		if ty := typeOf(n.Children[3]); ty != TypePointer {
			return newError(semErrDelete, n, "delete [] %v", ty)
		}
	default:
		return newError(semErrMalformedTree, n, "%v", n.Label())
	}
	return nil
}

// checkTest validates `test expr OP expr`.
func checkTest(n *driver.Node) error {
	if len(n.Children) != 3 {
		return newError(semErrMalformedTree, n, "%v", n.Label())
	}
	l, op, r := typeOf(n.Children[0]), n.Children[1], typeOf(n.Children[2])
	if l != r {
		return newError(semErrComparison, n, "%v %v %v", l, op.Lexeme, r)
	}
	return nil
}
