package semantic

import (
	"github.com/nihei9/wlp4/driver"
)

// CollectProcedures builds the procedure table of a program from its tree, whose root is the start
// rule `start BOF procedures EOF`. Each procedure gets a variable table holding its parameters and
// local declarations.
func CollectProcedures(root *driver.Node) (*ProcedureTable, error) {
	procsNode, ok := root.Child("procedures")
	if !ok {
		return nil, newError(semErrMalformedTree, root, "%v", root.Label())
	}

	procs := NewProcedureTable()
	for {
		var proc *Procedure
		var err error
		switch {
		case procsNode.Is("procedures", "procedure", "procedures"):
			proc, err = collectProcedure(procsNode.Children[0])
		case procsNode.Is("procedures", "main"):
			proc, err = collectEntryProcedure(procsNode.Children[0])
		default:
			err = newError(semErrMalformedTree, procsNode, "%v", procsNode.Label())
		}
		if err != nil {
			return nil, err
		}

		err = procs.Add(proc)
		if err != nil {
			return nil, newError(err, proc.Node, "%v", proc.Name)
		}

		if len(procsNode.Children) == 1 {
			break
		}
		procsNode = procsNode.Children[1]
	}

	return procs, nil
}

// collectProcedure handles `procedure INT ID LPAREN params RPAREN LBRACE dcls statements RETURN expr
// SEMI RBRACE`.
func collectProcedure(n *driver.Node) (*Procedure, error) {
	id, _ := n.Child("ID")
	proc := &Procedure{
		Name:   id.Lexeme,
		Locals: NewVariableTable(),
		Node:   n,
	}

	params, ok := n.Child("params")
	if !ok {
		return nil, newError(semErrMalformedTree, n, "%v", n.Label())
	}
	if params.Is("params", "paramlist") {
		list := params.Children[0]
		for {
			err := proc.addParam(list.Children[0])
			if err != nil {
				return nil, err
			}
			if !list.Is("paramlist", "dcl", "COMMA", "paramlist") {
				break
			}
			list = list.Children[2]
		}
	}

	err := proc.addLocals(n)
	if err != nil {
		return nil, err
	}
	return proc, nil
}

// collectEntryProcedure handles `main INT WAIN LPAREN dcl COMMA dcl RPAREN LBRACE dcls statements
// RETURN expr SEMI RBRACE`. The second parameter must be an int.
func collectEntryProcedure(n *driver.Node) (*Procedure, error) {
	proc := &Procedure{
		Name:   EntryProcedure,
		Locals: NewVariableTable(),
		Node:   n,
	}

	var dcls []*driver.Node
	for _, c := range n.Children {
		if c.Kind == "dcl" {
			dcls = append(dcls, c)
		}
	}
	if len(dcls) != 2 {
		return nil, newError(semErrMalformedTree, n, "%v", n.Label())
	}
	err := proc.addParam(dcls[0])
	if err != nil {
		return nil, err
	}
	name, ty, err := declaration(dcls[1])
	if err != nil {
		return nil, err
	}
	if ty != TypeInt {
		return nil, newError(semErrEntryParam, dcls[1], "%v", name)
	}
	err = proc.addParam(dcls[1])
	if err != nil {
		return nil, err
	}

	err = proc.addLocals(n)
	if err != nil {
		return nil, err
	}
	return proc, nil
}

func (p *Procedure) addParam(dcl *driver.Node) error {
	name, ty, err := declaration(dcl)
	if err != nil {
		return err
	}
	err = p.Locals.Add(name, ty)
	if err != nil {
		return newError(err, dcl, "%v", name)
	}
	p.Signature = append(p.Signature, ty)
	return nil
}

// addLocals declares the variables of the `dcls` child of a procedure node. Since `dcls` is
// left-recursive, the innermost node holds the first declaration.
func (p *Procedure) addLocals(proc *driver.Node) error {
	dcls, ok := proc.Child("dcls")
	if !ok {
		return newError(semErrMalformedTree, proc, "%v", proc.Label())
	}

	var decls []*driver.Node
	for !dcls.Is("dcls") {
		if len(dcls.Children) != 5 {
			return newError(semErrMalformedTree, dcls, "%v", dcls.Label())
		}
		decls = append(decls, dcls)
		dcls = dcls.Children[0]
	}

	for i := len(decls) - 1; i >= 0; i-- {
		d := decls[i]
		dcl := d.Children[1]
		name, ty, err := declaration(dcl)
		if err != nil {
			return err
		}

		// dcls dcls dcl BECOMES NUM SEMI
		// dcls dcls dcl BECOMES NULL SEMI
		init := d.Children[3]
		if (ty == TypeInt && init.Kind == "NULL") || (ty == TypePointer && init.Kind == "NUM") {
			return newError(semErrInitializer, dcl, "%v %v = %v", ty, name, init.Lexeme)
		}

		err = p.Locals.Add(name, ty)
		if err != nil {
			return newError(err, dcl, "%v", name)
		}
	}
	return nil
}

// declaration returns the name and the type of `dcl type ID`.
func declaration(dcl *driver.Node) (string, Type, error) {
	if !dcl.Is("dcl", "type", "ID") {
		return "", TypeNil, newError(semErrMalformedTree, dcl, "%v", dcl.Label())
	}
	ty := TypeInt
	if dcl.Children[0].Is("type", "INT", "STAR") {
		ty = TypePointer
	}
	return dcl.Children[1].Lexeme, ty, nil
}
