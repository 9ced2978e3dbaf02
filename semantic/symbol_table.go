package semantic

import (
	"fmt"

	"github.com/nihei9/wlp4/driver"
	verr "github.com/nihei9/wlp4/error"
)

type Type string

const (
	TypeNil     = Type("")
	TypeInt     = Type("int")
	TypePointer = Type("int*")
)

func (t Type) String() string {
	return string(t)
}

func typeOf(n *driver.Node) Type {
	return Type(n.Type)
}

func setType(n *driver.Node, t Type) {
	n.Type = t.String()
}

// EntryProcedure is the name of the procedure a program starts from.
const EntryProcedure = "wain"

// VariableTable maps the names of the parameters and local variables of a procedure to their types.
type VariableTable struct {
	types map[string]Type
	names []string
}

func NewVariableTable() *VariableTable {
	return &VariableTable{
		types: map[string]Type{},
	}
}

// Add declares a variable. Declaring a name twice is an error.
func (t *VariableTable) Add(name string, ty Type) error {
	if _, ok := t.types[name]; ok {
		return semErrDuplicateVariable
	}
	t.types[name] = ty
	t.names = append(t.names, name)
	return nil
}

func (t *VariableTable) Lookup(name string) (Type, bool) {
	ty, ok := t.types[name]
	return ty, ok
}

// Names returns the declared names in declaration order.
func (t *VariableTable) Names() []string {
	return t.names
}

type Procedure struct {
	Name string

	// Signature holds the types of the parameters in order.
	Signature []Type

	Locals *VariableTable
	Node   *driver.Node
}

// ProcedureTable maps procedure names to procedures. It keeps the procedures in declaration order.
type ProcedureTable struct {
	procs map[string]*Procedure
	order []*Procedure
}

func NewProcedureTable() *ProcedureTable {
	return &ProcedureTable{
		procs: map[string]*Procedure{},
	}
}

// Add declares a procedure. Declaring a name twice is an error.
func (t *ProcedureTable) Add(proc *Procedure) error {
	if _, ok := t.procs[proc.Name]; ok {
		return semErrDuplicateProcedure
	}
	t.procs[proc.Name] = proc
	t.order = append(t.order, proc)
	return nil
}

func (t *ProcedureTable) Lookup(name string) (*Procedure, bool) {
	proc, ok := t.procs[name]
	return proc, ok
}

func (t *ProcedureTable) Procedures() []*Procedure {
	return t.order
}

// prefix returns a table of the first n procedures.
func (t *ProcedureTable) prefix(n int) *ProcedureTable {
	p := NewProcedureTable()
	for _, proc := range t.order[:n] {
		p.procs[proc.Name] = proc
		p.order = append(p.order, proc)
	}
	return p
}

func newError(cause error, n *driver.Node, format string, a ...interface{}) error {
	e := &verr.Error{
		Category: verr.CategorySemantic,
		Cause:    cause,
		Detail:   fmt.Sprintf(format, a...),
	}
	if n != nil {
		e.Row = n.Row
		e.Col = n.Col
	}
	return e
}
