package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/wlp4/grammar"
	"github.com/nihei9/wlp4/lexical"
	"github.com/nihei9/wlp4/spec"
)

type SemanticActionSet interface {
	// Shift runs when the parser shifts a token onto the state stack.
	Shift(tok *lexical.Token)

	// Reduce runs when the parser reduces an RHS of a rule to its LHS. The start rule is reduced
	// last, right before Accept runs.
	Reduce(rule *grammar.Rule)

	// Accept runs when the parser accepts an input.
	Accept()
}

var (
	_ SemanticActionSet = &SyntaxTreeActionSet{}
	_ SemanticActionSet = &TraceActionSet{}
)

// Node is a node of a concrete syntax tree. An interior node stands for a reduction and has one
// child per symbol of the RHS of the rule. A leaf stands for a token.
type Node struct {
	// Kind is the LHS of the rule for an interior node and the token kind for a leaf.
	Kind string

	// RHS is the RHS of the rule an interior node was reduced by. It is empty for a leaf and for an
	// epsilon production, which IsLeaf tells apart.
	RHS []string

	Lexeme   string
	Row      int
	Col      int
	Children []*Node

	// Type is the type a type checker annotates an expression node with. It is empty for the other
	// nodes.
	Type string

	leaf bool
}

func NewLeaf(tok *lexical.Token) *Node {
	return &Node{
		Kind:   tok.Kind,
		Lexeme: tok.Lexeme,
		Row:    tok.Row,
		Col:    tok.Col,
		leaf:   true,
	}
}

func NewNode(lhs string, rhs []string, children []*Node) *Node {
	n := &Node{
		Kind:     lhs,
		RHS:      rhs,
		Children: children,
	}
	// An interior node takes the position of its first token.
	for _, c := range children {
		if c.Row != 0 {
			n.Row = c.Row
			n.Col = c.Col
			break
		}
	}
	return n
}

func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Is reports whether n is an interior node reduced by the rule `lhs rhs...`.
func (n *Node) Is(lhs string, rhs ...string) bool {
	if n.leaf || n.Kind != lhs || len(n.RHS) != len(rhs) {
		return false
	}
	for i, sym := range rhs {
		if n.RHS[i] != sym {
			return false
		}
	}
	return true
}

// Child returns the first child whose kind is kind.
func (n *Node) Child(kind string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c, true
		}
	}
	return nil, false
}

// Label returns the line the canonical printer writes for the node: `LHS RHS...` for an interior
// node, `LHS .EMPTY` for an epsilon production, and `KIND lexeme` for a leaf.
func (n *Node) Label() string {
	switch {
	case n.leaf:
		return fmt.Sprintf("%v %v", n.Kind, n.Lexeme)
	case len(n.RHS) == 0:
		return fmt.Sprintf("%v %v", n.Kind, spec.EmptySymbol)
	default:
		return fmt.Sprintf("%v %v", n.Kind, strings.Join(n.RHS, " "))
	}
}

// PrintTree writes a tree in preorder, one node per line. When withTypes is true, typed nodes are
// followed by ` : TYPE`.
func PrintTree(w io.Writer, node *Node, withTypes bool) {
	if node == nil {
		return
	}

	if withTypes && node.Type != "" {
		fmt.Fprintf(w, "%v : %v\n", node.Label(), node.Type)
	} else {
		fmt.Fprintln(w, node.Label())
	}
	for _, c := range node.Children {
		PrintTree(w, c, withTypes)
	}
}

// PrintRuledTree writes a tree with ruled lines showing the structure.
func PrintRuledTree(w io.Writer, node *Node) {
	printRuledTree(w, node, "", "")
}

func printRuledTree(w io.Writer, node *Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}

	switch {
	case node.leaf:
		fmt.Fprintf(w, "%v%v %#v", ruledLine, node.Kind, node.Lexeme)
	default:
		fmt.Fprintf(w, "%v%v", ruledLine, node.Kind)
	}
	if node.Type != "" {
		fmt.Fprintf(w, " : %v", node.Type)
	}
	fmt.Fprintln(w)

	num := len(node.Children)
	for i, child := range node.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printRuledTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}

// SyntaxTreeActionSet builds a concrete syntax tree.
type SyntaxTreeActionSet struct {
	tree     *Node
	semStack *semanticStack
}

func NewSyntaxTreeActionSet() *SyntaxTreeActionSet {
	return &SyntaxTreeActionSet{
		semStack: newSemanticStack(),
	}
}

func (a *SyntaxTreeActionSet) Shift(tok *lexical.Token) {
	a.semStack.push(NewLeaf(tok))
}

func (a *SyntaxTreeActionSet) Reduce(rule *grammar.Rule) {
	// When an RHS is empty, `n` will be 0, and `handle` will be empty slice.
	n := len(rule.RHS)
	handle := a.semStack.pop(n)

	children := make([]*Node, n)
	copy(children, handle)
	rhs := make([]string, n)
	copy(rhs, rule.RHS)

	a.semStack.push(NewNode(rule.LHS, rhs, children))
}

func (a *SyntaxTreeActionSet) Accept() {
	top := a.semStack.pop(1)
	a.tree = top[0]
}

// Tree returns the tree of an accepted input. It returns nil until the parser accepts.
func (a *SyntaxTreeActionSet) Tree() *Node {
	return a.tree
}

type semanticStack struct {
	frames []*Node
}

func newSemanticStack() *semanticStack {
	return &semanticStack{}
}

func (s *semanticStack) push(f *Node) {
	s.frames = append(s.frames, f)
}

func (s *semanticStack) pop(n int) []*Node {
	fs := s.frames[len(s.frames)-n:]
	s.frames = s.frames[:len(s.frames)-n]

	return fs
}

// TraceActionSet writes one line per parser action.
type TraceActionSet struct {
	w io.Writer
}

func NewTraceActionSet(w io.Writer) *TraceActionSet {
	return &TraceActionSet{
		w: w,
	}
}

func (a *TraceActionSet) Shift(tok *lexical.Token) {
	fmt.Fprintf(a.w, "shift %v %v\n", tok.Kind, spec.Unescape(tok.Lexeme))
}

func (a *TraceActionSet) Reduce(rule *grammar.Rule) {
	fmt.Fprintf(a.w, "reduce %v: %v\n", rule.Num, rule)
}

func (a *TraceActionSet) Accept() {
	fmt.Fprintln(a.w, "accept")
}
