package test

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/nihei9/wlp4/spec"
)

// Wildcard is a tree line matching any subtree.
const Wildcard = "_"

type TreeDiff struct {
	ExpectedPath string
	ActualPath   string
	Message      string
}

func newTreeDiff(expected, actual *Tree, message string) *TreeDiff {
	return &TreeDiff{
		ExpectedPath: expected.path(),
		ActualPath:   actual.path(),
		Message:      message,
	}
}

// Tree is a syntax tree in the canonical form. Label is `LHS RHS...` for an interior node and
// `KIND lexeme` for a leaf.
type Tree struct {
	Parent   *Tree
	Offset   int
	Label    string
	Type     string
	Children []*Tree
}

func NewTree(label string, children ...*Tree) *Tree {
	return &Tree{
		Label:    label,
		Children: children,
	}
}

// Typed sets the type annotation of a node.
func (t *Tree) Typed(ty string) *Tree {
	t.Type = ty
	return t
}

func (t *Tree) Fill() *Tree {
	for i, c := range t.Children {
		c.Parent = t
		c.Offset = i
		c.Fill()
	}
	return t
}

func (t *Tree) kind() string {
	if i := strings.Index(t.Label, " "); i >= 0 {
		return t.Label[:i]
	}
	return t.Label
}

func (t *Tree) path() string {
	if t.Parent == nil {
		return t.kind()
	}
	return fmt.Sprintf("%v.[%v]%v", t.Parent.path(), t.Offset, t.kind())
}

// HasType reports whether any node of the tree carries a type annotation.
func (t *Tree) HasType() bool {
	if t.Type != "" {
		return true
	}
	for _, c := range t.Children {
		if c.HasType() {
			return true
		}
	}
	return false
}

// Format writes the tree in preorder, one node per line.
func (t *Tree) Format() []byte {
	var b bytes.Buffer
	t.format(&b)
	return b.Bytes()
}

func (t *Tree) format(buf *bytes.Buffer) {
	buf.WriteString(t.Label)
	if t.Type != "" {
		buf.WriteString(" : ")
		buf.WriteString(t.Type)
	}
	buf.WriteString("\n")
	for _, c := range t.Children {
		c.format(buf)
	}
}

// DiffTree compares two trees. Types are compared only where expected has one.
func DiffTree(expected, actual *Tree) []*TreeDiff {
	if expected == nil && actual == nil {
		return nil
	}
	if expected.Label == Wildcard {
		return nil
	}
	if actual.Label != expected.Label {
		msg := fmt.Sprintf("unexpected node: expected '%v' but got '%v'", expected.Label, actual.Label)
		return []*TreeDiff{
			newTreeDiff(expected, actual, msg),
		}
	}
	if expected.Type != "" && actual.Type != expected.Type {
		msg := fmt.Sprintf("unexpected type: expected '%v' but got '%v'", expected.Type, actual.Type)
		return []*TreeDiff{
			newTreeDiff(expected, actual, msg),
		}
	}
	if len(actual.Children) != len(expected.Children) {
		msg := fmt.Sprintf("unexpected node count: expected %v but got %v", len(expected.Children), len(actual.Children))
		return []*TreeDiff{
			newTreeDiff(expected, actual, msg),
		}
	}
	var diffs []*TreeDiff
	for i, exp := range expected.Children {
		if ds := DiffTree(exp, actual.Children[i]); len(ds) > 0 {
			diffs = append(diffs, ds...)
		}
	}
	return diffs
}

// TestCase is a program paired with its expected outcome: either a tree or the category of the
// error the program must fail with.
type TestCase struct {
	Description string
	Source      []byte
	Output      *Tree
	Error       string
}

var reErrorOutput = regexp.MustCompile(`^\s*error:\s*(\S+)\s*$`)

// ParseTestCase reads a test case. isTerminal tells the leaves of the expected tree from the
// interior nodes.
func ParseTestCase(r io.Reader, isTerminal func(sym string) bool) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just three parts: %v parts found", len(parts))
	}

	tc := &TestCase{
		Description: string(parts[0].buf),
		Source:      parts[1].buf,
	}
	out := strings.TrimSpace(string(parts[2].buf))
	if m := reErrorOutput.FindStringSubmatch(out); m != nil {
		tc.Error = m[1]
		return tc, nil
	}

	tp := &treeParser{
		lineOffset: parts[0].lineCount + parts[1].lineCount + 2,
		isTerminal: isTerminal,
	}
	tree, err := tp.parseTree(parts[2].buf)
	if err != nil {
		return nil, err
	}
	tc.Output = tree
	return tc, nil
}

type testCasePart struct {
	buf       []byte
	lineCount int
}

func splitIntoParts(r io.Reader) ([]*testCasePart, error) {
	var bufs []*testCasePart
	s := bufio.NewScanner(r)
	for {
		buf, lineCount, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			break
		}
		bufs = append(bufs, &testCasePart{
			buf:       buf,
			lineCount: lineCount,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return bufs, nil
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

func readPart(s *bufio.Scanner) ([]byte, int, error) {
	if !s.Scan() {
		return nil, 0, s.Err()
	}
	buf := &bytes.Buffer{}
	line := s.Bytes()
	if reDelim.Match(line) {
		// Return an empty slice because (*bytes.Buffer).Bytes() returns nil if we have never written data.
		return []byte{}, 0, nil
	}
	_, err := buf.Write(line)
	if err != nil {
		return nil, 0, err
	}
	lineCount := 1
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return buf.Bytes(), lineCount, nil
		}
		_, err := buf.Write([]byte("\n"))
		if err != nil {
			return nil, 0, err
		}
		_, err = buf.Write(line)
		if err != nil {
			return nil, 0, err
		}
		lineCount++
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), lineCount, nil
}

type treeLine struct {
	row    int
	fields []string
	ty     string
}

type treeParser struct {
	lineOffset int
	isTerminal func(sym string) bool
	lines      []*treeLine
	pos        int
}

// parseTree reads a tree written in preorder, one node per line. An interior node has as many
// children as its RHS has symbols.
func (tp *treeParser) parseTree(src []byte) (*Tree, error) {
	for i, l := range strings.Split(string(src), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		var ty string
		if j := strings.LastIndex(l, " : "); j >= 0 {
			ty = strings.TrimSpace(l[j+3:])
			l = l[:j]
		}
		tp.lines = append(tp.lines, &treeLine{
			row:    tp.lineOffset + i + 1,
			fields: strings.Fields(l),
			ty:     ty,
		})
	}
	if len(tp.lines) == 0 {
		return nil, fmt.Errorf("%v: a tree is missing", tp.lineOffset+1)
	}

	t, err := tp.parseNode()
	if err != nil {
		return nil, err
	}
	if tp.pos < len(tp.lines) {
		return nil, fmt.Errorf("%v: a line after the end of the tree", tp.lines[tp.pos].row)
	}
	return t.Fill(), nil
}

func (tp *treeParser) parseNode() (*Tree, error) {
	if tp.pos >= len(tp.lines) {
		row := tp.lines[len(tp.lines)-1].row
		return nil, fmt.Errorf("%v: the tree ends before all nodes have their children", row)
	}
	l := tp.lines[tp.pos]
	tp.pos++

	label := strings.Join(l.fields, " ")
	if label == Wildcard {
		return NewTree(label), nil
	}

	var arity int
	switch {
	case tp.isTerminal(l.fields[0]):
		if len(l.fields) != 2 {
			return nil, fmt.Errorf("%v: a leaf needs a kind and a lexeme: %v", l.row, label)
		}
	case len(l.fields) == 2 && l.fields[1] == spec.EmptySymbol:
	default:
		arity = len(l.fields) - 1
		if arity == 0 {
			return nil, fmt.Errorf("%v: an interior node needs an RHS: %v", l.row, label)
		}
	}

	var children []*Tree
	for i := 0; i < arity; i++ {
		c, err := tp.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return NewTree(label, children...).Typed(l.ty), nil
}
