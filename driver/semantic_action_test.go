package driver

import (
	"strings"
	"testing"

	"github.com/nihei9/wlp4/lexical"
	"github.com/stretchr/testify/assert"
)

func genTestTree() *Node {
	id := NewLeaf(&lexical.Token{Kind: "ID", Lexeme: "a", Row: 1, Col: 5})
	factor := NewNode("factor", []string{"ID"}, []*Node{id})
	factor.Type = "int"
	return NewNode("expr", []string{"factor", "params"}, []*Node{
		factor,
		NewNode("params", []string{}, nil),
	})
}

func TestPrintTree(t *testing.T) {
	tree := genTestTree()

	var b strings.Builder
	PrintTree(&b, tree, false)
	assert.Equal(t, `expr factor params
factor ID
ID a
params .EMPTY
`, b.String())

	b.Reset()
	PrintTree(&b, tree, true)
	assert.Equal(t, `expr factor params
factor ID : int
ID a
params .EMPTY
`, b.String())
}

func TestPrintRuledTree(t *testing.T) {
	var b strings.Builder
	PrintRuledTree(&b, genTestTree())
	assert.Equal(t, `expr
├─ factor : int
│  └─ ID "a"
└─ params
`, b.String())
}

func TestNode(t *testing.T) {
	tree := genTestTree()
	assert.True(t, tree.Is("expr", "factor", "params"))
	assert.False(t, tree.Is("expr", "factor"))
	assert.False(t, tree.Is("term", "factor", "params"))

	assert.Equal(t, 1, tree.Row)
	assert.Equal(t, 5, tree.Col)

	factor, ok := tree.Child("factor")
	assert.True(t, ok)
	assert.False(t, factor.IsLeaf())
	id, ok := factor.Child("ID")
	assert.True(t, ok)
	assert.True(t, id.IsLeaf())
	assert.False(t, id.Is("ID"))
	_, ok = tree.Child("ID")
	assert.False(t, ok)

	params, _ := tree.Child("params")
	assert.True(t, params.Is("params"))
}
