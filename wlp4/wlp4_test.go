package wlp4

import (
	"strings"
	"testing"

	"github.com/nihei9/wlp4/driver"
	verr "github.com/nihei9/wlp4/error"
	"github.com/nihei9/wlp4/lexical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFrontend(t *testing.T, opts ...FrontendOption) *Frontend {
	t.Helper()

	f, err := NewFrontend(opts...)
	require.NoError(t, err)
	return f
}

func TestFrontend_Tokenize(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		tokens  []string
	}{
		{
			caption: "a decimal literal",
			src:     "12",
			tokens:  []string{"NUM 12"},
		},
		{
			caption: "zero is a decimal literal",
			src:     "0",
			tokens:  []string{"NUM 0"},
		},
		{
			caption: "the largest decimal literal",
			src:     "2147483647",
			tokens:  []string{"NUM 2147483647"},
		},
		{
			caption: "keywords",
			src:     "int wain if else while println return new delete NULL",
			tokens: []string{
				"INT int", "WAIN wain", "IF if", "ELSE else", "WHILE while", "PRINTLN println",
				"RETURN return", "NEW new", "DELETE delete", "NULL NULL",
			},
		},
		{
			caption: "prefixes of keywords are identifiers",
			src:     "i in w wai whil printl retur ne delet NUL e els",
			tokens: []string{
				"ID i", "ID in", "ID w", "ID wai", "ID whil", "ID printl", "ID retur", "ID ne",
				"ID delet", "ID NUL", "ID e", "ID els",
			},
		},
		{
			caption: "keywords followed by more characters are identifiers",
			src:     "iff intx wains newer NULLS deleted",
			tokens:  []string{"ID iff", "ID intx", "ID wains", "ID newer", "ID NULLS", "ID deleted"},
		},
		{
			caption: "operators take the longest match",
			src:     "a<=b==c!=d>=e<f>g=h",
			tokens: []string{
				"ID a", "LE <=", "ID b", "EQ ==", "ID c", "NE !=", "ID d", "GE >=", "ID e",
				"LT <", "ID f", "GT >", "ID g", "BECOMES =", "ID h",
			},
		},
		{
			caption: "punctuation",
			src:     "(){}[],;+-*/%&",
			tokens: []string{
				"LPAREN (", "RPAREN )", "LBRACE {", "RBRACE }", "LBRACK [", "RBRACK ]", "COMMA ,",
				"SEMI ;", "PLUS +", "MINUS -", "STAR *", "SLASH /", "PCT %", "AMP &",
			},
		},
		{
			caption: "white spaces and comments are skipped",
			src:     "a // comment\n\tb/c //",
			tokens:  []string{"ID a", "ID b", "SLASH /", "ID c"},
		},
		{
			caption: "a number followed by letters splits into two tokens",
			src:     "12ab",
			tokens:  []string{"NUM 12", "ID ab"},
		},
	}
	f := newTestFrontend(t)
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			toks, err := f.Tokenize([]byte(tt.src))
			require.NoError(t, err)
			var got []string
			for _, tok := range toks {
				got = append(got, tok.String())
			}
			assert.Equal(t, tt.tokens, got)
		})
	}
}

func TestFrontend_Tokenize_Error(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cause   error
	}{
		{
			caption: "leading zeroes are not allowed",
			src:     "007",
			cause:   lexical.ErrLeadingZeros,
		},
		{
			caption: "a decimal literal must be less than 2^31",
			src:     "x = 2147483648;",
			cause:   lexical.ErrOutOfRange,
		},
		{
			caption: "! must be followed by =",
			src:     "a ! b",
			cause:   lexical.ErrInvalidSequence,
		},
		{
			caption: "an unknown character",
			src:     "a @ b",
			cause:   lexical.ErrInvalidSequence,
		},
	}
	f := newTestFrontend(t)
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := f.Tokenize([]byte(tt.src))
			require.ErrorIs(t, err, tt.cause)
			assert.Equal(t, verr.CategoryLexical, verr.CategoryOf(err))
		})
	}
}

const trivialProgram = `int wain(int a, int b) {
	return b;
}
`

const trivialTree = `start BOF procedures EOF
BOF BOF
procedures main
main INT WAIN LPAREN dcl COMMA dcl RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
INT int
WAIN wain
LPAREN (
dcl type ID
type INT
INT int
ID a
COMMA ,
dcl type ID
type INT
INT int
ID b
RPAREN )
LBRACE {
dcls .EMPTY
statements .EMPTY
RETURN return
expr term
term factor
factor ID
ID b
SEMI ;
RBRACE }
EOF EOF
`

func TestFrontend_Parse(t *testing.T) {
	f := newTestFrontend(t)
	tree, err := f.Parse([]byte(trivialProgram))
	require.NoError(t, err)

	var b strings.Builder
	driver.PrintTree(&b, tree, false)
	assert.Equal(t, trivialTree, b.String())
}

func TestFrontend_Parse_Error(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cause   error
		row     int
		col     int
	}{
		{
			caption: "a missing semicolon",
			src:     "int wain(int a, int b) {\n\treturn b\n}\n",
			cause:   driver.ErrUnexpectedToken,
			row:     3,
			col:     1,
		},
		{
			caption: "an empty program",
			src:     "",
			cause:   driver.ErrUnexpectedToken,
		},
		{
			caption: "statements cannot precede declarations",
			src:     "int wain(int a, int b) { a = b; int c = 0; return c; }",
			cause:   driver.ErrUnexpectedToken,
			row:     1,
			col:     33,
		},
	}
	f := newTestFrontend(t)
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := f.Parse([]byte(tt.src))
			require.ErrorIs(t, err, tt.cause)
			var pErr *verr.Error
			require.ErrorAs(t, err, &pErr)
			assert.Equal(t, verr.CategorySyntax, pErr.Category)
			assert.Equal(t, tt.row, pErr.Row)
			assert.Equal(t, tt.col, pErr.Col)
		})
	}
}

func TestFrontend_Check(t *testing.T) {
	f := newTestFrontend(t)
	tree, procs, err := f.Check([]byte(trivialProgram))
	require.NoError(t, err)
	require.Len(t, procs.Procedures(), 1)

	var b strings.Builder
	driver.PrintTree(&b, tree, true)
	expected := strings.NewReplacer(
		"expr term\n", "expr term : int\n",
		"term factor\n", "term factor : int\n",
		"factor ID\n", "factor ID : int\n",
	).Replace(trivialTree)
	assert.Equal(t, expected, b.String())
}

func TestGeneratedTable(t *testing.T) {
	f := newTestFrontend(t)

	var shift, reduce strings.Builder
	require.NoError(t, f.ParsingTable().Write(&shift, &reduce))

	// A front end reading the written table behaves the same as the generating one.
	g := newTestFrontend(t, Tables(strings.NewReader(shift.String()), strings.NewReader(reduce.String())))
	assert.Equal(t, f.ParsingTable(), g.ParsingTable())
	tree, err := g.Parse([]byte(trivialProgram))
	require.NoError(t, err)
	var b strings.Builder
	driver.PrintTree(&b, tree, false)
	assert.Equal(t, trivialTree, b.String())
}

func TestFrontend_Parse_Trace(t *testing.T) {
	f := newTestFrontend(t)
	var b strings.Builder
	_, err := f.Parse([]byte(trivialProgram), driver.NewTraceActionSet(&b))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	assert.Equal(t, "shift BOF BOF", lines[0])
	assert.Equal(t, "reduce 0: start BOF procedures EOF", lines[len(lines)-2])
	assert.Equal(t, "accept", lines[len(lines)-1])
}

func TestFrontend_Sizes(t *testing.T) {
	f := newTestFrontend(t)

	assert.Equal(t, 72, f.Automaton().StateCount())
	assert.Len(t, f.Grammar().Rules, 49)

	terms := f.Grammar().Terminals()
	assert.Subset(t, terms, []string{"BOF", "EOF", "ID", "NUM", "WAIN", "PRINTLN"})
	assert.NotContains(t, terms, "expr")
	assert.Greater(t, f.ParsingTable().StateCount(), 0)
}
