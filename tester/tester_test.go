package tester

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tspec "github.com/nihei9/wlp4/spec/test"
	"github.com/nihei9/wlp4/wlp4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeTest = `
Test
---
int wain(int a, int b) { return a; }
---
start BOF procedures EOF
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
ID a
SEMI ;
RBRACE }
EOF EOF
`

func TestTester_Run(t *testing.T) {
	tests := []struct {
		caption string
		testSrc string
		error   bool
	}{
		{
			caption: "a tree",
			testSrc: treeTest,
		},
		{
			caption: "a typed tree",
			testSrc: `
Test
---
int wain(int a, int b) { return a; }
---
start BOF procedures EOF
BOF BOF
procedures main
main INT WAIN LPAREN dcl COMMA dcl RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
_
_
_
_
_
_
_
_
_
_
_
expr term : int
term factor : int
factor ID : int
ID a
SEMI ;
RBRACE }
EOF EOF
`,
		},
		{
			caption: "a wrong type",
			testSrc: `
Test
---
int wain(int a, int b) { return a; }
---
start BOF procedures EOF
BOF BOF
procedures main
main INT WAIN LPAREN dcl COMMA dcl RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
_
_
_
_
_
_
_
_
_
_
_
expr term : int*
_
SEMI ;
RBRACE }
EOF EOF
`,
			error: true,
		},
		{
			caption: "a wrong lexeme",
			testSrc: strings.Replace(treeTest, "ID b", "ID c", 1),
			error:   true,
		},
		{
			caption: "an expected lexical error",
			testSrc: `
Test
---
int wain(int a, int b) { return 007; }
---
error: lexical
`,
		},
		{
			caption: "an expected syntax error",
			testSrc: `
Test
---
int wain(int a, int b) { return a }
---
error: syntax
`,
		},
		{
			caption: "an expected semantic error",
			testSrc: `
Test
---
int wain(int a, int b) { return c; }
---
error: semantic
`,
		},
		{
			caption: "an error of another category",
			testSrc: `
Test
---
int wain(int a, int b) { return c; }
---
error: syntax
`,
			error: true,
		},
		{
			caption: "a valid program expected to fail",
			testSrc: `
Test
---
int wain(int a, int b) { return a; }
---
error: semantic
`,
			error: true,
		},
		{
			caption: "an unexpected error",
			testSrc: `
Test
---
int wain(int a, int b) { return a }
---
_
`,
			error: true,
		},
	}
	f, err := wlp4.NewFrontend()
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			c, err := tspec.ParseTestCase(strings.NewReader(tt.testSrc), f.Grammar().IsTerminal)
			require.NoError(t, err)
			tester := &Tester{
				Frontend: f,
				Cases: []*TestCaseWithMetadata{
					{
						TestCase: c,
					},
				},
			}
			rs := tester.Run()
			require.Len(t, rs, 1)
			if tt.error {
				assert.Error(t, rs[0].Error, "this test must fail, but it passed")
				return
			}
			assert.NoError(t, rs[0].Error)
		})
	}
}

func TestListTestCases(t *testing.T) {
	f, err := wlp4.NewFrontend()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.txt"), []byte(treeTest), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.txt"), []byte("Test\n---\nx\n"), 0644))

	cs := ListTestCases(dir, f.Grammar().IsTerminal)
	require.Len(t, cs, 2)
	// os.ReadDir sorts the entries by name.
	assert.Equal(t, filepath.Join(dir, "broken.txt"), cs[0].FilePath)
	assert.Error(t, cs[0].Error)
	assert.Equal(t, filepath.Join(dir, "ok.txt"), cs[1].FilePath)
	assert.NoError(t, cs[1].Error)

	rs := (&Tester{Frontend: f, Cases: cs}).Run()
	require.Len(t, rs, 2)
	assert.True(t, strings.HasPrefix(rs[0].String(), "Failed "))
	assert.Equal(t, "Passed "+filepath.Join(dir, "ok.txt"), rs[1].String())

	missing := ListTestCases(filepath.Join(dir, "missing"), f.Grammar().IsTerminal)
	require.Len(t, missing, 1)
	assert.Error(t, missing[0].Error)
}
