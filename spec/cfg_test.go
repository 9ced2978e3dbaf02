package spec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCFG(t *testing.T) {
	src := `.CFG
start BOF expr EOF
expr expr PLUS term

params .EMPTY
term   ID
`
	s, err := ParseCFG(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []*RuleDecl{
		{LHS: "start", RHS: []string{"BOF", "expr", "EOF"}, Row: 2},
		{LHS: "expr", RHS: []string{"expr", "PLUS", "term"}, Row: 3},
		{LHS: "params", RHS: []string{}, Row: 5},
		{LHS: "term", RHS: []string{"ID"}, Row: 6},
	}, s.Rules)
}

func TestParseCFG_WithoutHeader(t *testing.T) {
	s, err := ParseCFG(strings.NewReader("s a b\n"))
	require.NoError(t, err)
	require.Len(t, s.Rules, 1)
	assert.Equal(t, "s", s.Rules[0].LHS)
}

func TestParseCFG_NoLHS(t *testing.T) {
	_, err := ParseCFG(strings.NewReader(".CFG\n.EMPTY a\n"))
	assert.ErrorIs(t, err, synErrNoLHS)
}

func TestParseShiftTable(t *testing.T) {
	src := `.TRANSITIONS
0 BOF 1
1 expr 2
`
	decls, err := ParseShiftTable(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []*ShiftDecl{
		{State: 0, Symbol: "BOF", NextState: 1, Row: 2},
		{State: 1, Symbol: "expr", NextState: 2, Row: 3},
	}, decls)
}

func TestParseReduceTable(t *testing.T) {
	src := `.REDUCTIONS
3 4 EOF
3 4 PLUS
`
	decls, err := ParseReduceTable(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []*ReduceDecl{
		{State: 3, Rule: 4, Lookahead: "EOF", Row: 2},
		{State: 3, Rule: 4, Lookahead: "PLUS", Row: 3},
	}, decls)
}

func TestParseTable_Error(t *testing.T) {
	tests := []struct {
		caption string
		parse   func(string) error
		src     string
		cause   error
	}{
		{
			caption: "a shift entry needs three fields",
			parse:   parseShift,
			src:     "0 BOF\n",
			cause:   synErrInvalidTableLine,
		},
		{
			caption: "a shift entry needs a numeric source state",
			parse:   parseShift,
			src:     "x BOF 1\n",
			cause:   synErrInvalidStateNum,
		},
		{
			caption: "a shift entry needs a non-negative destination state",
			parse:   parseShift,
			src:     "0 BOF -1\n",
			cause:   synErrInvalidStateNum,
		},
		{
			caption: "a reduce entry needs a numeric rule",
			parse:   parseReduce,
			src:     "0 r EOF\n",
			cause:   synErrInvalidRuleNum,
		},
		{
			caption: "a reduce entry needs three fields",
			parse:   parseReduce,
			src:     "0 1 EOF extra\n",
			cause:   synErrInvalidTableLine,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			assert.ErrorIs(t, tt.parse(tt.src), tt.cause)
		})
	}
}

func parseShift(src string) error {
	_, err := ParseShiftTable(strings.NewReader(src))
	return err
}

func parseReduce(src string) error {
	_, err := ParseReduceTable(strings.NewReader(src))
	return err
}
