package spec

import (
	"strings"
	"testing"

	verr "github.com/nihei9/wlp4/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDFA(t *testing.T) {
	src := `

.STATES
start
ID! NUM!
?WS!
.TRANSITIONS
start a-c ID
ID    a-c 0-2 ID
start \s \t  ?WS
?WS \s ?WS
start \x30 NUM
.INPUT
this part is ignored
`
	s, err := ParseDFA(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []*StateDecl{
		{Name: "start", Accepting: false, Row: 4},
		{Name: "ID", Accepting: true, Row: 5},
		{Name: "NUM", Accepting: true, Row: 5},
		{Name: "?WS", Accepting: true, Row: 6},
	}, s.States)
	assert.Equal(t, []*TransitionDecl{
		{From: "start", Chars: []byte("abc"), To: "ID", Row: 8},
		{From: "ID", Chars: []byte("abc012"), To: "ID", Row: 9},
		{From: "start", Chars: []byte(" \t"), To: "?WS", Row: 10},
		{From: "?WS", Chars: []byte(" "), To: "?WS", Row: 11},
		{From: "start", Chars: []byte("0"), To: "NUM", Row: 12},
	}, s.Transitions)
}

func TestParseDFA_Error(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cause   error
		row     int
	}{
		{
			caption: "an empty text has no .STATES section",
			src:     ``,
			cause:   synErrNoStatesSection,
		},
		{
			caption: "the .STATES marker must come first",
			src:     "start\n.STATES\n",
			cause:   synErrNoStatesSection,
			row:     1,
		},
		{
			caption: "the .TRANSITIONS marker must follow the states",
			src:     ".STATES\nstart\nA!\n",
			cause:   synErrNoTransitionsSection,
		},
		{
			caption: "an automaton needs at least one state",
			src:     ".STATES\n.TRANSITIONS\n",
			cause:   synErrNoState,
		},
		{
			caption: "a state cannot be declared twice",
			src:     ".STATES\nstart\nA!\nA\n.TRANSITIONS\n",
			cause:   synErrDuplicateState,
			row:     4,
		},
		{
			caption: "a transition line needs three fields",
			src:     ".STATES\nstart\nA!\n.TRANSITIONS\nstart A\n",
			cause:   synErrIncompleteTransition,
			row:     5,
		},
		{
			caption: "a character must be a single character or a range",
			src:     ".STATES\nstart\nA!\n.TRANSITIONS\nstart ab A\n",
			cause:   synErrInvalidCharOrRange,
			row:     5,
		},
		{
			caption: "a character must be in ASCII range",
			src:     ".STATES\nstart\nA!\n.TRANSITIONS\nstart é A\n",
			cause:   synErrInvalidCharOrRange,
			row:     5,
		},
		{
			caption: "an escape sequence must be in ASCII range",
			src:     ".STATES\nstart\nA!\n.TRANSITIONS\nstart \\x9A A\n",
			cause:   synErrNonASCIIEscSeq,
			row:     5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := ParseDFA(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.cause)

			var specErr *verr.SpecError
			require.ErrorAs(t, err, &specErr)
			assert.Equal(t, tt.row, specErr.Row)
		})
	}
}
