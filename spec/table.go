package spec

import (
	"io"
	"strconv"

	verr "github.com/nihei9/wlp4/error"
)

const markerReductions = ".REDUCTIONS"

// ShiftDecl is an entry `state symbol nextState` of a shift table. Entries whose symbol is a
// non-terminal are the goto entries used after reductions.
type ShiftDecl struct {
	State     int
	Symbol    string
	NextState int
	Row       int
}

// ReduceDecl is an entry `state rule lookahead` of a reduce table.
type ReduceDecl struct {
	State     int
	Rule      int
	Lookahead string
	Row       int
}

// ParseShiftTable reads shift entries. A leading .TRANSITIONS header line is skipped.
func ParseShiftTable(src io.Reader) ([]*ShiftDecl, error) {
	lines, err := readTableLines(src, markerTransitions)
	if err != nil {
		return nil, err
	}

	var decls []*ShiftDecl
	for _, l := range lines {
		from, err := parseTableNum(l, l.words[0], synErrInvalidStateNum)
		if err != nil {
			return nil, err
		}
		to, err := parseTableNum(l, l.words[2], synErrInvalidStateNum)
		if err != nil {
			return nil, err
		}
		decls = append(decls, &ShiftDecl{
			State:     from,
			Symbol:    l.words[1],
			NextState: to,
			Row:       l.row,
		})
	}
	return decls, nil
}

// ParseReduceTable reads reduce entries. A leading .REDUCTIONS header line is skipped.
func ParseReduceTable(src io.Reader) ([]*ReduceDecl, error) {
	lines, err := readTableLines(src, markerReductions)
	if err != nil {
		return nil, err
	}

	var decls []*ReduceDecl
	for _, l := range lines {
		state, err := parseTableNum(l, l.words[0], synErrInvalidStateNum)
		if err != nil {
			return nil, err
		}
		rule, err := parseTableNum(l, l.words[1], synErrInvalidRuleNum)
		if err != nil {
			return nil, err
		}
		decls = append(decls, &ReduceDecl{
			State:     state,
			Rule:      rule,
			Lookahead: l.words[2],
			Row:       l.row,
		})
	}
	return decls, nil
}

func readTableLines(src io.Reader, header string) ([]*line, error) {
	lines, err := readLines(src)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 && lines[0].is(header) {
		lines = lines[1:]
	}
	for _, l := range lines {
		if len(l.words) != 3 {
			return nil, &verr.SpecError{
				Cause: synErrInvalidTableLine,
				Row:   l.row,
			}
		}
	}
	return lines, nil
}

func parseTableNum(l *line, w string, cause error) (int, error) {
	n, err := strconv.Atoi(w)
	if err != nil || n < 0 {
		return 0, &verr.SpecError{
			Cause:  cause,
			Detail: w,
			Row:    l.row,
		}
	}
	return n, nil
}

// Markers written at the top of table texts.
const (
	ShiftTableHeader  = markerTransitions
	ReduceTableHeader = markerReductions
	CFGHeader         = markerCFG
	EmptySymbol       = markerEmptySymbol
)
