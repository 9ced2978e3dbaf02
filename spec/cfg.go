package spec

import (
	"io"

	verr "github.com/nihei9/wlp4/error"
)

const (
	markerCFG         = ".CFG"
	markerEmptySymbol = ".EMPTY"
)

// RuleDecl is a production rule. An empty RHS denotes an epsilon production.
type RuleDecl struct {
	LHS string
	RHS []string
	Row int
}

type CFGSpec struct {
	Rules []*RuleDecl
}

// ParseCFG reads one rule per line. The first word of a line is the LHS and the remaining words are
// the RHS. The .EMPTY symbol is dropped, so `params .EMPTY` yields a rule with an empty RHS.
// A leading .CFG header line is skipped.
func ParseCFG(src io.Reader) (*CFGSpec, error) {
	lines, err := readLines(src)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 && lines[0].is(markerCFG) {
		lines = lines[1:]
	}

	s := &CFGSpec{}
	for _, l := range lines {
		if l.words[0] == markerEmptySymbol {
			return nil, &verr.SpecError{
				Cause: synErrNoLHS,
				Row:   l.row,
			}
		}
		r := &RuleDecl{
			LHS: l.words[0],
			RHS: []string{},
			Row: l.row,
		}
		for _, w := range l.words[1:] {
			if w == markerEmptySymbol {
				continue
			}
			r.RHS = append(r.RHS, w)
		}
		s.Rules = append(s.Rules, r)
	}

	return s, nil
}
