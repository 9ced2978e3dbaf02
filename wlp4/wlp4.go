package wlp4

import (
	"bytes"
	_ "embed"
	"errors"
	"io"

	"github.com/nihei9/wlp4/driver"
	verr "github.com/nihei9/wlp4/error"
	"github.com/nihei9/wlp4/grammar"
	"github.com/nihei9/wlp4/lexical"
	"github.com/nihei9/wlp4/lexical/dfa"
	"github.com/nihei9/wlp4/semantic"
)

//go:embed wlp4.dfa
var dfaSrc []byte

//go:embed wlp4.cfg
var cfgSrc []byte

// Names the embedded texts are reported under.
const (
	DFASourceName = "wlp4.dfa"
	CFGSourceName = "wlp4.cfg"
)

const (
	KindBOF = "BOF"
	KindEOF = "EOF"
	KindID  = "ID"
	KindNUM = "NUM"
)

// MaxNUM is the largest value of a decimal literal.
const MaxNUM = 2147483647

// partialKeywordStates are the states the automaton reaches midway through a keyword. A lexeme
// accepted in one of them is an identifier.
var partialKeywordStates = []string{
	"d", "de", "del", "dele", "delet",
	"e", "el", "els",
	"i", "in",
	"n", "ne",
	"p", "pr", "pri", "prin", "print", "printl",
	"r", "re", "ret", "retu", "retur",
	"w", "wa", "wai",
	"wh", "whi", "whil",
	"N", "NU", "NUL",
}

// DFA returns the embedded automaton text.
func DFA() io.Reader {
	return bytes.NewReader(dfaSrc)
}

// CFG returns the embedded grammar text.
func CFG() io.Reader {
	return bytes.NewReader(cfgSrc)
}

// TokenizerOptions returns the rules turning the states of the WLP4 automaton into tokens.
func TokenizerOptions() []lexical.Option {
	return []lexical.Option{
		lexical.Kind(KindNUM, "NUM0", "ZERO", "NUM"),
		lexical.Validate("NUM0", lexical.IntRange(0, MaxNUM)),
		lexical.Validate("NUM", lexical.IntRange(0, MaxNUM)),
		lexical.Reject(lexical.ErrLeadingZeros, "lead"),
		lexical.Reclassify(KindID, partialKeywordStates...),
		lexical.SkipPrefix("?"),
	}
}

type FrontendOption func(f *frontendConfig) error

type frontendConfig struct {
	shift  io.Reader
	reduce io.Reader
}

// Tables makes the front end read its parsing table from a shift table and a reduce table instead
// of generating it from the grammar.
func Tables(shift, reduce io.Reader) FrontendOption {
	return func(f *frontendConfig) error {
		f.shift = shift
		f.reduce = reduce
		return nil
	}
}

// Frontend tokenizes, parses, and type-checks WLP4 programs. A Frontend holds no state across
// calls.
type Frontend struct {
	dfa       *dfa.DFA
	tokenizer *lexical.Tokenizer
	gram      *grammar.Grammar
	tab       *grammar.ParsingTable
}

func NewFrontend(opts ...FrontendOption) (*Frontend, error) {
	config := &frontendConfig{}
	for _, opt := range opts {
		err := opt(config)
		if err != nil {
			return nil, err
		}
	}

	d, err := dfa.Build(DFA())
	if err != nil {
		return nil, withSourceName(err, DFASourceName)
	}
	tokenizer, err := lexical.NewTokenizer(d, TokenizerOptions()...)
	if err != nil {
		return nil, withSourceName(err, DFASourceName)
	}

	gram, err := grammar.ReadGrammar(CFG())
	if err != nil {
		return nil, withSourceName(err, CFGSourceName)
	}

	var tab *grammar.ParsingTable
	if config.shift != nil && config.reduce != nil {
		tab, err = grammar.ReadParsingTable(config.shift, config.reduce)
	} else {
		tab, err = grammar.GenSLR1Table(gram)
	}
	if err != nil {
		return nil, err
	}

	return &Frontend{
		dfa:       d,
		tokenizer: tokenizer,
		gram:      gram,
		tab:       tab,
	}, nil
}

func withSourceName(err error, name string) error {
	var specErr *verr.SpecError
	if errors.As(err, &specErr) && specErr.SourceName == "" {
		specErr.SourceName = name
	}
	return err
}

// Automaton returns the DFA the tokenizer runs.
func (f *Frontend) Automaton() *dfa.DFA {
	return f.dfa
}

func (f *Frontend) Grammar() *grammar.Grammar {
	return f.gram
}

func (f *Frontend) ParsingTable() *grammar.ParsingTable {
	return f.tab
}

// Tokenize returns the tokens of a program. White spaces and comments are left out.
func (f *Frontend) Tokenize(src []byte) ([]*lexical.Token, error) {
	return f.tokenizer.Tokenize(src)
}

// Parse returns the syntax tree of a program. The tokens are enclosed in BOF and EOF tokens, which
// the start rule expects. Additional semantic action sets observe the parse.
func (f *Frontend) Parse(src []byte, semAct ...driver.SemanticActionSet) (*driver.Node, error) {
	toks, err := f.Tokenize(src)
	if err != nil {
		return nil, err
	}

	bracketed := make([]*lexical.Token, 0, len(toks)+2)
	bracketed = append(bracketed, lexical.NewToken(KindBOF, KindBOF))
	bracketed = append(bracketed, toks...)
	eof := lexical.NewToken(KindEOF, KindEOF)
	if len(toks) > 0 {
		last := toks[len(toks)-1]
		eof.Row = last.Row
		eof.Col = last.Col + len(last.Lexeme)
	}
	bracketed = append(bracketed, eof)

	treeAct := driver.NewSyntaxTreeActionSet()
	acts := make([]driver.SemanticActionSet, 0, len(semAct)+1)
	acts = append(acts, semAct...)
	acts = append(acts, treeAct)
	p, err := driver.NewParser(driver.NewTokenStream(bracketed), f.gram, f.tab, driver.SemanticAction(acts...))
	if err != nil {
		return nil, err
	}
	err = p.Parse()
	if err != nil {
		return nil, err
	}
	return treeAct.Tree(), nil
}

// Check returns the syntax tree of a well-typed program. The expression nodes of the tree are
// annotated with their types.
func (f *Frontend) Check(src []byte, semAct ...driver.SemanticActionSet) (*driver.Node, *semantic.ProcedureTable, error) {
	tree, err := f.Parse(src, semAct...)
	if err != nil {
		return nil, nil, err
	}
	procs, err := semantic.Check(tree)
	if err != nil {
		return nil, nil, err
	}
	return tree, procs, nil
}
