package spec

import (
	"fmt"
	"io"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
	verr "github.com/nihei9/wlp4/error"
)

// All three configuration formats are line oriented: a line is a sequence of words separated by
// white spaces, and blank lines carry no meaning.
const (
	kindNewline    = "newline"
	kindWhiteSpace = "white_space"
	kindWord       = "word"
)

var (
	lexSpecOnce sync.Once
	lexSpec     *mlspec.CompiledLexSpec
	lexSpecErr  error
)

func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	lexSpecOnce.Do(func() {
		src := &mlspec.LexSpec{
			Name: "wlp4_config",
			Entries: []*mlspec.LexEntry{
				{
					Kind:    mlspec.LexKindName(kindNewline),
					Pattern: mlspec.LexPattern(`\u{000D}\u{000A}|\u{000A}|\u{000D}`),
				},
				{
					Kind:    mlspec.LexKindName(kindWhiteSpace),
					Pattern: mlspec.LexPattern(`[\u{0009}\u{000B}\u{000C}\u{0020}]+`),
				},
				{
					Kind:    mlspec.LexKindName(kindWord),
					Pattern: mlspec.LexPattern(`[^\u{0009}\u{000A}\u{000B}\u{000C}\u{000D}\u{0020}]+`),
				},
			},
		}

		var cErrs []*mlcompiler.CompileError
		lexSpec, lexSpecErr, cErrs = mlcompiler.Compile(src, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if lexSpecErr != nil && len(cErrs) > 0 {
			lexSpecErr = fmt.Errorf("%v: %v", cErrs[0].Kind, cErrs[0].Cause)
		}
	})
	return lexSpec, lexSpecErr
}

type line struct {
	row   int
	words []string
}

func (l *line) is(marker string) bool {
	return len(l.words) == 1 && l.words[0] == marker
}

// readLines splits src into non-blank lines of words. Rows are 1-based.
func readLines(src io.Reader) ([]*line, error) {
	s, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}

	var lines []*line
	var cur *line
	for {
		tok, err := d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			break
		}
		if tok.Invalid {
			return nil, &verr.SpecError{
				Cause:  synErrInvalidChar,
				Detail: Unescape(string(tok.Lexeme)),
				Row:    tok.Row + 1,
			}
		}

		switch s.KindNames[tok.KindID].String() {
		case kindNewline:
			cur = nil
		case kindWord:
			if cur == nil {
				cur = &line{
					row: tok.Row + 1,
				}
				lines = append(lines, cur)
			}
			cur.words = append(cur.words, string(tok.Lexeme))
		}
	}

	return lines, nil
}
