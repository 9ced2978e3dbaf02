package lexical

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nihei9/wlp4/spec"
)

// Token is a lexeme paired with the name of its kind. Kind names are the terminal symbols of a
// grammar.
type Token struct {
	Kind   string
	Lexeme string

	// Row and Col locate the first character of the lexeme. Both are 1-based, and Col is counted in
	// bytes.
	Row int
	Col int
}

func NewToken(kind, lexeme string) *Token {
	return &Token{
		Kind:   kind,
		Lexeme: lexeme,
	}
}

func (t *Token) String() string {
	return fmt.Sprintf("%v %v", t.Kind, t.Lexeme)
}

// Validator examines an accepted lexeme before the tokenizer emits it.
type Validator func(lexeme string) error

// IntRange returns a validator accepting decimal literals between min and max inclusive. A leading
// minus sign is allowed.
func IntRange(min, max int64) Validator {
	return func(lexeme string) error {
		v, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil || v < min || v > max {
			return lexErrOutOfRange
		}
		return nil
	}
}

// HexRange returns a validator accepting hexadecimal literals prefixed with 0x or 0X whose value is
// max or less.
func HexRange(max uint64) Validator {
	return func(lexeme string) error {
		digits := strings.TrimPrefix(strings.TrimPrefix(lexeme, "0x"), "0X")
		v, err := strconv.ParseUint(digits, 16, 64)
		if err != nil || v > max {
			return lexErrOutOfRange
		}
		return nil
	}
}

// Print writes tokens one per line in the `KIND lexeme` form. Non-graphic characters in lexemes are
// escaped.
func Print(w io.Writer, toks []*Token) {
	for _, tok := range toks {
		fmt.Fprintf(w, "%v %v\n", tok.Kind, spec.Unescape(tok.Lexeme))
	}
}
