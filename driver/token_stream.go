package driver

import "github.com/nihei9/wlp4/lexical"

// TokenStream supplies the parser with tokens.
type TokenStream interface {
	// Next returns the next token. It returns nil when the stream is exhausted.
	Next() (*lexical.Token, error)
}

type tokenStream struct {
	toks []*lexical.Token
	pos  int
}

// NewTokenStream returns a stream over toks.
func NewTokenStream(toks []*lexical.Token) TokenStream {
	return &tokenStream{
		toks: toks,
	}
}

func (s *tokenStream) Next() (*lexical.Token, error) {
	if s.pos >= len(s.toks) {
		return nil, nil
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok, nil
}
