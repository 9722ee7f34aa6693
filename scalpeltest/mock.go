package scalpeltest

import "github.com/scalpelhq/scalpel"

var _ scalpel.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of scalpel.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(html string) ([]scalpel.HtmlToken, error)
}

func (t *Tokenizer) Tokenize(html string) ([]scalpel.HtmlToken, error) {
	return t.TokenizeFn(html)
}
