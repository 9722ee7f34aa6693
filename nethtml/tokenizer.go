// Package nethtml adapts golang.org/x/net/html's streaming tokenizer
// to the scalpel.Tokenizer interface. Self-closing and void elements
// come through as a bare TagOpen, matching the contract that the
// tokenizer never emits a TagClose for them; pure-whitespace text runs
// are dropped, comments always survive.
package nethtml

import (
	"io"
	"strings"
	"unicode"

	"github.com/scalpelhq/scalpel"
	"golang.org/x/net/html"
)

// Tokenizer implements scalpel.Tokenizer using golang.org/x/net/html.
type Tokenizer struct{}

// New creates a Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize lexes html source into the scalpel.HtmlToken stream the
// annotator consumes.
func (t *Tokenizer) Tokenize(source string) ([]scalpel.HtmlToken, error) {
	z := html.NewTokenizer(strings.NewReader(source))
	var out []scalpel.HtmlToken

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != nil && err != io.EOF {
				return nil, scalpel.Errorf(scalpel.EINVALID, "tokenize html: %v", err)
			}
			return out, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			out = append(out, scalpel.NewTagOpen(tok.Data, convertAttrs(tok.Attr)))
		case html.EndTagToken:
			tok := z.Token()
			out = append(out, scalpel.NewTagClose(tok.Data))
		case html.TextToken:
			text := z.Token().Data
			if isAllWhitespace(text) {
				continue
			}
			out = append(out, scalpel.NewText(text))
		case html.CommentToken:
			out = append(out, scalpel.NewComment(z.Token().Data))
		case html.DoctypeToken:
			// Doctype carries no position in scalpel's model.
			continue
		}
	}
}

func convertAttrs(attrs []html.Attribute) []scalpel.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]scalpel.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = scalpel.Attribute{Key: a.Key, Value: a.Val}
	}
	return out
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
