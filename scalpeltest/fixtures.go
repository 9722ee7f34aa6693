// Package scalpeltest collects fixture helpers shared by this
// codebase's table tests: terse token-stream builders and a mock
// Tokenizer.
package scalpeltest

import "github.com/scalpelhq/scalpel"

// Open builds a TagOpenToken, with attrs given as alternating
// key/value pairs for terseness in table tests.
func Open(name string, attrs ...string) scalpel.HtmlToken {
	return scalpel.NewTagOpen(name, Attrs(attrs...))
}

// Close builds a TagCloseToken.
func Close(name string) scalpel.HtmlToken {
	return scalpel.NewTagClose(name)
}

// Text builds a TextToken.
func Text(s string) scalpel.HtmlToken {
	return scalpel.NewText(s)
}

// Comment builds a CommentToken.
func Comment(s string) scalpel.HtmlToken {
	return scalpel.NewComment(s)
}

// Attrs pairs up alternating key/value strings into []scalpel.Attribute.
// An odd-length input panics: it is a fixture-authoring mistake, not a
// runtime condition this package needs to report gracefully.
func Attrs(kv ...string) []scalpel.Attribute {
	if len(kv)%2 != 0 {
		panic("scalpeltest: Attrs requires an even number of key/value strings")
	}
	if len(kv) == 0 {
		return nil
	}
	out := make([]scalpel.Attribute, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, scalpel.Attribute{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

// Spec annotates and forests tokens into a ready-to-query TagSpec, the
// common setup step for selector and scraper table tests.
func Spec(tokens ...scalpel.HtmlToken) *scalpel.TagSpec {
	return scalpel.NewTagSpec(scalpel.AnnotateTags(tokens))
}
