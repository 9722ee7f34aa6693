package scalpel

import "strings"

// Scraper is a computation over a TagSpec that either produces a value
// or reports absence. It never panics and never returns an error —
// per spec, absence is the only negative result the core exposes.
type Scraper[A any] func(spec *TagSpec) (A, bool)

// Map transforms a successful Scraper's result. An absent result
// passes through unchanged.
func Map[A, B any](s Scraper[A], f func(A) B) Scraper[B] {
	return func(spec *TagSpec) (B, bool) {
		a, ok := s(spec)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a), true
	}
}

// Bind sequences a Scraper into one built from its result — the
// "plain function composition" this package uses in place of a Monad
// typeclass.
func Bind[A, B any](s Scraper[A], f func(A) Scraper[B]) Scraper[B] {
	return func(spec *TagSpec) (B, bool) {
		a, ok := s(spec)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a)(spec)
	}
}

// OrElse tries a first; if it reports absence, it tries b on the same
// spec. This is the Scraper-level alternative composition; at the
// SerialScraper level the same role is played by Seek.
func OrElse[A any](a, b Scraper[A]) Scraper[A] {
	return func(spec *TagSpec) (A, bool) {
		if v, ok := a(spec); ok {
			return v, true
		}
		return b(spec)
	}
}

// Matches succeeds with an empty struct iff Select(spec, sel) is
// non-empty.
func Matches(sel Selector) Scraper[struct{}] {
	return func(spec *TagSpec) (struct{}, bool) {
		if len(Select(spec, sel)) == 0 {
			return struct{}{}, false
		}
		return struct{}{}, true
	}
}

// Satisfies is an alias for Matches.
func Satisfies(sel Selector) Scraper[struct{}] {
	return Matches(sel)
}

// Root succeeds with an empty struct whenever spec's forest is
// non-empty — a convenient no-op inner for Chroots when the caller
// only wants to iterate or count matches.
func Root() Scraper[struct{}] {
	return func(spec *TagSpec) (struct{}, bool) {
		if len(spec.Hierarchy) == 0 {
			return struct{}{}, false
		}
		return struct{}{}, true
	}
}

// Chroot runs inner on the first spec Select(spec, sel) returns; fails
// when the selector matches nothing.
func Chroot[A any](sel Selector, inner Scraper[A]) Scraper[A] {
	return func(spec *TagSpec) (A, bool) {
		matches := Select(spec, sel)
		if len(matches) == 0 {
			var zero A
			return zero, false
		}
		return inner(matches[0])
	}
}

// Chroots runs inner on every spec Select(spec, sel) returns, in
// order, collecting the successful extractions. A selector match whose
// inner scraper reports absence is simply skipped — Chroots only fails
// the whole computation never; no matches or all-absent inner results
// both yield an empty (non-nil-failing) slice.
func Chroots[A any](sel Selector, inner Scraper[A]) Scraper[[]A] {
	return func(spec *TagSpec) ([]A, bool) {
		matches := Select(spec, sel)
		out := make([]A, 0, len(matches))
		for _, m := range matches {
			if v, ok := inner(m); ok {
				out = append(out, v)
			}
		}
		return out, true
	}
}

// Text concatenates the text content of every Text token in the first
// selected spec's token slice.
func Text(sel Selector) Scraper[string] {
	return func(spec *TagSpec) (string, bool) {
		matches := Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return textOf(matches[0]), true
	}
}

// Texts is Text, applied per selected spec.
func Texts(sel Selector) Scraper[[]string] {
	return func(spec *TagSpec) ([]string, bool) {
		matches := Select(spec, sel)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = textOf(m)
		}
		return out, true
	}
}

func textOf(spec *TagSpec) string {
	var b strings.Builder
	for _, t := range spec.Tags {
		if t.Token.Kind == TextToken {
			b.WriteString(t.Token.Text)
		}
	}
	return b.String()
}

// Attr returns the value of the first TagOpen's attribute whose key
// matches key case-insensitively, from the first selected spec.
func Attr(key string, sel Selector) Scraper[string] {
	return func(spec *TagSpec) (string, bool) {
		matches := Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return attrOf(key, matches[0])
	}
}

// Attrs is Attr, applied per selected spec. A selected spec whose
// first token is not a TagOpen, or which lacks the attribute, is
// omitted from the result.
func Attrs(key string, sel Selector) Scraper[[]string] {
	return func(spec *TagSpec) ([]string, bool) {
		matches := Select(spec, sel)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			if v, ok := attrOf(key, m); ok {
				out = append(out, v)
			}
		}
		return out, true
	}
}

func attrOf(key string, spec *TagSpec) (string, bool) {
	if len(spec.Tags) == 0 {
		return "", false
	}
	tok := spec.Tags[0].Token
	if tok.Kind != TagOpenToken {
		return "", false
	}
	for _, a := range tok.Attributes {
		if strings.EqualFold(a.Key, key) {
			return a.Value, true
		}
	}
	return "", false
}

// HTML returns the serialized HTML of the first selected spec's entire
// token slice.
func HTML(sel Selector) Scraper[string] {
	return func(spec *TagSpec) (string, bool) {
		matches := Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return renderTokens(matches[0].Tags), true
	}
}

// HTMLs is HTML, applied per selected spec.
func HTMLs(sel Selector) Scraper[[]string] {
	return func(spec *TagSpec) ([]string, bool) {
		matches := Select(spec, sel)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = renderTokens(m.Tags)
		}
		return out, true
	}
}

// InnerHTML is HTML, sliced to exclude the outermost opening and
// closing tokens ([1:len-1]). A slice shorter than two tokens yields
// the empty string.
func InnerHTML(sel Selector) Scraper[string] {
	return func(spec *TagSpec) (string, bool) {
		matches := Select(spec, sel)
		if len(matches) == 0 {
			return "", false
		}
		return renderInner(matches[0].Tags), true
	}
}

// InnerHTMLs is InnerHTML, applied per selected spec.
func InnerHTMLs(sel Selector) Scraper[[]string] {
	return func(spec *TagSpec) ([]string, bool) {
		matches := Select(spec, sel)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = renderInner(m.Tags)
		}
		return out, true
	}
}

func renderInner(tags []TagInfo) string {
	if len(tags) < 2 {
		return ""
	}
	return renderTokens(tags[1 : len(tags)-1])
}

// Position yields the spec's Context.Position — the ordinal assigned
// by the enclosing Chroots, or 0 otherwise.
func Position() Scraper[int] {
	return func(spec *TagSpec) (int, bool) {
		return spec.Context.Position, true
	}
}

// renderTokens serializes a token slice back to HTML: TagOpen as
// <name k="v" ...>, TagClose as </name>, Text verbatim, Comment as
// <!--...-->.
func renderTokens(tags []TagInfo) string {
	var b strings.Builder
	for _, t := range tags {
		renderToken(&b, t.Token)
	}
	return b.String()
}

func renderToken(b *strings.Builder, tok HtmlToken) {
	switch tok.Kind {
	case TagOpenToken:
		b.WriteByte('<')
		b.WriteString(tok.Name)
		for _, a := range tok.Attributes {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteByte('"')
		}
		b.WriteByte('>')
	case TagCloseToken:
		b.WriteString("</")
		b.WriteString(tok.Name)
		b.WriteByte('>')
	case TextToken:
		b.WriteString(tok.Text)
	case CommentToken:
		b.WriteString("<!--")
		b.WriteString(tok.Comment)
		b.WriteString("-->")
	}
}
