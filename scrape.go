package scalpel

// Scrape tokenizes source, annotates and forests it, and runs scraper
// against the resulting TagSpec. The Tokenizer error, if any,
// propagates directly; a successful tokenization propagates whatever
// Option<A> scraper produces.
func Scrape[A any](source string, tok Tokenizer, scraper Scraper[A]) (A, bool, error) {
	var zero A

	tokens, err := tok.Tokenize(source)
	if err != nil {
		return zero, false, err
	}

	spec := NewTagSpec(AnnotateTags(tokens))
	v, ok := scraper(spec)
	return v, ok, nil
}
