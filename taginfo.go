package scalpel

// TagInfo wraps one token together with, for an opening tag that had a
// matching closing tag, the offset from this token's index to its
// closer's index.
type TagInfo struct {
	Token HtmlToken

	// CloseOffset is the distance to the matching TagCloseToken, when
	// this TagInfo wraps a TagOpenToken that was closed. It is always
	// strictly positive when non-nil.
	CloseOffset *int
}

// hasClose reports whether this TagInfo owns a matching closer.
func (t TagInfo) hasClose() bool {
	return t.CloseOffset != nil
}

// closeIndex returns the index of the matching closer relative to
// openIndex, the index of this TagInfo in its owning slice. Only valid
// when hasClose() is true.
func (t TagInfo) closeIndex(openIndex int) int {
	return openIndex + *t.CloseOffset
}

// AnnotateTags pairs opening and closing tags over an arbitrary,
// possibly malformed, token stream. The returned slice has the same
// length and order as tokens; an opening tag that was matched by a
// same-name closing tag later in the stream carries a CloseOffset.
//
// Pairing is based on an exact (case-preserved) name stack per tag
// name — selectors apply case-insensitive name matching separately,
// but annotation itself resolves opener/closer pairs literally, since
// the tokenizer already normalizes case where it chooses to.
//
// Each token contributes exactly one TagInfo to the result, so rather
// than emit out of order and sort by original index (as a streaming
// implementation might), this implementation writes each TagInfo
// straight into its final position: O(n) instead of O(n log n), same
// observable result.
func AnnotateTags(tokens []HtmlToken) []TagInfo {
	result := make([]TagInfo, len(tokens))
	stacks := make(map[string][]int)

	for i, tok := range tokens {
		switch tok.Kind {
		case TagOpenToken:
			stacks[tok.Name] = append(stacks[tok.Name], i)
			// Filled in once (if ever) a matching closer is found, or
			// left with no CloseOffset below if the stream ends first.
			result[i] = TagInfo{Token: tok}
		case TagCloseToken:
			stack := stacks[tok.Name]
			if len(stack) == 0 {
				result[i] = TagInfo{Token: tok}
				continue
			}
			openIndex := stack[len(stack)-1]
			stacks[tok.Name] = stack[:len(stack)-1]
			offset := i - openIndex
			result[openIndex] = TagInfo{Token: tokens[openIndex], CloseOffset: &offset}
			result[i] = TagInfo{Token: tok}
		default:
			result[i] = TagInfo{Token: tok}
		}
	}

	return result
}
