package scalpel

// Select walks spec's forest against selector (innermost-first) and
// returns the matched sub-specs in DFS pre-order, re-numbered with a
// fresh Context. An empty selector never matches anything.
func Select(spec *TagSpec, selector Selector) []*TagSpec {
	if len(selector) == 0 {
		return nil
	}

	raw := selectNodes(spec.Hierarchy, spec.Hierarchy, selector, spec.Tags)

	out := make([]*TagSpec, len(raw))
	for i, r := range raw {
		r.Context = Context{Position: i, InChroot: true}
		out[i] = r
	}
	return out
}

// nodeMatches combines the depth check and the strategy check for the
// outermost-unconsumed Selection n against node f, using root to
// resolve f's current depth.
func nodeMatches(n Selection, f *TreeNode, root Forest, tags []TagInfo) MatchResult {
	settingsResult := checkSettings(n.settings, f.Span, root)
	strategyResult := strategyResult(n.strategy, tags[f.Span.Start].Token)
	return combine(settingsResult, strategyResult)
}

func strategyResult(s strategy, tok HtmlToken) MatchResult {
	if s.matches(tok) {
		return MatchOk
	}
	return MatchFail
}

// checkSettings applies the depth constraint, when present. currentDepth
// is the count of ancestors of span within root that strictly contain
// it; Fail if too shallow, Cull if already too deep (pruning the whole
// subtree), Ok otherwise.
func checkSettings(s depthSetting, span TagSpan, root Forest) MatchResult {
	if !s.hasDepth {
		return MatchOk
	}
	currentDepth := countAncestors(root, span)
	switch {
	case currentDepth < s.depth:
		return MatchFail
	case currentDepth > s.depth:
		return MatchCull
	default:
		return MatchOk
	}
}

// countAncestors counts nodes, at any depth within root, that strictly
// contain span. Siblings can overlap (a node fixTree hoisted, or one
// liftSiblings added to root, starts inside its neighbour), so every
// containing node on each level is counted, not just the first; only
// the subtrees of containing nodes are searched further.
func countAncestors(root Forest, span TagSpan) int {
	count := 0
	for _, a := range root {
		if a.Span.contains(span) {
			count += 1 + countAncestors(a.Children, span)
		}
	}
	return count
}

// liftSiblings hoists, from the sibling forest fs, any subtree whose
// span starts strictly inside (start, end) — the span of a node
// currently being matched against a non-terminal Selection. Only the
// Start bound is checked, not End: fixTree hoists a child to sibling
// status precisely because its End now runs past its nominal parent's
// End, while its Start remains nested inside that parent's original
// range. These subtrees are considered alongside the node's own
// children when descending into the remaining (inner) selectors,
// recovering descendants that fixTree could not nest correctly under
// malformed markup. A genuinely unrelated later sibling's Start always
// falls past end, since forestWithin only places later siblings after
// a node's closing index.
func liftSiblings(fs Forest, start, end int) Forest {
	var out Forest
	for _, s := range fs {
		if start < s.Span.Start && s.Span.Start < end {
			out = append(out, s)
		}
	}
	return out
}

// selectNodes implements the recursive DFS of §4.3: hierarchy is the
// forest still to visit, root is the forest depth is measured against,
// sel is the remaining (innermost-first) selector chain, and tags is
// the shared annotated token vector. In the terminal case a matching
// node is emitted before the matches inside its subtree, and each
// branch finishes a node's own contribution before moving on to its
// later siblings, so results come out in DFS pre-order.
func selectNodes(hierarchy, root Forest, sel Selector, tags []TagInfo) []*TagSpec {
	if len(hierarchy) == 0 {
		return nil
	}

	f, fs := hierarchy[0], hierarchy[1:]
	n := sel[len(sel)-1]
	ns := sel[:len(sel)-1]
	result := nodeMatches(n, f, root, tags)

	if len(ns) == 0 {
		switch result {
		case MatchOk:
			var out []*TagSpec
			out = append(out, shrinkSpecWith(f, tags))
			out = append(out, selectNodes(f.Children, root, sel, tags)...)
			out = append(out, selectNodes(fs, root, sel, tags)...)
			return out
		case MatchFail:
			var out []*TagSpec
			out = append(out, selectNodes(f.Children, root, sel, tags)...)
			out = append(out, selectNodes(fs, root, sel, tags)...)
			return out
		default: // MatchCull
			return selectNodes(fs, root, sel, tags)
		}
	}

	switch result {
	case MatchOk:
		siblings := liftSiblings(fs, f.Span.Start, f.Span.End)

		newRoot := append(append(Forest{}, siblings...), f)
		combinedChildren := append(append(Forest{}, f.Children...), siblings...)

		var out []*TagSpec
		out = append(out, selectNodes(combinedChildren, newRoot, ns, tags)...)
		out = append(out, selectNodes(fs, root, sel, tags)...)
		return out
	case MatchFail:
		var out []*TagSpec
		out = append(out, selectNodes(f.Children, root, sel, tags)...)
		out = append(out, selectNodes(fs, root, sel, tags)...)
		return out
	default: // MatchCull
		return selectNodes(fs, root, sel, tags)
	}
}

// shrinkSpecWith emits a TagSpec for a matched node f: a forest
// containing only f, with every span recentered so f.Span.Start
// becomes 0, and Tags narrowed to the inclusive token slice
// [f.Span.Start, f.Span.End].
func shrinkSpecWith(f *TreeNode, tags []TagInfo) *TagSpec {
	delta := f.Span.Start
	return &TagSpec{
		Hierarchy: Forest{recenter(f, delta)},
		Tags:      tags[f.Span.Start : f.Span.End+1],
	}
}

func recenter(n *TreeNode, delta int) *TreeNode {
	children := make(Forest, len(n.Children))
	for i, c := range n.Children {
		children[i] = recenter(c, delta)
	}
	return &TreeNode{
		Span:     TagSpan{Start: n.Span.Start - delta, End: n.Span.End - delta},
		Children: children,
	}
}
