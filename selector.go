package scalpel

import (
	"regexp"
	"strings"
)

// MatchResult is the three-valued verdict a selection step produces
// for a candidate node. MatchCull terminates the subtree search (the
// node and every descendant can never satisfy); MatchFail only
// rejects the current node.
type MatchResult int

// The three MatchResult values.
const (
	MatchOk MatchResult = iota
	MatchFail
	MatchCull
)

// combine implements the MatchResult combination law: any Cull wins,
// both Ok is Ok, anything else is Fail.
func combine(a, b MatchResult) MatchResult {
	if a == MatchCull || b == MatchCull {
		return MatchCull
	}
	if a == MatchOk && b == MatchOk {
		return MatchOk
	}
	return MatchFail
}

// AttributePredicate is a pure test over a tag's attributes.
type AttributePredicate func(attrs []Attribute) bool

// AttrEquals matches a TagOpen with an attribute whose key matches key
// case-insensitively and whose value equals value exactly.
func AttrEquals(key, value string) AttributePredicate {
	return func(attrs []Attribute) bool {
		for _, a := range attrs {
			if strings.EqualFold(a.Key, key) && a.Value == value {
				return true
			}
		}
		return false
	}
}

// AttrAnyEquals matches a TagOpen with any attribute, of any key,
// whose value equals value exactly.
func AttrAnyEquals(value string) AttributePredicate {
	return func(attrs []Attribute) bool {
		for _, a := range attrs {
			if a.Value == value {
				return true
			}
		}
		return false
	}
}

// AttrMatches matches a TagOpen with an attribute whose key matches
// key case-insensitively and whose value matches re.
func AttrMatches(key string, re *regexp.Regexp) AttributePredicate {
	return func(attrs []Attribute) bool {
		for _, a := range attrs {
			if strings.EqualFold(a.Key, key) && re.MatchString(a.Value) {
				return true
			}
		}
		return false
	}
}

// AttrAnyMatches matches a TagOpen with any attribute whose value
// matches re.
func AttrAnyMatches(re *regexp.Regexp) AttributePredicate {
	return func(attrs []Attribute) bool {
		for _, a := range attrs {
			if re.MatchString(a.Value) {
				return true
			}
		}
		return false
	}
}

// HasClass matches a TagOpen whose exact "class" attribute (key
// compared exactly, not case-insensitively — this mirrors the HTML
// spec's own case-sensitive attribute name) contains name as a plain
// substring.
func HasClass(name string) AttributePredicate {
	return func(attrs []Attribute) bool {
		for _, a := range attrs {
			if a.Key == "class" && strings.Contains(a.Value, name) {
				return true
			}
		}
		return false
	}
}

// AttrSatisfies matches a TagOpen with any attribute for which fn
// returns true.
func AttrSatisfies(fn func(key, value string) bool) AttributePredicate {
	return func(attrs []Attribute) bool {
		for _, a := range attrs {
			if fn(a.Key, a.Value) {
				return true
			}
		}
		return false
	}
}

func allPredicates(preds []AttributePredicate, attrs []Attribute) bool {
	for _, p := range preds {
		if !p(attrs) {
			return false
		}
	}
	return true
}

type strategyKind int

const (
	strategySelectOne strategyKind = iota
	strategySelectAny
	strategySelectText
)

type strategy struct {
	kind       strategyKind
	name       string
	predicates []AttributePredicate
}

func (s strategy) matches(tok HtmlToken) bool {
	switch s.kind {
	case strategySelectOne:
		return tok.Kind == TagOpenToken &&
			strings.EqualFold(tok.Name, s.name) &&
			allPredicates(s.predicates, tok.Attributes)
	case strategySelectAny:
		if tok.Kind == TagOpenToken {
			return allPredicates(s.predicates, tok.Attributes)
		}
		return tok.Kind == TextToken && len(s.predicates) == 0
	case strategySelectText:
		return tok.Kind == TextToken
	default:
		return false
	}
}

type depthSetting struct {
	depth    int
	hasDepth bool
}

// Selection is a single step of a Selector: a strategy to test a
// candidate node against, and an optional depth constraint relative
// to the previous match.
type Selection struct {
	strategy strategy
	settings depthSetting
}

// Selector is an ordered list of Selection steps in innermost-first
// order: Selector[0] is the actual target of the query, Selector[len-1]
// is the outermost ancestor constraint.
type Selector []Selection

// Tag selects a TagOpen whose name matches name case-insensitively.
func Tag(name string) Selector {
	return Selector{{strategy: strategy{kind: strategySelectOne, name: name}}}
}

// WithAttributes selects a TagOpen whose name matches name
// case-insensitively and which satisfies every predicate.
func WithAttributes(name string, preds []AttributePredicate) Selector {
	return Selector{{strategy: strategy{kind: strategySelectOne, name: name, predicates: preds}}}
}

// Any selects any TagOpen, or any Text token when no predicates
// constrain the match (AnyWithAttributes supplies predicates that, by
// construction, only ever test a TagOpen's attributes).
func Any() Selector {
	return Selector{{strategy: strategy{kind: strategySelectAny}}}
}

// AnyWithAttributes selects a TagOpen satisfying every predicate.
func AnyWithAttributes(preds []AttributePredicate) Selector {
	return Selector{{strategy: strategy{kind: strategySelectAny, predicates: preds}}}
}

// TextSelector selects a Text token.
func TextSelector() Selector {
	return Selector{{strategy: strategy{kind: strategySelectText}}}
}

// Nested concatenates parent and child into a single Selector: child
// stays innermost (matched first, deepest in the search), parent
// becomes the new outermost constraint.
func Nested(parent, child Selector) Selector {
	out := make(Selector, 0, len(parent)+len(child))
	out = append(out, child...)
	out = append(out, parent...)
	return out
}

// AtDepth overrides the depth constraint of sel's outermost (last in
// list) Selection, requiring it to match at exactly depth d relative
// to whatever match precedes it.
func AtDepth(sel Selector, d int) Selector {
	out := make(Selector, len(sel))
	copy(out, sel)
	last := len(out) - 1
	out[last].settings = depthSetting{depth: d, hasDepth: true}
	return out
}
