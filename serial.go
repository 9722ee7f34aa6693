package scalpel

// SpecZipper is a focused sequence of optional specs — Lefts, Focus,
// Rights — used for ordered sibling navigation. A nil *TagSpec in any
// position is the sentinel "None": the focus may validly rest on one,
// and reading it fails a scraper, but moving past it is how a
// SerialScraper reaches the first or last real element.
type SpecZipper struct {
	Lefts  []*TagSpec
	Focus  *TagSpec
	Rights []*TagSpec
}

// toZipper builds a SpecZipper over hierarchy's top-level roots, each
// wrapped as a single-root sub-spec sharing tags and ctx, padded with
// a None sentinel at both ends. The initial focus is the leading None.
func toZipper(hierarchy Forest, tags []TagInfo, ctx Context) SpecZipper {
	rights := make([]*TagSpec, 0, len(hierarchy)+1)
	for _, f := range hierarchy {
		rights = append(rights, &TagSpec{Context: ctx, Hierarchy: Forest{f}, Tags: tags})
	}
	rights = append(rights, nil)
	return SpecZipper{Focus: nil, Rights: rights}
}

func moveNext(z SpecZipper) (SpecZipper, bool) {
	if len(z.Rights) == 0 {
		return z, false
	}
	lefts := make([]*TagSpec, len(z.Lefts)+1)
	copy(lefts, z.Lefts)
	lefts[len(z.Lefts)] = z.Focus
	return SpecZipper{Lefts: lefts, Focus: z.Rights[0], Rights: z.Rights[1:]}, true
}

func movePrev(z SpecZipper) (SpecZipper, bool) {
	if len(z.Lefts) == 0 {
		return z, false
	}
	rights := make([]*TagSpec, len(z.Rights)+1)
	rights[0] = z.Focus
	copy(rights[1:], z.Rights)
	last := len(z.Lefts) - 1
	return SpecZipper{Lefts: z.Lefts[:last], Focus: z.Lefts[last], Rights: rights}, true
}

// SerialScraper is a cooperative, state-threaded computation over a
// SpecZipper: given a zipper it either fails (returning the original
// zipper unchanged) or succeeds with a value and the zipper advanced
// to reflect the navigation performed.
type SerialScraper[A any] func(z SpecZipper) (A, bool, SpecZipper)

func stepWith[A any](move func(SpecZipper) (SpecZipper, bool), scraper Scraper[A]) SerialScraper[A] {
	return func(z SpecZipper) (A, bool, SpecZipper) {
		var zero A
		moved, ok := move(z)
		if !ok || moved.Focus == nil {
			return zero, false, z
		}
		v, ok := scraper(moved.Focus)
		if !ok {
			return zero, false, z
		}
		return v, true, moved
	}
}

func seekWith[A any](move func(SpecZipper) (SpecZipper, bool), scraper Scraper[A]) SerialScraper[A] {
	return func(z SpecZipper) (A, bool, SpecZipper) {
		var zero A
		cur := z
		for {
			moved, ok := move(cur)
			if !ok {
				return zero, false, z
			}
			cur = moved
			if cur.Focus != nil {
				if v, ok := scraper(cur.Focus); ok {
					return v, true, cur
				}
			}
		}
	}
}

// untilWith builds the bounded sub-zipper untilNext/untilBack need:
// starting at z's focus, it peeks ahead (forward when back is false,
// backward when back is true), collecting each traversed non-sentinel
// focus until until succeeds on the peeked node or the direction is
// exhausted. A peek that satisfies until is never committed, so the
// returned zipper sits just before the boundary node — letting a
// subsequent StepNext/SeekNext land exactly on it. inner then runs on
// a fresh zipper over the collected nodes, always oriented so inner's
// own StepNext/SeekNext walk them in the order they were traversed.
func untilWith[A any](back bool, until Scraper[struct{}]) func(inner SerialScraper[A]) SerialScraper[A] {
	move := moveNext
	if back {
		move = movePrev
	}
	return func(inner SerialScraper[A]) SerialScraper[A] {
		return func(z SpecZipper) (A, bool, SpecZipper) {
			var zero A
			cur := z
			var collected []*TagSpec
			for {
				peeked, ok := move(cur)
				if !ok {
					break
				}
				if peeked.Focus == nil {
					cur = peeked
					break
				}
				if _, stop := until(peeked.Focus); stop {
					break
				}
				cur = peeked
				collected = append(collected, cur.Focus)
			}

			sub := SpecZipper{Rights: append(append([]*TagSpec{}, collected...), nil)}
			v, ok, _ := inner(sub)
			if !ok {
				return zero, false, z
			}
			return v, true, cur
		}
	}
}

// StepNext advances the zipper one position forward and runs scraper
// on the new focus.
func StepNext[A any](s Scraper[A]) SerialScraper[A] {
	return stepWith(moveNext, s)
}

// StepBack advances the zipper one position backward and runs scraper
// on the new focus.
func StepBack[A any](s Scraper[A]) SerialScraper[A] {
	return stepWith(movePrev, s)
}

// SeekNext moves forward until scraper succeeds, failing the whole
// SerialScraper only once the forward direction is exhausted.
func SeekNext[A any](s Scraper[A]) SerialScraper[A] {
	return seekWith(moveNext, s)
}

// SeekBack is SeekNext, moving backward.
func SeekBack[A any](s Scraper[A]) SerialScraper[A] {
	return seekWith(movePrev, s)
}

// UntilNext bounds inner to the run of siblings strictly between the
// current position and the first node (moving forward) that satisfies
// until.
func UntilNext[A any](until Scraper[struct{}]) func(inner SerialScraper[A]) SerialScraper[A] {
	return untilWith[A](false, until)
}

// UntilBack is UntilNext, moving backward.
func UntilBack[A any](until Scraper[struct{}]) func(inner SerialScraper[A]) SerialScraper[A] {
	return untilWith[A](true, until)
}

// Repeat runs s repeatedly, collecting successful results, stopping
// (without failing) at the first absence. An immediately-failing s
// yields an empty, non-failing slice.
func Repeat[A any](s SerialScraper[A]) SerialScraper[[]A] {
	return func(z SpecZipper) ([]A, bool, SpecZipper) {
		var results []A
		cur := z
		for {
			v, ok, next := s(cur)
			if !ok {
				break
			}
			results = append(results, v)
			cur = next
		}
		return results, true, cur
	}
}

// Repeat1 is Repeat, but fails if the very first invocation of s
// fails.
func Repeat1[A any](s SerialScraper[A]) SerialScraper[[]A] {
	return func(z SpecZipper) ([]A, bool, SpecZipper) {
		v, ok, next := s(z)
		if !ok {
			var zero []A
			return zero, false, z
		}
		results := []A{v}
		cur := next
		for {
			v, ok, n := s(cur)
			if !ok {
				break
			}
			results = append(results, v)
			cur = n
		}
		return results, true, cur
	}
}

// InSerial converts a SerialScraper into a regular Scraper by building
// a SpecZipper over spec's children (when spec is the result of a
// chroot) or over spec's top-level siblings (otherwise), then running
// s over it and discarding the final zipper position.
func InSerial[A any](s SerialScraper[A]) Scraper[A] {
	return func(spec *TagSpec) (A, bool) {
		z := zipperFor(spec)
		v, ok, _ := s(z)
		return v, ok
	}
}

func zipperFor(spec *TagSpec) SpecZipper {
	hierarchy := spec.Hierarchy
	if spec.Context.InChroot && len(spec.Hierarchy) > 0 {
		hierarchy = spec.Hierarchy[0].Children
	}
	return toZipper(hierarchy, spec.Tags, spec.Context)
}
