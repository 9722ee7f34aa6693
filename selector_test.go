package scalpel_test

import (
	"regexp"
	"testing"

	"github.com/scalpelhq/scalpel"
	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	// combine is unexported; exercised indirectly through AttributePredicate
	// and depth-setting behavior in TestSelect (select_test.go). This test covers the
	// three publicly-visible MatchResult values exist and are distinct.
	results := map[scalpel.MatchResult]bool{
		scalpel.MatchOk:   true,
		scalpel.MatchFail: true,
		scalpel.MatchCull: true,
	}
	assert.Len(t, results, 3)
}

func TestAttributePredicates(t *testing.T) {
	t.Parallel()

	attrs := []scalpel.Attribute{{Key: "class", Value: "foo bar"}, {Key: "id", Value: "x1"}}

	t.Run("AttrEquals matches key case-insensitively, value exactly", func(t *testing.T) {
		t.Parallel()

		assert.True(t, scalpel.AttrEquals("ID", "x1")(attrs))
		assert.False(t, scalpel.AttrEquals("id", "x2")(attrs))
	})

	t.Run("AttrAnyEquals ignores key", func(t *testing.T) {
		t.Parallel()

		assert.True(t, scalpel.AttrAnyEquals("x1")(attrs))
		assert.False(t, scalpel.AttrAnyEquals("nope")(attrs))
	})

	t.Run("AttrMatches applies a regexp to the named attribute", func(t *testing.T) {
		t.Parallel()

		re := regexp.MustCompile(`^x\d+$`)
		assert.True(t, scalpel.AttrMatches("id", re)(attrs))
	})

	t.Run("AttrAnyMatches applies a regexp across all attributes", func(t *testing.T) {
		t.Parallel()

		re := regexp.MustCompile(`^x\d+$`)
		assert.True(t, scalpel.AttrAnyMatches(re)(attrs))
	})

	t.Run("HasClass matches a plain substring of the class attribute", func(t *testing.T) {
		t.Parallel()

		assert.True(t, scalpel.HasClass("foo")(attrs))
		assert.True(t, scalpel.HasClass("fo")(attrs))
		assert.False(t, scalpel.HasClass("nope")(attrs))
	})

	t.Run("AttrSatisfies runs an arbitrary predicate per attribute", func(t *testing.T) {
		t.Parallel()

		pred := scalpel.AttrSatisfies(func(key, value string) bool {
			return key == "id" && len(value) == 2
		})
		assert.True(t, pred(attrs))
	})
}

func TestNested(t *testing.T) {
	t.Parallel()

	child := scalpel.Tag("b")
	parent := scalpel.Tag("a")

	got := scalpel.Nested(parent, child)

	require := len(got)
	assert.Equal(t, 2, require)
}

func TestAtDepth(t *testing.T) {
	t.Parallel()

	sel := scalpel.Nested(scalpel.Tag("a"), scalpel.Tag("b"))
	depthed := scalpel.AtDepth(sel, 2)

	// AtDepth must not mutate the original selector's backing array.
	assert.NotSame(t, &sel[len(sel)-1], &depthed[len(depthed)-1])
}
