package scalpel

// Context carries the positional metadata a TagSpec accumulates as it
// is narrowed by selection or chroot.
type Context struct {
	// Position is the 0-based index assigned by Chroots across its
	// selected specs; zero otherwise.
	Position int

	// InChroot is true once a spec has been narrowed by Select (and,
	// transitively, by Chroot/Chroots). InSerial consults it to decide
	// whether to zip over a node's children or over top-level siblings.
	InChroot bool
}

// TagSpec is the working view of a parsed document: the current
// forest view, the shared annotated token vector, and positional
// context. Narrowing (via Select, Chroot, Chroots) never mutates or
// copies Tags — Go slices already share their backing array, so a
// narrowed TagSpec's Tags is simply a re-sliced view of the original.
type TagSpec struct {
	Context   Context
	Hierarchy Forest
	Tags      []TagInfo
}

// NewTagSpec builds the initial, unnarrowed TagSpec for a document.
func NewTagSpec(tags []TagInfo) *TagSpec {
	return &TagSpec{
		Context:   Context{Position: 0, InChroot: false},
		Hierarchy: FromTagInfo(tags),
		Tags:      tags,
	}
}
