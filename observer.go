package flowtext

// AnchorKind names the annotation layer an anchor belongs to.
type AnchorKind int

const (
	AnchorField AnchorKind = iota
	AnchorObject
	AnchorSection
)

func (k AnchorKind) String() string {
	switch k {
	case AnchorField:
		return "field"
	case AnchorObject:
		return "object"
	case AnchorSection:
		return "section"
	}
	return "anchor"
}

// Observer implementations can register themselves with a Text so they
// are notified of all mutations made. Notification is synchronous and
// happens after the buffer and all annotation sets have been updated.
type Observer interface {

	// ContentChanged informs the implementer that the character range
	// [from,to) now holds different content (to == from for deletions).
	ContentChanged(from, to int)

	// FormattingChanged informs the implementer that character or
	// paragraph formatting changed within [from,to).
	FormattingChanged(from, to int)

	// InlineElementAdded informs the implementer that a field or object
	// anchor was created at position at.
	InlineElementAdded(kind AnchorKind, id int, at int)

	// AnchorRemoved informs the implementer that a deletion removed an
	// annotation, so the host can release the associated resource.
	AnchorRemoved(kind AnchorKind, id int)
}
