package region

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/flowtext"
)

// Engine events, published through a Hub. Hosts subscribe to drive page
// containers, caret rendering and dirty-marking; the engine never
// depends on a subscriber being present.

// ContentChanged reports that a region's buffer content changed.
type ContentChanged struct {
	RegionID string
	From, To int
}

// FormattingChanged reports changed character or paragraph formatting.
type FormattingChanged struct {
	RegionID string
	From, To int
}

// InlineElementAdded reports a newly created field or object anchor.
type InlineElementAdded struct {
	RegionID string
	Kind     flowtext.AnchorKind
	ID       int
	At       int
}

// AnchorRemoved reports that a deletion removed an annotation, so the
// host can release the associated resource.
type AnchorRemoved struct {
	RegionID string
	Kind     flowtext.AnchorKind
	ID       int
}

// CursorMoved reports a new caret position.
type CursorMoved struct {
	RegionID string
	Index    int
}

// SelectionChanged reports a changed or cleared selection.
type SelectionChanged struct {
	RegionID string
	From, To int
	Active   bool
}

// TextOverflow reports that a layout pass grew the page count, so the
// host can add page containers.
type TextOverflow struct {
	RegionID     string
	NewPageCount int
}

// PagesShrunk reports that a layout pass lowered the page count, so the
// host can remove page containers.
type PagesShrunk struct {
	RegionID string
	Removed  int
}

// FieldClicked reports a click landing on a substitution field's box.
// The caret is placed immediately after the field, never inside it.
type FieldClicked struct {
	RegionID string
	FieldID  int
	Index    int
}

// ObjectClicked reports a click landing on an embedded object's box.
type ObjectClicked struct {
	RegionID string
	ObjectID int
	Index    int
}

// Hub broadcasts engine events to any number of subscribers. It wraps a
// caster broadcaster; publishing never blocks the layout engine.
type Hub struct {
	cast *caster.Caster
}

// NewHub creates a hub ready for subscriptions.
func NewHub() *Hub {
	return &Hub{cast: caster.New(nil)}
}

// Subscribe registers a subscriber channel with the given buffer
// capacity. The channel is closed when ctx is done or the hub closes.
// The returned channel doubles as the handle for Unsubscribe.
func (h *Hub) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return h.cast.Sub(ctx, capacity)
}

// Unsubscribe removes a subscriber channel obtained from Subscribe.
func (h *Hub) Unsubscribe(ch chan interface{}) {
	h.cast.Unsub(ch)
}

// Publish broadcasts an event without blocking; slow subscribers miss
// events rather than stalling layout.
func (h *Hub) Publish(ev interface{}) {
	if h == nil {
		return
	}
	h.cast.TryPub(ev)
}

// Close shuts the hub down and closes all subscriber channels.
func (h *Hub) Close() {
	h.cast.Close()
}
