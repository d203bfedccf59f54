package flowtext

import "sort"

// ObjectRune is the placeholder character occupying the buffer position
// of an embedded object anchor.
const ObjectRune = '￼'

// Placement determines how an embedded object participates in text flow.
type Placement int

const (
	PlaceInline Placement = iota // flows with the text like a wide character
	PlaceBlock                   // occupies lines of its own
	PlaceFloatLeft
	PlaceFloatRight
	PlaceRelative // positioned relative to its anchor, does not consume width
)

// ObjectKind discriminates the closed set of embedded object variants.
type ObjectKind int

const (
	KindImage ObjectKind = iota
	KindTextBox
	KindTable
)

func (k ObjectKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindTextBox:
		return "textbox"
	case KindTable:
		return "table"
	}
	return "object"
}

// EmbeddedObject is the capability surface shared by the closed set of
// object variants: images, text boxes and tables.
type EmbeddedObject interface {
	Kind() ObjectKind
	Size() (w, h float64)
}

// Image is a picture with a fixed display size.
type Image struct {
	Width, Height float64
	Source        string // host-interpreted reference, e.g. a file name
}

func (img *Image) Kind() ObjectKind         { return KindImage }
func (img *Image) Size() (float64, float64) { return img.Width, img.Height }

// TextBox is an independently flowed text container.
type TextBox struct {
	Width, Height float64
	Content       *Text
}

func (tb *TextBox) Kind() ObjectKind         { return KindTextBox }
func (tb *TextBox) Size() (float64, float64) { return tb.Width, tb.Height }

// TableRow is one row of an embedded table, with its calculated height.
// Header rows are repeated at the top of every continuation slice when a
// table is split across pages.
type TableRow struct {
	Height float64
	Header bool
	Cells  []string
}

// Table is an embedded table. Its width is the page-determined object
// width, its height the sum of its row heights.
type Table struct {
	Width float64
	Rows  []TableRow
}

func (tbl *Table) Kind() ObjectKind { return KindTable }

func (tbl *Table) Size() (float64, float64) {
	h := 0.0
	for _, row := range tbl.Rows {
		h += row.Height
	}
	return tbl.Width, h
}

// Anchor ties an embedded object to a single buffer position.
type Anchor struct {
	ID        int
	Index     int
	Object    EmbeddedObject
	Placement Placement
}

// ObjectSet is the id→anchor mapping for the embedded objects of one
// text. Iteration order is ascending by anchor position; consumers
// depend on this order for z-ordering and flow order.
type ObjectSet struct {
	anchors map[int]*Anchor
}

func newObjectSet() *ObjectSet {
	return &ObjectSet{anchors: make(map[int]*Anchor)}
}

func (os *ObjectSet) add(a *Anchor) {
	os.anchors[a.ID] = a
}

// ByID finds an object anchor by its id.
func (os *ObjectSet) ByID(id int) (*Anchor, error) {
	a, ok := os.anchors[id]
	if !ok {
		return nil, ErrUnknownAnnotation
	}
	return a, nil
}

// At returns the object anchored at a buffer position, if any.
func (os *ObjectSet) At(index int) (*Anchor, bool) {
	for _, a := range os.anchors {
		if a.Index == index {
			return a, true
		}
	}
	return nil, false
}

// All returns all object anchors in ascending anchor order.
func (os *ObjectSet) All() []*Anchor {
	out := make([]*Anchor, 0, len(os.anchors))
	for _, a := range os.anchors {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// InRange returns the anchors within [from,to), ascending.
func (os *ObjectSet) InRange(from, to int) []*Anchor {
	var out []*Anchor
	for _, a := range os.All() {
		if a.Index >= from && a.Index < to {
			out = append(out, a)
		}
	}
	return out
}

func (os *ObjectSet) remove(id int) error {
	if _, ok := os.anchors[id]; !ok {
		return ErrUnknownAnnotation
	}
	delete(os.anchors, id)
	return nil
}

func (os *ObjectSet) shiftInsert(i, l int) {
	for _, a := range os.anchors {
		if a.Index >= i {
			a.Index += l
		}
	}
}

func (os *ObjectSet) shiftDelete(s, e int) []*Anchor {
	var removed []*Anchor
	for id, a := range os.anchors {
		switch {
		case a.Index < s:
		case a.Index >= e:
			a.Index -= e - s
		default:
			removed = append(removed, a)
			delete(os.anchors, id)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].Index < removed[j].Index })
	return removed
}
