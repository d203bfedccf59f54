package region

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/layout"
	"github.com/npillmayer/flowtext/layout/paginate"
	"github.com/npillmayer/flowtext/merge"
)

// Kind discriminates the closed set of region variants.
type Kind int

const (
	Body Kind = iota
	Header
	Footer
	TextBoxRegion
	TableCell
)

func (k Kind) String() string {
	switch k {
	case Body:
		return "body"
	case Header:
		return "header"
	case Footer:
		return "footer"
	case TextBoxRegion:
		return "textbox"
	case TableCell:
		return "tablecell"
	}
	return "region"
}

// PageGeometry describes the fixed page grid all regions share.
type PageGeometry struct {
	PageWidth, PageHeight    float64
	MarginLeft, MarginRight  float64
	MarginTop, MarginBottom  float64
	HeaderHeight, FooterHeight float64
}

// BodyRect returns the content rectangle of the body region on a page.
func (g PageGeometry) BodyRect() layout.Rect {
	return layout.Rect{
		X:      g.MarginLeft,
		Y:      g.MarginTop + g.HeaderHeight,
		Width:  g.PageWidth - g.MarginLeft - g.MarginRight,
		Height: g.PageHeight - g.MarginTop - g.MarginBottom - g.HeaderHeight - g.FooterHeight,
	}
}

// HeaderRect returns the page-repeating header band.
func (g PageGeometry) HeaderRect() layout.Rect {
	return layout.Rect{
		X:      g.MarginLeft,
		Y:      g.MarginTop,
		Width:  g.PageWidth - g.MarginLeft - g.MarginRight,
		Height: g.HeaderHeight,
	}
}

// FooterRect returns the page-repeating footer band.
func (g PageGeometry) FooterRect() layout.Rect {
	return layout.Rect{
		X:      g.MarginLeft,
		Y:      g.PageHeight - g.MarginBottom - g.FooterHeight,
		Width:  g.PageWidth - g.MarginLeft - g.MarginRight,
		Height: g.FooterHeight,
	}
}

// Region is one independently flowed text context: a text with its
// annotation sets, flowed against the region's own width and height.
type Region struct {
	id        string
	kind      Kind
	text      *flowtext.Text
	geom      PageGeometry
	frame     layout.Rect // bounds of textbox/tablecell regions
	framePage int         // page the frame sits on
	m         layout.Measurer
	hub       *Hub
	pages     []paginate.Page
	cursor    int
	selAnchor int
	selActive bool
	focused   bool
	pageCount int
}

// New creates a region of the given kind over a text. Body, header and
// footer regions derive their bounds from the page geometry; text-box
// and table-cell regions are framed with SetFrame.
func New(id string, kind Kind, text *flowtext.Text, geom PageGeometry, m layout.Measurer) *Region {
	r := &Region{id: id, kind: kind, text: text, geom: geom, m: m}
	text.AddObserver((*regionObserver)(r))
	return r
}

// ID returns the region's id.
func (r *Region) ID() string { return r.id }

// Kind returns the region's variant.
func (r *Region) Kind() Kind { return r.kind }

// Text returns the region's text. Mutations must follow the
// single-writer discipline described in the package documentation.
func (r *Region) Text() *flowtext.Text { return r.text }

// Focused reports whether this region currently holds the caret.
func (r *Region) Focused() bool { return r.focused }

// AttachHub routes this region's events through a hub.
func (r *Region) AttachHub(h *Hub) { r.hub = h }

// SetFrame pins a text-box or table-cell region to a rectangle on one
// page.
func (r *Region) SetFrame(page int, frame layout.Rect) {
	r.framePage = page
	r.frame = frame
}

// PageCount returns the page count of the last layout pass.
func (r *Region) PageCount() int { return len(r.pages) }

// Pages returns the flowed pages of the last layout pass.
func (r *Region) Pages() []paginate.Page { return r.pages }

// contentSize returns the width lines are broken to and the page-height
// budget of this region.
func (r *Region) contentSize() (float64, float64) {
	switch r.kind {
	case Header:
		hr := r.geom.HeaderRect()
		return hr.Width, hr.Height
	case Footer:
		fr := r.geom.FooterRect()
		return fr.Width, fr.Height
	case TextBoxRegion, TableCell:
		return r.frame.Width, r.frame.Height
	}
	br := r.geom.BodyRect()
	return br.Width, br.Height
}

// Layout flows the region's text into lines and pages. The pass runs
// synchronously to completion; previous layout results are replaced
// wholesale, never patched. Overflow and shrink of the page count are
// published through the hub.
func (r *Region) Layout() error {
	width, budget := r.contentSize()
	lines, err := layout.BreakLines(r.text, 0, r.text.Len(), width, r.m)
	if err != nil {
		tracer().Errorf("layout of region %q failed: %v", r.id, err)
		return err
	}
	r.pages = paginate.Paginate(lines, budget)
	delta := paginate.Diff(r.pageCount, len(r.pages))
	if delta > 0 {
		r.hub.Publish(TextOverflow{RegionID: r.id, NewPageCount: len(r.pages)})
	} else if delta < 0 {
		r.hub.Publish(PagesShrunk{RegionID: r.id, Removed: -delta})
	}
	r.pageCount = len(r.pages)
	return nil
}

// RenderMerged flows the merge-time expansion of the region's text and
// returns its pages. The region's own text, layout state and section
// templates are untouched; this is the render half of the edit/render
// split.
func (r *Region) RenderMerged(ctx merge.Context) ([]paginate.Page, error) {
	expanded, err := merge.ExpandedText(r.text, ctx)
	if err != nil {
		return nil, err
	}
	width, budget := r.contentSize()
	lines, err := layout.BreakLines(expanded, 0, expanded.Len(), width, r.m)
	if err != nil {
		return nil, err
	}
	return paginate.Paginate(lines, budget), nil
}

// Bounds returns the region's rectangle on a page, or false when the
// region does not appear on that page.
func (r *Region) Bounds(page int) (layout.Rect, bool) {
	if page < 0 {
		return layout.Rect{}, false
	}
	switch r.kind {
	case Header:
		return r.geom.HeaderRect(), true
	case Footer:
		return r.geom.FooterRect(), true
	case TextBoxRegion, TableCell:
		if page != r.framePage {
			return layout.Rect{}, false
		}
		return r.frame, true
	}
	if page >= len(r.pages) {
		return layout.Rect{}, false
	}
	return r.geom.BodyRect(), true
}

// GlobalToLocal maps a point in page coordinates into region-local
// coordinates, or false when the point is outside the region on that
// page.
func (r *Region) GlobalToLocal(pt layout.Point, page int) (layout.Point, bool) {
	b, ok := r.Bounds(page)
	if !ok || !b.Contains(pt) {
		return layout.Point{}, false
	}
	return layout.Point{X: pt.X - b.X, Y: pt.Y - b.Y}, true
}

// Lines returns the flowed lines shown on a page. Header and footer
// regions repeat their first flowed page on every document page.
func (r *Region) Lines(page int) []layout.Line {
	p, ok := r.pageFor(page)
	if !ok {
		return nil
	}
	return p.Lines
}

func (r *Region) pageFor(page int) (*paginate.Page, bool) {
	if len(r.pages) == 0 {
		return nil, false
	}
	switch r.kind {
	case Header, Footer:
		return &r.pages[0], true
	}
	if page < 0 || page >= len(r.pages) {
		return nil, false
	}
	return &r.pages[page], true
}

// --- Cursor and selection --------------------------------------------------

// Cursor returns the caret position of this region.
func (r *Region) Cursor() int { return r.cursor }

// SetCursor places the caret, clearing any selection.
func (r *Region) SetCursor(pos int) error {
	if pos < 0 || pos > r.text.Len() {
		return ErrInvalidPosition
	}
	r.cursor = pos
	r.selActive = false
	r.hub.Publish(CursorMoved{RegionID: r.id, Index: pos})
	return nil
}

// Select sets the selection to [from,to) and the caret to to.
func (r *Region) Select(from, to int) error {
	if from < 0 || to > r.text.Len() || from > to {
		return ErrInvalidPosition
	}
	r.selAnchor = from
	r.cursor = to
	r.selActive = true
	r.hub.Publish(SelectionChanged{RegionID: r.id, From: from, To: to, Active: true})
	return nil
}

// Selection returns the active selection range, if any.
func (r *Region) Selection() (from, to int, active bool) {
	if !r.selActive {
		return 0, 0, false
	}
	if r.selAnchor <= r.cursor {
		return r.selAnchor, r.cursor, true
	}
	return r.cursor, r.selAnchor, true
}

// ClearSelection drops the selection, keeping the caret.
func (r *Region) ClearSelection() {
	if !r.selActive {
		return
	}
	r.selActive = false
	r.hub.Publish(SelectionChanged{RegionID: r.id, Active: false})
}

// --- Observer bridge -------------------------------------------------------

// regionObserver republishes text mutations as region events.
type regionObserver Region

func (ro *regionObserver) ContentChanged(from, to int) {
	r := (*Region)(ro)
	r.hub.Publish(ContentChanged{RegionID: r.id, From: from, To: to})
}

func (ro *regionObserver) FormattingChanged(from, to int) {
	r := (*Region)(ro)
	r.hub.Publish(FormattingChanged{RegionID: r.id, From: from, To: to})
}

func (ro *regionObserver) InlineElementAdded(kind flowtext.AnchorKind, id, at int) {
	r := (*Region)(ro)
	r.hub.Publish(InlineElementAdded{RegionID: r.id, Kind: kind, ID: id, At: at})
}

func (ro *regionObserver) AnchorRemoved(kind flowtext.AnchorKind, id int) {
	r := (*Region)(ro)
	r.hub.Publish(AnchorRemoved{RegionID: r.id, Kind: kind, ID: id})
}
