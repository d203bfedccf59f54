package paginate

import (
	"github.com/npillmayer/flowtext/layout"
)

// PlacedTable is one page-worth of a split table: the slice of rows the
// page shows, tied back to the object anchor it came from.
type PlacedTable struct {
	ObjectID int
	Slice    Slice
}

// Page is one page of flowed output: its lines, any table slices placed
// on it, the buffer range it covers and its total content height.
type Page struct {
	Lines    []layout.Line
	Tables   []PlacedTable
	From, To int // half-open buffer range covered by this page
	Height   float64
}

// LineAt returns the line containing the vertical position y (relative
// to the page content top), with the y offset of the line's top edge.
func (p *Page) LineAt(y float64) (*layout.Line, float64, bool) {
	top := 0.0
	for i := range p.Lines {
		h := p.Lines[i].Height
		if y < top+h {
			return &p.Lines[i], top, true
		}
		top += h
	}
	return nil, 0, false
}

// LineTop returns the y offset of line index k on this page.
func (p *Page) LineTop(k int) float64 {
	top := 0.0
	for i := 0; i < k && i < len(p.Lines); i++ {
		top += p.Lines[i].Height
	}
	return top
}
