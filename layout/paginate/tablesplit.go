package paginate

import (
	"github.com/npillmayer/flowtext"
)

// Slice is one page-worth of a table's rows. From/To address the body
// rows placed on the page; continuation slices additionally repeat all
// header-flagged rows at their top.
type Slice struct {
	From, To     int // half-open row range
	Continuation bool
	HeaderRows   []int   // indices of rows repeated above From
	YOffset      float64 // top of the slice within its page content box
}

// Height returns the total height of a slice, repeated headers included.
func (s Slice) Height(rows []flowtext.TableRow) float64 {
	h := 0.0
	for _, k := range s.HeaderRows {
		h += rows[k].Height
	}
	for i := s.From; i < s.To; i++ {
		h += rows[i].Height
	}
	return h
}

// SplitTable distributes table rows over pages: the first slice gets the
// height remaining on the anchor page, every further slice a full page
// budget with all header-flagged rows repeated at its top. A single row
// taller than a full page budget is placed alone, overflowing; this is
// an accepted limitation, not an error.
//
// Continuation state is rebuilt from scratch on every layout pass.
func SplitTable(rows []flowtext.TableRow, remaining, budget float64) []Slice {
	if len(rows) == 0 {
		return nil
	}
	var headers []int
	for i, row := range rows {
		if row.Header {
			headers = append(headers, i)
		}
	}
	var slices []Slice
	cur := Slice{From: 0}
	capacity := remaining
	used := 0.0
	close := func(next int) {
		cur.To = next
		slices = append(slices, cur)
		// repeat only header rows lying above the slice, so a slice
		// starting at row 0 does not carry its own rows twice
		var hdr []int
		hdrHeight := 0.0
		for _, k := range headers {
			if k < next {
				hdr = append(hdr, k)
				hdrHeight += rows[k].Height
			}
		}
		cur = Slice{From: next, Continuation: true, HeaderRows: hdr}
		capacity = budget
		used = hdrHeight
	}
	for i, row := range rows {
		if used+row.Height > capacity && i > cur.From {
			close(i)
		}
		// a row taller than the remaining capacity opens a fresh slice
		// first, unless it would not fit a full page either
		if used+row.Height > capacity && i == cur.From && capacity < budget {
			close(i)
		}
		used += row.Height
	}
	cur.To = len(rows)
	slices = append(slices, cur)
	tracer().Debugf("table with %d rows split into %d slices", len(rows), len(slices))
	return slices
}
