package paginate

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/layout"
)

// Paginate groups an ordered line sequence into pages of the given
// content-height budget. A page boundary never splits a line. A line
// carrying the page-break flag closes its page early. A standalone
// table too tall for the space remaining on its page is split into row
// slices (see SplitTable) rather than moved to the next page.
func Paginate(lines []layout.Line, budget float64) []Page {
	p := &paginator{budget: budget}
	for _, ln := range lines {
		if tbl, box, ok := standaloneTable(ln); ok && ln.Height > p.remaining() {
			p.placeSplitTable(ln, tbl, box)
			continue
		}
		p.place(ln)
	}
	pages := p.close()
	tracer().Debugf("paginated %d lines onto %d pages", len(lines), len(pages))
	return pages
}

// standaloneTable detects a line that consists of a single block-placed
// table object.
func standaloneTable(ln layout.Line) (*flowtext.Table, layout.ObjectBox, bool) {
	if len(ln.Objects) != 1 {
		return nil, layout.ObjectBox{}, false
	}
	box := ln.Objects[0]
	if box.Placement == flowtext.PlaceInline || box.Placement == flowtext.PlaceRelative {
		return nil, box, false
	}
	tbl, ok := box.Object.(*flowtext.Table)
	return tbl, box, ok
}

type paginator struct {
	budget float64
	pages  []Page
	cur    Page
	y      float64
	open   bool
}

func (p *paginator) remaining() float64 {
	return p.budget - p.y
}

func (p *paginator) place(ln layout.Line) {
	if p.open && ln.Height > p.remaining()+heightEps {
		p.closePage()
	}
	p.addLine(ln)
	if ln.PageBreak {
		p.closePage()
	}
}

func (p *paginator) addLine(ln layout.Line) {
	if !p.open {
		p.cur = Page{From: ln.From, To: ln.From}
		p.open = true
	}
	p.cur.Lines = append(p.cur.Lines, ln)
	p.cur.To = ln.To + ln.Consumed()
	p.y += ln.Height
	p.cur.Height = p.y
}

// placeSplitTable distributes a too-tall table over the current and
// subsequent pages via SplitTable. The anchor page keeps the table's
// buffer range; continuation pages cover no additional buffer range.
func (p *paginator) placeSplitTable(ln layout.Line, tbl *flowtext.Table, box layout.ObjectBox) {
	end := ln.To + ln.Consumed()
	if !p.open {
		p.cur = Page{From: ln.From, To: ln.From}
		p.open = true
	}
	slices := SplitTable(tbl.Rows, p.remaining(), p.budget)
	for i, s := range slices {
		if i > 0 {
			p.cur.To = max(p.cur.To, end)
			p.closePage()
			p.cur = Page{From: end, To: end}
			p.open = true
		}
		if s.From == s.To && !s.Continuation {
			continue // nothing fit above the fold of the anchor page
		}
		s.YOffset = p.y
		p.cur.Tables = append(p.cur.Tables, PlacedTable{ObjectID: box.ID, Slice: s})
		p.y += s.Height(tbl.Rows)
		p.cur.Height = p.y
	}
	p.cur.To = max(p.cur.To, end)
}

func (p *paginator) closePage() {
	if !p.open {
		return
	}
	p.pages = append(p.pages, p.cur)
	p.cur = Page{}
	p.y = 0
	p.open = false
}

func (p *paginator) close() []Page {
	if p.open {
		p.pages = append(p.pages, p.cur)
		p.open = false
	}
	if p.pages == nil {
		p.pages = []Page{{}}
	}
	return p.pages
}

// heightEps absorbs floating-point noise in page-fit comparisons.
const heightEps = 0.001

// Diff compares page counts of two consecutive layout passes. A positive
// result means the document overflowed into new pages, a negative one
// that pages were removed.
func Diff(oldCount, newCount int) int {
	return newCount - oldCount
}
