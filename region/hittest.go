package region

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"github.com/npillmayer/flowtext/layout"
)

// PointToIndex maps a region-local point to a buffer index, using the
// last layout pass. Points below the flowed content map to the end of
// the last line on the page; points left or right of a line clamp to
// its ends. The caret lands before a rune when the point falls in its
// left half, after it otherwise.
func (r *Region) PointToIndex(page int, pt layout.Point) (int, error) {
	ln, _, err := r.lineAt(page, pt)
	if err != nil {
		return 0, err
	}
	return r.indexInLine(ln, pt.X)
}

// Click resolves a region-local click point. Clicks landing on a
// field's or object's box publish FieldClicked/ObjectClicked and place
// the caret immediately after the anchor; all other clicks place the
// caret at the hit index.
func (r *Region) Click(page int, pt layout.Point) error {
	ln, _, err := r.lineAt(page, pt)
	if err != nil {
		return err
	}
	for _, fb := range ln.Fields {
		if pt.X >= fb.X && pt.X < fb.X+fb.Width {
			if err := r.SetCursor(fb.Index + 1); err != nil {
				return err
			}
			r.hub.Publish(FieldClicked{RegionID: r.id, FieldID: fb.ID, Index: fb.Index})
			return nil
		}
	}
	for _, ob := range ln.Objects {
		if pt.X >= ob.X && pt.X < ob.X+ob.Width {
			if err := r.SetCursor(ob.Index + 1); err != nil {
				return err
			}
			r.hub.Publish(ObjectClicked{RegionID: r.id, ObjectID: ob.ID, Index: ob.Index})
			return nil
		}
	}
	pos, err := r.indexInLine(ln, pt.X)
	if err != nil {
		return err
	}
	return r.SetCursor(pos)
}

// lineAt finds the flowed line under a region-local point.
func (r *Region) lineAt(page int, pt layout.Point) (*layout.Line, float64, error) {
	p, ok := r.pageFor(page)
	if !ok {
		return nil, 0, ErrNoPage
	}
	if len(p.Lines) == 0 {
		return nil, 0, ErrInvalidPosition
	}
	if ln, top, hit := p.LineAt(pt.Y); hit {
		return ln, top, nil
	}
	// below the content: snap to the last line
	last := len(p.Lines) - 1
	return &p.Lines[last], p.LineTop(last), nil
}

// indexInLine maps an x offset within a line to a buffer index by the
// midpoint rule over per-position advances. Justification widens each
// inter-word gap once, so the extra spacing is added back on the last
// space of a gap while walking.
func (r *Region) indexInLine(ln *layout.Line, x float64) (int, error) {
	if x <= ln.XOffset {
		return ln.From, nil
	}
	advances, err := layout.Advances(r.text, ln.From, ln.To, r.m)
	if err != nil {
		return 0, err
	}
	cur := ln.XOffset
	for i, adv := range advances {
		w := adv
		if ln.ExtraSpacing > 0 && r.gapEnd(ln, i) {
			w += ln.ExtraSpacing
		}
		if x < cur+w/2 {
			return ln.From + i, nil
		}
		cur += w
	}
	return ln.To, nil
}

// gapEnd reports whether position i (line-relative) is the last space
// of a run of spaces, matching the line breaker's one-gap-per-run
// accounting of justification spacing.
func (r *Region) gapEnd(ln *layout.Line, i int) bool {
	if r.text.Rune(ln.From+i) != ' ' {
		return false
	}
	return ln.From+i+1 >= ln.To || r.text.Rune(ln.From+i+1) != ' '
}
