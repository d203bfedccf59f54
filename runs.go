package flowtext

import (
	"github.com/npillmayer/flowtext/inline"
)

// StyleRun is a maximal run of characters sharing one style. Runs held
// by a Text are sorted, non-overlapping and lie within [0,N). Positions
// not covered by any run carry the default style (inline.PlainStyle).
type StyleRun struct {
	From, To int // half-open character range [From,To)
	Style    inline.Style
}

func (r StyleRun) len() int {
	return r.To - r.From
}

// runList keeps the style runs of a text. A simple sorted slice with
// linear rescans; see the package documentation for why this is
// sufficient.
type runList struct {
	runs []StyleRun
}

// StyleAt returns the style in effect at a character position.
func (rl *runList) StyleAt(pos int) inline.Style {
	for _, r := range rl.runs {
		if pos >= r.From && pos < r.To {
			return r.Style
		}
		if r.From > pos {
			break
		}
	}
	return inline.PlainStyle
}

// Runs returns a copy of all style runs.
func (rl *runList) Runs() []StyleRun {
	out := make([]StyleRun, len(rl.runs))
	copy(out, rl.runs)
	return out
}

// Section returns the runs overlapping [from,to), clipped to that range
// and re-based to from = 0.
func (rl *runList) Section(from, to int) []StyleRun {
	var out []StyleRun
	for _, r := range rl.runs {
		if r.To <= from || r.From >= to {
			continue
		}
		s := StyleRun{From: max(r.From, from) - from, To: min(r.To, to) - from, Style: r.Style}
		out = append(out, s)
	}
	return out
}

// apply styles range [from,to), splitting and coalescing runs as needed.
func (rl *runList) apply(sty inline.Style, from, to int) {
	if to <= from {
		return
	}
	out := make([]StyleRun, 0, len(rl.runs)+2)
	for _, r := range rl.runs {
		if r.To <= from || r.From >= to {
			out = append(out, r)
			continue
		}
		if r.From < from { // left remainder keeps its style
			out = append(out, StyleRun{From: r.From, To: from, Style: r.Style})
		}
		if r.To > to { // right remainder keeps its style
			out = append(out, StyleRun{From: to, To: r.To, Style: r.Style})
		}
	}
	if sty != inline.PlainStyle {
		out = append(out, StyleRun{From: from, To: to, Style: sty})
	}
	rl.runs = normalizeRuns(out)
}

// shiftInsert adjusts all runs for an insertion of length l at position i.
// A run spanning i extends by l.
func (rl *runList) shiftInsert(i, l int) {
	for k := range rl.runs {
		r := &rl.runs[k]
		if r.From >= i {
			r.From += l
		}
		if r.To > i {
			r.To += l
		}
	}
	rl.runs = normalizeRuns(rl.runs)
}

// shiftDelete adjusts all runs for a deletion of [s,e).
func (rl *runList) shiftDelete(s, e int) {
	l := e - s
	out := rl.runs[:0]
	for _, r := range rl.runs {
		r.From = shiftIndexDelete(r.From, s, e, l)
		r.To = shiftEndDelete(r.To, s, e, l)
		if r.To > r.From {
			out = append(out, r)
		}
	}
	rl.runs = normalizeRuns(out)
}

// shiftIndexDelete applies the deletion contract to a start position.
func shiftIndexDelete(a, s, e, l int) int {
	switch {
	case a < s:
		return a
	case a >= e:
		return a - l
	default:
		return s // collapsed into the cut
	}
}

// shiftEndDelete applies the deletion contract to an end-exclusive position.
func shiftEndDelete(a, s, e, l int) int {
	switch {
	case a <= s:
		return a
	case a >= e:
		return a - l
	default:
		return s
	}
}

// normalizeRuns sorts runs and merges adjacent runs of equal style.
func normalizeRuns(runs []StyleRun) []StyleRun {
	if len(runs) == 0 {
		return runs
	}
	sortRuns(runs)
	out := runs[:1]
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if r.From == last.To && r.Style == last.Style {
			last.To = r.To
			continue
		}
		out = append(out, r)
	}
	return out
}

func sortRuns(runs []StyleRun) {
	// insertion sort; run counts are small and mostly ordered already
	for i := 1; i < len(runs); i++ {
		for j := i; j > 0 && runs[j].From < runs[j-1].From; j-- {
			runs[j], runs[j-1] = runs[j-1], runs[j]
		}
	}
}
