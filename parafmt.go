package flowtext

import "fmt"

// Alignment of a paragraph within the available width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ListStyle marks a paragraph as a list item.
type ListStyle int

const (
	ListNone ListStyle = iota
	ListBullet
	ListNumbered
)

// ParaFormat carries the block-level formatting of a paragraph.
type ParaFormat struct {
	Align       Alignment
	LeftIndent  float64
	RightIndent float64
	FirstIndent float64 // additional indent of a paragraph's first line
	List        ListStyle
}

// paraRun associates a ParaFormat with a range of paragraphs, addressed
// by character positions. Ranges are kept aligned to paragraph breaks by
// the Text edit operations.
type paraRun struct {
	From, To int
	Format   ParaFormat
}

type paraList struct {
	runs []paraRun
}

// FormatAt returns the paragraph format in effect at a character position.
func (pl *paraList) FormatAt(pos int) ParaFormat {
	for _, r := range pl.runs {
		if pos >= r.From && pos < r.To {
			return r.Format
		}
		if r.From > pos {
			break
		}
	}
	return ParaFormat{}
}

func (pl *paraList) apply(pf ParaFormat, from, to int) {
	if to <= from {
		return
	}
	out := make([]paraRun, 0, len(pl.runs)+2)
	for _, r := range pl.runs {
		if r.To <= from || r.From >= to {
			out = append(out, r)
			continue
		}
		if r.From < from {
			out = append(out, paraRun{From: r.From, To: from, Format: r.Format})
		}
		if r.To > to {
			out = append(out, paraRun{From: to, To: r.To, Format: r.Format})
		}
	}
	out = append(out, paraRun{From: from, To: to, Format: pf})
	sortParaRuns(out)
	pl.runs = out
}

func (pl *paraList) shiftInsert(i, l int) {
	for k := range pl.runs {
		r := &pl.runs[k]
		if r.From >= i {
			r.From += l
		}
		if r.To > i {
			r.To += l
		}
	}
}

func (pl *paraList) shiftDelete(s, e int) {
	l := e - s
	out := pl.runs[:0]
	for _, r := range pl.runs {
		r.From = shiftIndexDelete(r.From, s, e, l)
		r.To = shiftEndDelete(r.To, s, e, l)
		if r.To > r.From {
			out = append(out, r)
		}
	}
	pl.runs = out
}

func sortParaRuns(runs []paraRun) {
	for i := 1; i < len(runs); i++ {
		for j := i; j > 0 && runs[j].From < runs[j-1].From; j-- {
			runs[j], runs[j-1] = runs[j-1], runs[j]
		}
	}
}
