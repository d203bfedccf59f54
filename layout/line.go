package layout

import (
	"github.com/npillmayer/flowtext"
)

// FieldBox is the rendered box of a substitution field on a line.
// X is relative to the region content origin.
type FieldBox struct {
	ID    int
	Index int // anchor position in the buffer
	X     float64
	Width float64
}

// ObjectBox is the rendered box of an embedded object on a line.
type ObjectBox struct {
	ID        int
	Index     int
	X         float64
	Width     float64
	Height    float64
	Placement flowtext.Placement
	Object    flowtext.EmbeddedObject
}

// Line is one flowed line: the buffer range it covers, its style runs
// and annotation boxes, and its resolved geometry. Lines are pure
// derived state, discarded and recomputed on every layout pass.
type Line struct {
	From, To     int                 // half-open buffer range, break characters excluded
	Runs         []flowtext.StyleRun // re-based to the line (From = 0)
	Fields       []FieldBox
	Objects      []ObjectBox
	Width        float64 // natural width, trailing whitespace excluded
	Height       float64
	Baseline     float64 // distance from the line top to the baseline
	XOffset      float64 // left edge of the line box (indents + alignment)
	Align        flowtext.Alignment
	ExtraSpacing float64 // per-gap widening for justified lines
	HardBreak    bool    // line ends with an explicit line break
	PageBreak    bool    // line ends with an explicit page-break marker
}

// Consumed returns the number of break characters consumed directly
// after Line.To. Together with the line ranges these cover the laid-out
// buffer range without gap or overlap.
func (ln *Line) Consumed() int {
	if ln.HardBreak || ln.PageBreak {
		return 1
	}
	return 0
}
