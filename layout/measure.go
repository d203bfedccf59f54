package layout

import (
	"fmt"

	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/inline"
)

// Measurer is the external text-measurement capability. Implementations
// must be stateless and pure: they may be invoked many times per layout
// pass and must not mutate the text as a side effect.
//
// Package flowtext/metrics provides ready-made implementations.
type Measurer interface {

	// Measure returns the pixel width of s rendered in style sty.
	Measure(s string, sty inline.Style) (float64, error)

	// Metrics returns the vertical extent of style sty above and below
	// the baseline.
	Metrics(sty inline.Style) (ascent, descent float64)
}

// AdvanceMeasurer is an optional extension of Measurer providing a
// per-character breakdown, used for index↔x mapping during hit testing.
// The returned slice holds one advance per character of s.
type AdvanceMeasurer interface {
	Measurer
	Advances(s string, sty inline.Style) ([]float64, error)
}

// tabSpaces is the number of space widths a tab advances by.
const tabSpaces = 4

// measureStyled measures the text range [from,to), summing widths per
// style run.
func measureStyled(t *flowtext.Text, from, to int, m Measurer) (float64, error) {
	if to <= from {
		return 0, nil
	}
	runs := t.StyleSection(from, to)
	if len(runs) == 0 {
		w, err := m.Measure(t.Slice(from, to), inline.PlainStyle)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
		}
		return w, nil
	}
	width := 0.0
	pos := 0 // relative to from; runs are re-based
	for _, r := range runs {
		if r.From > pos { // gap carries the default style
			w, err := m.Measure(t.Slice(from+pos, from+r.From), inline.PlainStyle)
			if err != nil {
				return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
			}
			width += w
		}
		w, err := m.Measure(t.Slice(from+r.From, from+r.To), r.Style)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
		}
		width += w
		pos = r.To
	}
	if pos < to-from {
		w, err := m.Measure(t.Slice(from+pos, to), inline.PlainStyle)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
		}
		width += w
	}
	return width, nil
}

// Advances returns per-character advances for the text range [from,to),
// honoring style runs and placeholder widths. It is the index↔x mapping
// primitive for hit testing. Falls back to measuring single characters
// when the Measurer does not implement AdvanceMeasurer.
func Advances(t *flowtext.Text, from, to int, m Measurer) ([]float64, error) {
	adv := make([]float64, 0, to-from)
	for i := from; i < to; i++ {
		w, err := advanceAt(t, i, m)
		if err != nil {
			return nil, err
		}
		adv = append(adv, w)
	}
	return adv, nil
}

func advanceAt(t *flowtext.Text, i int, m Measurer) (float64, error) {
	sty := t.StyleAt(i)
	switch t.Rune(i) {
	case flowtext.LineBreak, flowtext.PageBreak:
		return 0, nil
	case flowtext.Tab:
		spc, err := m.Measure(" ", sty)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
		}
		return tabSpaces * spc, nil
	case flowtext.FieldRune:
		if f, ok := t.Fields().At(i); ok {
			w, err := m.Measure(f.Display(), f.Style)
			if err != nil {
				return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
			}
			return w, nil
		}
		return 0, nil
	case flowtext.ObjectRune:
		if a, ok := t.Objects().At(i); ok && a.Placement != flowtext.PlaceRelative {
			w, _ := a.Object.Size()
			return w, nil
		}
		return 0, nil
	}
	if am, ok := m.(AdvanceMeasurer); ok {
		a, err := am.Advances(t.Slice(i, i+1), sty)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
		}
		if len(a) > 0 {
			return a[0], nil
		}
		return 0, nil
	}
	w, err := m.Measure(t.Slice(i, i+1), sty)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMeasurement, err)
	}
	return w, nil
}
