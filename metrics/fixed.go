package metrics

import (
	"github.com/npillmayer/flowtext/inline"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// FixedWidth measures text for fixed-width output devices. Widths are
// grapheme-cluster counts weighted by UAX#11 East Asian width, scaled
// by the width of one 'en' cell. Styles do not influence widths on such
// devices.
type FixedWidth struct {
	EnWidth    float64 // pixel width of one cell
	CellHeight float64 // pixel height of one cell
	Context    *uax11.Context
}

// NewFixedWidth creates a fixed-width measurer with the given cell
// geometry. A nil context defaults to uax11.LatinContext.
func NewFixedWidth(enWidth, cellHeight float64, context *uax11.Context) *FixedWidth {
	grapheme.SetupGraphemeClasses()
	if context == nil {
		context = uax11.LatinContext
	}
	return &FixedWidth{EnWidth: enWidth, CellHeight: cellHeight, Context: context}
}

// Measure returns the width of s in pixels.
func (fw *FixedWidth) Measure(s string, sty inline.Style) (float64, error) {
	gstr := grapheme.StringFromString(s)
	return float64(uax11.StringWidth(gstr, fw.Context)) * fw.EnWidth, nil
}

// Metrics returns the vertical extent of a cell; four fifths of the
// cell height sit above the baseline.
func (fw *FixedWidth) Metrics(sty inline.Style) (float64, float64) {
	ascent := fw.CellHeight * 0.8
	return ascent, fw.CellHeight - ascent
}

// Advances returns one advance per character of s. Grapheme clusters
// spanning several characters put their full width on the first one.
func (fw *FixedWidth) Advances(s string, sty inline.Style) ([]float64, error) {
	gstr := grapheme.StringFromString(s)
	var adv []float64
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w, err := fw.Measure(g, sty)
		if err != nil {
			return nil, err
		}
		first := true
		for range g {
			if first {
				adv = append(adv, w)
				first = false
			} else {
				adv = append(adv, 0)
			}
		}
	}
	return adv, nil
}
