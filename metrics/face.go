package metrics

import (
	"github.com/npillmayer/flowtext/inline"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceSet maps the bold/italics style axes to font faces. Missing
// variants fall back to the regular face.
type FaceSet struct {
	Regular    font.Face
	Bold       font.Face
	Italic     font.Face
	BoldItalic font.Face
}

// FaceMeasurer measures text with golang.org/x/image font faces. It
// implements layout.AdvanceMeasurer.
type FaceMeasurer struct {
	faces FaceSet
}

// NewFaceMeasurer creates a measurer over a set of font faces. The
// regular face is mandatory.
func NewFaceMeasurer(faces FaceSet) *FaceMeasurer {
	if faces.Bold == nil {
		faces.Bold = faces.Regular
	}
	if faces.Italic == nil {
		faces.Italic = faces.Regular
	}
	if faces.BoldItalic == nil {
		faces.BoldItalic = faces.Bold
	}
	return &FaceMeasurer{faces: faces}
}

func (fm *FaceMeasurer) face(sty inline.Style) font.Face {
	bold := sty.Contains(inline.BoldStyle) || sty.Contains(inline.StrongStyle)
	italic := sty.Contains(inline.ItalicsStyle) || sty.Contains(inline.EmStyle)
	switch {
	case bold && italic:
		return fm.faces.BoldItalic
	case bold:
		return fm.faces.Bold
	case italic:
		return fm.faces.Italic
	}
	return fm.faces.Regular
}

// Measure returns the advance width of s in pixels.
func (fm *FaceMeasurer) Measure(s string, sty inline.Style) (float64, error) {
	return fromFixed(font.MeasureString(fm.face(sty), s)), nil
}

// Metrics returns ascent and descent of the style's face in pixels.
func (fm *FaceMeasurer) Metrics(sty inline.Style) (float64, float64) {
	m := fm.face(sty).Metrics()
	return fromFixed(m.Ascent), fromFixed(m.Descent)
}

// Advances returns one advance per character of s.
func (fm *FaceMeasurer) Advances(s string, sty inline.Style) ([]float64, error) {
	face := fm.face(sty)
	var adv []float64
	for _, r := range s {
		a, ok := face.GlyphAdvance(r)
		if !ok {
			a, _ = face.GlyphAdvance(' ')
		}
		adv = append(adv, fromFixed(a))
	}
	return adv, nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
