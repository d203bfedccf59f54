package formatter

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"io"
	"math"

	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/inline"
	"github.com/npillmayer/flowtext/layout"
	"github.com/npillmayer/flowtext/layout/paginate"
	"github.com/npillmayer/flowtext/metrics"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth  int // in fixed-width ‘en’s
	PageHeight int // in text rows; 0 disables pagination
	Context    *uax11.Context
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	BeginPage(int, io.Writer)
	EndPage(io.Writer)
	Line(int, io.Writer)
	StyledText(string, inline.Style, io.Writer)
	Object(flowtext.EmbeddedObject, io.Writer)
	Newline(io.Writer)
}

// Output flows a text against config.LineWidth and config.PageHeight
// and writes the resulting pages through a formatting driver.
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func Output(t *flowtext.Text, out io.Writer, config *Config, format Format) error {
	if t == nil || config == nil || format == nil {
		return flowtext.ErrIllegalArguments
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	m := metrics.NewFixedWidth(1, 1, config.Context)
	lines, err := layout.BreakLines(t, 0, t.Len(), float64(config.LineWidth), m)
	if err != nil {
		tracer().Errorf("formatting failed to break lines: %v", err)
		return err
	}
	budget := math.Inf(1)
	if config.PageHeight > 0 {
		budget = float64(config.PageHeight)
	}
	pages := paginate.Paginate(lines, budget)
	format.Preamble(out)
	for n, pg := range pages {
		format.BeginPage(n, out)
		for _, ln := range pg.Lines {
			format.Line(int(ln.XOffset), out)
			outputLine(t, ln, format, out)
			format.Newline(out)
		}
		format.EndPage(out)
	}
	format.Postamble(out)
	return nil
}

// outputLine hands one flowed line to the driver, spanwise by style.
// Style runs cover styled text only; the gaps between them carry the
// default style.
func outputLine(t *flowtext.Text, ln layout.Line, format Format, w io.Writer) {
	pos := ln.From
	for _, run := range ln.Runs { // run bounds are line-relative
		if ln.From+run.From > pos {
			outputSpan(t, pos, ln.From+run.From, inline.PlainStyle, format, w)
		}
		outputSpan(t, ln.From+run.From, ln.From+run.To, run.Style, format, w)
		pos = ln.From + run.To
	}
	if pos < ln.To {
		outputSpan(t, pos, ln.To, inline.PlainStyle, format, w)
	}
}

// outputSpan writes a uniformly styled buffer range. Structural runes
// are consumed here; fields render their display value, inline objects
// go to the driver's Object hook.
func outputSpan(t *flowtext.Text, from, to int, sty inline.Style, format Format, w io.Writer) {
	var span []rune
	flush := func() {
		if len(span) > 0 {
			format.StyledText(string(span), sty, w)
			span = span[:0]
		}
	}
	for i := from; i < to; i++ {
		switch r := t.Rune(i); r {
		case flowtext.FieldRune:
			flush()
			if f, ok := t.Fields().At(i); ok {
				format.StyledText(f.Display(), f.Style, w)
			}
		case flowtext.ObjectRune:
			flush()
			if a, ok := t.Objects().At(i); ok && a.Placement != flowtext.PlaceRelative {
				format.Object(a.Object, w)
			}
		case flowtext.LineBreak, flowtext.PageBreak:
			flush()
		case flowtext.Tab:
			flush()
			format.StyledText("    ", sty, w)
		default:
			span = append(span, r)
		}
	}
	flush()
}
