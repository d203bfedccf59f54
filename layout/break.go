package layout

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/inline"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// widthEps absorbs floating-point noise in line-fit comparisons.
const widthEps = 0.001

type itemKind int

const (
	itemWord itemKind = iota
	itemSpace
	itemTab
	itemField
	itemObject
	itemLineBreak
	itemPageBreak
)

// item is one atomic unit of line filling: a word fragment, a run of
// spaces, a tab, a field or object box, or an explicit break.
type item struct {
	kind     itemKind
	from, to int
	width    float64
	fld      *flowtext.Field
	obj      *flowtext.Anchor
}

func (it item) atomic() bool {
	return it.kind == itemWord || it.kind == itemTab || it.kind == itemField || it.kind == itemObject
}

// BreakLines flows the buffer range [from,to) of t into lines of the
// given available width. The result covers the range exactly: the union
// of all line ranges plus their consumed break characters is [from,to).
func BreakLines(t *flowtext.Text, from, to int, width float64, m Measurer) ([]Line, error) {
	if from < 0 || to > t.Len() || from > to {
		return nil, ErrInvalidRange
	}
	items, err := tokenize(t, from, to, m)
	if err != nil {
		return nil, err
	}
	b := &lineBuilder{text: t, width: width, m: m, paraStart: true, nextFrom: from}
	for _, it := range items {
		if err := b.push(it); err != nil {
			return nil, err
		}
	}
	if err := b.finish(to); err != nil {
		return nil, err
	}
	tracer().Debugf("broke [%d,%d) into %d lines", from, to, len(b.lines))
	return b.lines, nil
}

// tokenize splits the buffer range into atomic items. Plain-text spans
// between structural characters are segmented into break opportunities
// by UAX#14; each fragment is split into its word part and its trailing
// whitespace, so that justification can widen inter-word gaps.
func tokenize(t *flowtext.Text, from, to int, m Measurer) ([]item, error) {
	var items []item
	i := from
	for i < to {
		switch t.Rune(i) {
		case flowtext.LineBreak:
			items = append(items, item{kind: itemLineBreak, from: i, to: i + 1})
			i++
		case flowtext.PageBreak:
			items = append(items, item{kind: itemPageBreak, from: i, to: i + 1})
			i++
		case flowtext.Tab:
			w, err := advanceAt(t, i, m)
			if err != nil {
				return nil, err
			}
			items = append(items, item{kind: itemTab, from: i, to: i + 1, width: w})
			i++
		case flowtext.FieldRune:
			w, err := advanceAt(t, i, m)
			if err != nil {
				return nil, err
			}
			fld, _ := t.Fields().At(i)
			items = append(items, item{kind: itemField, from: i, to: i + 1, width: w, fld: fld})
			i++
		case flowtext.ObjectRune:
			a, _ := t.Objects().At(i)
			var w float64
			if a != nil && a.Placement != flowtext.PlaceRelative {
				w, _ = a.Object.Size()
			}
			items = append(items, item{kind: itemObject, from: i, to: i + 1, width: w, obj: a})
			i++
		default:
			j := i
			for j < to && !structural(t.Rune(j)) {
				j++
			}
			span, err := tokenizeSpan(t, i, j, m)
			if err != nil {
				return nil, err
			}
			items = append(items, span...)
			i = j
		}
	}
	return items, nil
}

func structural(r rune) bool {
	switch r {
	case flowtext.LineBreak, flowtext.PageBreak, flowtext.Tab, flowtext.FieldRune, flowtext.ObjectRune:
		return true
	}
	return false
}

// tokenizeSpan runs the UAX#14 segmenter over a plain-text span and
// emits word and space items, addressed in buffer positions.
func tokenizeSpan(t *flowtext.Text, from, to int, m Measurer) ([]item, error) {
	text := t.Slice(from, to)
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(text))
	var items []item
	pos := from // rune position of the current fragment
	for seg.Next() {
		frag := string(seg.Bytes())
		fragLen := utf8.RuneCountInString(frag)
		word := strings.TrimRight(frag, " \t")
		wordLen := utf8.RuneCountInString(word)
		if wordLen > 0 {
			w, err := measureStyled(t, pos, pos+wordLen, m)
			if err != nil {
				return nil, err
			}
			items = append(items, item{kind: itemWord, from: pos, to: pos + wordLen, width: w})
		}
		if fragLen > wordLen {
			w, err := measureStyled(t, pos+wordLen, pos+fragLen, m)
			if err != nil {
				return nil, err
			}
			items = append(items, item{kind: itemSpace, from: pos + wordLen, to: pos + fragLen, width: w})
		}
		pos += fragLen
	}
	if err := seg.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// --- Line assembly ---------------------------------------------------------

type lineBuilder struct {
	text      *flowtext.Text
	width     float64
	m         Measurer
	lines     []Line
	cur       []item
	curWidth  float64
	pf        flowtext.ParaFormat
	paraStart bool // next line is the first of its paragraph
	nextFrom  int  // buffer position where the next line starts
	started   bool
}

// avail returns the available width for the current line.
func (b *lineBuilder) avail() float64 {
	a := b.width - b.pf.LeftIndent - b.pf.RightIndent
	if b.paraStart {
		a -= b.pf.FirstIndent
	}
	if a < 0 {
		a = 0
	}
	return a
}

func (b *lineBuilder) push(it item) error {
	switch it.kind {
	case itemLineBreak:
		return b.flush(it.to, true, false, false)
	case itemPageBreak:
		return b.flush(it.to, false, true, false)
	case itemSpace:
		// spaces never trigger a wrap; they may overhang the margin
		b.append(it)
		return nil
	}
	if it.kind == itemObject && it.obj != nil && standalone(it.obj.Placement) {
		if len(b.cur) > 0 {
			if err := b.flush(it.from, false, false, false); err != nil {
				return err
			}
		}
		b.append(it)
		return b.flush(it.to, false, false, false)
	}
	if len(b.cur) > 0 && b.curWidth+it.width > b.avail()+widthEps {
		// line is full; an oversize atomic unit on an empty line stands alone
		if err := b.flush(it.from, false, false, true); err != nil {
			return err
		}
	}
	b.append(it)
	return nil
}

func standalone(p flowtext.Placement) bool {
	return p == flowtext.PlaceBlock || p == flowtext.PlaceFloatLeft || p == flowtext.PlaceFloatRight
}

func (b *lineBuilder) append(it item) {
	if len(b.cur) == 0 {
		b.pf = b.text.ParaFormatAt(min(it.from, maxPos(b.text)))
	}
	b.cur = append(b.cur, it)
	b.curWidth += it.width
}

func maxPos(t *flowtext.Text) int {
	if t.Len() == 0 {
		return 0
	}
	return t.Len() - 1
}

// finish closes the trailing partial line, if any.
func (b *lineBuilder) finish(to int) error {
	if len(b.cur) > 0 || !b.started {
		return b.flush(to, false, false, false)
	}
	return nil
}

// flush closes the current line. upto is the end-exclusive position that
// has been consumed, including the break character for explicit breaks.
// soft marks a line closed by overflow; only those justify.
func (b *lineBuilder) flush(upto int, hard, page, soft bool) error {
	from := b.nextFrom
	endedBy := 0
	if hard || page {
		endedBy = 1
	}
	to := upto - endedBy
	if len(b.cur) == 0 {
		b.pf = b.text.ParaFormatAt(min(from, maxPos(b.text)))
	}
	ln := Line{
		From:      from,
		To:        to,
		Align:     b.pf.Align,
		HardBreak: hard,
		PageBreak: page,
	}
	// natural width excludes trailing whitespace
	trail := len(b.cur)
	for trail > 0 && b.cur[trail-1].kind == itemSpace {
		trail--
	}
	natural := 0.0
	for _, it := range b.cur[:trail] {
		natural += it.width
	}
	ln.Width = natural
	// justification: only soft-wrapped lines of justified paragraphs
	// widen; the last line of a paragraph stays at its natural width
	if ln.Align == flowtext.AlignJustify && soft && trail > 0 {
		gaps := 0
		for k, it := range b.cur[:trail] {
			if it.kind == itemSpace && k < trail-1 {
				gaps++
			}
		}
		if gaps > 0 && b.avail() > natural {
			ln.ExtraSpacing = (b.avail() - natural) / float64(gaps)
		}
	}
	ln.XOffset = b.lineOffset(natural)
	b.placeBoxes(&ln)
	ln.Runs = b.text.StyleSection(from, to)
	b.measureHeight(&ln)
	b.lines = append(b.lines, ln)
	b.started = true
	b.cur = b.cur[:0]
	b.curWidth = 0
	b.nextFrom = upto
	b.paraStart = hard || page
	return nil
}

// lineOffset resolves indents and alignment into the left edge of the
// line box.
func (b *lineBuilder) lineOffset(natural float64) float64 {
	left := b.pf.LeftIndent
	if b.paraStart {
		left += b.pf.FirstIndent
	}
	slack := b.avail() - natural
	if slack < 0 {
		slack = 0
	}
	switch b.pf.Align {
	case flowtext.AlignRight:
		return left + slack
	case flowtext.AlignCenter:
		return left + slack/2
	}
	return left
}

// placeBoxes assigns x positions to field and object boxes, honoring
// justification widening.
func (b *lineBuilder) placeBoxes(ln *Line) {
	x := ln.XOffset
	for _, it := range b.cur {
		switch it.kind {
		case itemField:
			if it.fld != nil {
				ln.Fields = append(ln.Fields, FieldBox{ID: it.fld.ID, Index: it.from, X: x, Width: it.width})
			}
		case itemObject:
			if it.obj != nil {
				w, h := it.obj.Object.Size()
				ln.Objects = append(ln.Objects, ObjectBox{
					ID: it.obj.ID, Index: it.from, X: x, Width: w, Height: h,
					Placement: it.obj.Placement, Object: it.obj.Object,
				})
			}
		}
		x += it.width
		if it.kind == itemSpace {
			x += ln.ExtraSpacing
		}
	}
}

// measureHeight resolves the vertical geometry of a line from the style
// runs and inline object heights it carries.
func (b *lineBuilder) measureHeight(ln *Line) {
	ascent, descent := 0.0, 0.0
	consider := func(sty inline.Style) {
		a, d := b.m.Metrics(sty)
		if a > ascent {
			ascent = a
		}
		if d > descent {
			descent = d
		}
	}
	if len(ln.Runs) == 0 {
		sty := inline.PlainStyle
		if ln.From < b.text.Len() {
			sty = b.text.StyleAt(ln.From)
		}
		consider(sty)
	}
	for _, r := range ln.Runs {
		consider(r.Style)
	}
	for _, ob := range ln.Objects {
		if ob.Height > ascent {
			ascent = ob.Height
		}
	}
	ln.Height = ascent + descent
	ln.Baseline = ascent
}
