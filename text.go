package flowtext

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"strings"

	"github.com/npillmayer/flowtext/inline"
)

// Characters with structural meaning for layout. They are ordinary
// buffer positions as far as the edit contract is concerned.
const (
	LineBreak = '\n'
	Tab       = '\t'
	PageBreak = '\f'
)

// Text is a flowing-text document fragment: an indexed character
// sequence plus formatting runs, paragraph formats and the three
// annotation sets. All layers are kept synchronized under edits.
//
// A Text is not safe for concurrent mutation; see the package
// documentation of flowtext/region for the single-writer discipline.
type Text struct {
	content   []rune
	runs      runList
	parafmts  paraList
	fields    *FieldSet
	objects   *ObjectSet
	sections  *SectionSet
	observers []Observer
	nextID    int
}

// NewText creates an empty text.
func NewText() *Text {
	return &Text{
		fields:   newFieldSet(),
		objects:  newObjectSet(),
		sections: newSectionSet(),
		nextID:   1,
	}
}

// TextFromString creates a text with initial content. The string must
// not contain placeholder characters.
func TextFromString(s string) *Text {
	t := NewText()
	t.content = []rune(s)
	return t
}

// Len returns the number of character positions. Valid cursor positions
// are 0…Len() inclusive.
func (t *Text) Len() int {
	return len(t.content)
}

// Rune returns the character at a buffer position.
func (t *Text) Rune(pos int) rune {
	return t.content[pos]
}

// String returns the raw content, placeholder characters included.
func (t *Text) String() string {
	return string(t.content)
}

// Slice returns the raw content of [from,to).
func (t *Text) Slice(from, to int) string {
	return string(t.content[from:to])
}

// Fields returns the substitution-field set of this text.
func (t *Text) Fields() *FieldSet { return t.fields }

// Objects returns the embedded-object set of this text.
func (t *Text) Objects() *ObjectSet { return t.objects }

// Sections returns the repeating-section set of this text.
func (t *Text) Sections() *SectionSet { return t.sections }

// AddObserver registers an observer for mutations of this text.
func (t *Text) AddObserver(o Observer) {
	t.observers = append(t.observers, o)
}

// --- Edit operations -------------------------------------------------------

// Insert inserts s at buffer position at, shifting all runs, paragraph
// formats and anchors at or beyond at by len(s) characters.
func (t *Text) Insert(at int, s string) error {
	if at < 0 || at > len(t.content) {
		T().Errorf("text insert at %d outside [0,%d]", at, len(t.content))
		return ErrInvalidRange
	}
	if s == "" {
		return nil
	}
	ins := []rune(s)
	t.spliceIn(at, ins)
	l := len(ins)
	t.runs.shiftInsert(at, l)
	t.parafmts.shiftInsert(at, l)
	t.fields.shiftInsert(at, l)
	t.objects.shiftInsert(at, l)
	t.sections.shiftInsert(at, l)
	t.notifyContent(at, at+l)
	return nil
}

// Delete removes the character range [from,to). Anchors inside the range
// are removed, and their removal is reported to the observers.
func (t *Text) Delete(from, to int) error {
	if from < 0 || to > len(t.content) || from > to {
		T().Errorf("text delete [%d,%d) outside [0,%d]", from, to, len(t.content))
		return ErrInvalidRange
	}
	if from == to {
		return nil
	}
	t.content = append(t.content[:from], t.content[to:]...)
	t.runs.shiftDelete(from, to)
	t.parafmts.shiftDelete(from, to)
	removedFields := t.fields.shiftDelete(from, to)
	removedObjects := t.objects.shiftDelete(from, to)
	removedSections := t.sections.shiftDelete(from, to)
	t.notifyContent(from, from)
	for _, f := range removedFields {
		t.notifyRemoved(AnchorField, f.ID)
	}
	for _, a := range removedObjects {
		t.notifyRemoved(AnchorObject, a.ID)
	}
	for _, s := range removedSections {
		t.notifyRemoved(AnchorSection, s.ID)
	}
	return nil
}

// Style applies a character style to the range [from,to).
func (t *Text) Style(sty inline.Style, from, to int) error {
	if from < 0 || to > len(t.content) || from > to {
		return ErrInvalidRange
	}
	t.runs.apply(sty, from, to)
	t.notifyFormatting(from, to)
	return nil
}

// ParaStyle applies a paragraph format to all paragraphs touched by
// [from,to). The effective range snaps outward to paragraph breaks.
func (t *Text) ParaStyle(pf ParaFormat, from, to int) error {
	if from < 0 || to > len(t.content) || from > to {
		return ErrInvalidRange
	}
	ps := t.ParagraphStart(from)
	pe := t.ParagraphEnd(to)
	t.parafmts.apply(pf, ps, pe)
	t.notifyFormatting(ps, pe)
	return nil
}

// StyleAt returns the character style at a buffer position.
func (t *Text) StyleAt(pos int) inline.Style {
	return t.runs.StyleAt(pos)
}

// StyleRuns returns all style runs of the text.
func (t *Text) StyleRuns() []StyleRun {
	return t.runs.Runs()
}

// StyleSection returns the style runs of [from,to), re-based to 0.
func (t *Text) StyleSection(from, to int) []StyleRun {
	return t.runs.Section(from, to)
}

// ParaFormatAt returns the paragraph format at a buffer position.
func (t *Text) ParaFormatAt(pos int) ParaFormat {
	return t.parafmts.FormatAt(pos)
}

// --- Annotations -----------------------------------------------------------

// InsertField creates a substitution field at buffer position at. The
// field occupies exactly one position, represented by FieldRune.
func (t *Text) InsertField(at int, path, deflt string, sty inline.Style) (*Field, error) {
	if at < 0 || at > len(t.content) {
		return nil, ErrInvalidRange
	}
	if err := t.Insert(at, string(FieldRune)); err != nil {
		return nil, err
	}
	f := &Field{ID: t.allocID(), Index: at, Path: path, Default: deflt, Style: sty}
	t.fields.add(f)
	t.notifyInline(AnchorField, f.ID, at)
	return f, nil
}

// InsertObject anchors an embedded object at buffer position at. The
// anchor occupies exactly one position, represented by ObjectRune.
func (t *Text) InsertObject(at int, obj EmbeddedObject, pl Placement) (*Anchor, error) {
	if at < 0 || at > len(t.content) {
		return nil, ErrInvalidRange
	}
	if err := t.Insert(at, string(ObjectRune)); err != nil {
		return nil, err
	}
	a := &Anchor{ID: t.allocID(), Index: at, Object: obj, Placement: pl}
	t.objects.add(a)
	t.notifyInline(AnchorObject, a.ID, at)
	return a, nil
}

// AddSection declares [from,to) a repeating-section template bound to a
// merge-data array path. Nested or overlapping sections are rejected.
func (t *Text) AddSection(from, to int, path string) (*Section, error) {
	if from < 0 || to > len(t.content) || from > to {
		return nil, ErrInvalidRange
	}
	s := &Section{ID: t.allocID(), From: from, To: to, Path: path}
	if err := t.sections.add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RemoveField deletes a field's placeholder character and its entry.
func (t *Text) RemoveField(id int) error {
	f, err := t.fields.ByID(id)
	if err != nil {
		return err
	}
	return t.Delete(f.Index, f.Index+1) // anchor removal notifies the observers
}

// RemoveObject deletes an object's placeholder character and its anchor.
func (t *Text) RemoveObject(id int) error {
	a, err := t.objects.ByID(id)
	if err != nil {
		return err
	}
	return t.Delete(a.Index, a.Index+1)
}

// RemoveSection drops a section entry. The template content stays.
func (t *Text) RemoveSection(id int) error {
	return t.sections.remove(id)
}

// --- Paragraph structure ---------------------------------------------------

// ParagraphStart returns the position of the first character of the
// paragraph containing pos.
func (t *Text) ParagraphStart(pos int) int {
	for i := min(pos, len(t.content)) - 1; i >= 0; i-- {
		if t.content[i] == LineBreak {
			return i + 1
		}
	}
	return 0
}

// ParagraphEnd returns the end-exclusive position of the paragraph
// containing pos, including its terminating line break if present.
func (t *Text) ParagraphEnd(pos int) int {
	for i := max(pos, 0); i < len(t.content); i++ {
		if t.content[i] == LineBreak {
			return i + 1
		}
	}
	return len(t.content)
}

// PlainString returns the content of [from,to) with placeholder
// characters replaced by their display renderings. Intended for hosts
// and debug output, not for index arithmetic.
func (t *Text) PlainString(from, to int) string {
	var sb strings.Builder
	for i := from; i < to; i++ {
		switch t.content[i] {
		case FieldRune:
			if f, ok := t.fields.At(i); ok {
				sb.WriteString(f.Display())
			}
		case ObjectRune:
			// objects have no textual rendering
		default:
			sb.WriteRune(t.content[i])
		}
	}
	return sb.String()
}

// --- Internals -------------------------------------------------------------

func (t *Text) spliceIn(at int, ins []rune) {
	t.content = append(t.content, ins...) // grow
	copy(t.content[at+len(ins):], t.content[at:])
	copy(t.content[at:], ins)
}

func (t *Text) allocID() int {
	id := t.nextID
	t.nextID++
	return id
}

func (t *Text) notifyContent(from, to int) {
	for _, o := range t.observers {
		o.ContentChanged(from, to)
	}
}

func (t *Text) notifyFormatting(from, to int) {
	for _, o := range t.observers {
		o.FormattingChanged(from, to)
	}
}

func (t *Text) notifyInline(kind AnchorKind, id, at int) {
	for _, o := range t.observers {
		o.InlineElementAdded(kind, id, at)
	}
}

func (t *Text) notifyRemoved(kind AnchorKind, id int) {
	for _, o := range t.observers {
		o.AnchorRemoved(kind, id)
	}
}
