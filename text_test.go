package flowtext

import (
	"errors"
	"testing"

	"github.com/npillmayer/flowtext/inline"
)

// recorder collects observer notifications for inspection.
type recorder struct {
	content [][2]int
	format  [][2]int
	added   []int
	removed []int
}

func (rec *recorder) ContentChanged(from, to int)    { rec.content = append(rec.content, [2]int{from, to}) }
func (rec *recorder) FormattingChanged(from, to int) { rec.format = append(rec.format, [2]int{from, to}) }
func (rec *recorder) InlineElementAdded(kind AnchorKind, id, at int) {
	rec.added = append(rec.added, id)
}
func (rec *recorder) AnchorRemoved(kind AnchorKind, id int) {
	rec.removed = append(rec.removed, id)
}

func TestInsertDelete(t *testing.T) {
	text := TextFromString("Hello world")
	if err := text.Insert(5, ","); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if text.String() != "Hello, world" {
		t.Fatalf("unexpected content: %q", text.String())
	}
	if err := text.Delete(5, 7); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if text.String() != "Helloworld" {
		t.Fatalf("unexpected content after delete: %q", text.String())
	}
}

func TestEditNeverClamps(t *testing.T) {
	text := TextFromString("abc")
	cases := []func() error{
		func() error { return text.Insert(-1, "x") },
		func() error { return text.Insert(4, "x") },
		func() error { return text.Delete(-1, 2) },
		func() error { return text.Delete(0, 4) },
		func() error { return text.Delete(2, 1) },
	}
	for i, edit := range cases {
		if err := edit(); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("case %d: expected ErrInvalidRange, got %v", i, err)
		}
	}
	if text.String() != "abc" {
		t.Fatalf("rejected edits must not change content: %q", text.String())
	}
}

func TestInsertShiftsAllLayers(t *testing.T) {
	text := TextFromString("Hello world")
	if err := text.Style(inline.BoldStyle, 6, 11); err != nil {
		t.Fatalf("Style failed: %v", err)
	}
	f, err := text.InsertField(11, "user.name", "", inline.PlainStyle)
	if err != nil {
		t.Fatalf("InsertField failed: %v", err)
	}
	if _, err := text.AddSection(6, 12, "items"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	if err := text.Insert(0, ">> "); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	runs := text.StyleRuns()
	if len(runs) != 1 || runs[0].From != 9 || runs[0].To != 14 {
		t.Fatalf("unexpected style runs: %v", runs)
	}
	if f.Index != 14 {
		t.Fatalf("field anchor not shifted: %d", f.Index)
	}
	sec := text.Sections().All()[0]
	if sec.From != 9 || sec.To != 15 {
		t.Fatalf("section not shifted: [%d,%d)", sec.From, sec.To)
	}
}

func TestInsertInsideRunExtendsIt(t *testing.T) {
	text := TextFromString("Hello")
	if err := text.Style(inline.BoldStyle, 0, 5); err != nil {
		t.Fatalf("Style failed: %v", err)
	}
	if err := text.Insert(2, "xx"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	runs := text.StyleRuns()
	if len(runs) != 1 || runs[0].From != 0 || runs[0].To != 7 {
		t.Fatalf("run spanning the insertion must extend: %v", runs)
	}
}

func TestDeleteRemovesCoveredAnchors(t *testing.T) {
	rec := &recorder{}
	text := TextFromString("ab cd")
	f, err := text.InsertField(3, "user.name", "Jane", inline.PlainStyle)
	if err != nil {
		t.Fatalf("InsertField failed: %v", err)
	}
	text.AddObserver(rec)
	if err := text.Delete(2, 4); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if text.String() != "abcd" {
		t.Fatalf("unexpected content: %q", text.String())
	}
	if _, err := text.Fields().ByID(f.ID); !errors.Is(err, ErrUnknownAnnotation) {
		t.Fatalf("field must be removed from its set, got %v", err)
	}
	if len(rec.removed) != 1 || rec.removed[0] != f.ID {
		t.Fatalf("expected removal notification for field %d, got %v", f.ID, rec.removed)
	}
}

func TestDeleteClampsPartiallyOverlappedSection(t *testing.T) {
	text := TextFromString("aaabbbccc")
	sec, err := text.AddSection(3, 6, "items")
	if err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	if err := text.Delete(4, 8); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if sec.From != 3 || sec.To != 4 {
		t.Fatalf("section must clamp to the cut: [%d,%d)", sec.From, sec.To)
	}
}

func TestDeleteRemovesContainedSection(t *testing.T) {
	rec := &recorder{}
	text := TextFromString("aaabbbccc")
	sec, err := text.AddSection(3, 6, "items")
	if err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	text.AddObserver(rec)
	if err := text.Delete(2, 7); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := text.Sections().ByID(sec.ID); !errors.Is(err, ErrUnknownAnnotation) {
		t.Fatalf("contained section must be removed, got %v", err)
	}
	if len(rec.removed) != 1 || rec.removed[0] != sec.ID {
		t.Fatalf("expected removal notification for section %d, got %v", sec.ID, rec.removed)
	}
}

func TestSectionsMayNotOverlap(t *testing.T) {
	text := TextFromString("0123456789")
	if _, err := text.AddSection(0, 5, "a"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	if _, err := text.AddSection(3, 8, "b"); !errors.Is(err, ErrOverlappingSection) {
		t.Fatalf("expected ErrOverlappingSection, got %v", err)
	}
	if _, err := text.AddSection(7, 5, "c"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for inverted range, got %v", err)
	}
	if _, err := text.AddSection(5, 10, "d"); err != nil {
		t.Fatalf("adjacent section must be accepted: %v", err)
	}
}

func TestParaStyleSnapsToParagraphs(t *testing.T) {
	text := TextFromString("first\nsecond\nthird")
	pf := ParaFormat{Align: AlignCenter}
	if err := text.ParaStyle(pf, 8, 9); err != nil {
		t.Fatalf("ParaStyle failed: %v", err)
	}
	if got := text.ParaFormatAt(6); got != pf {
		t.Fatalf("paragraph start must carry the format, got %v", got)
	}
	if got := text.ParaFormatAt(12); got != pf {
		t.Fatalf("paragraph terminator must carry the format, got %v", got)
	}
	if got := text.ParaFormatAt(5); got == pf {
		t.Fatalf("previous paragraph must not carry the format")
	}
	if got := text.ParaFormatAt(13); got == pf {
		t.Fatalf("next paragraph must not carry the format")
	}
}

func TestStyleCoalescing(t *testing.T) {
	text := TextFromString("0123456789")
	text.Style(inline.BoldStyle, 0, 4)
	text.Style(inline.BoldStyle, 4, 8)
	runs := text.StyleRuns()
	if len(runs) != 1 || runs[0].From != 0 || runs[0].To != 8 {
		t.Fatalf("adjacent equal runs must coalesce: %v", runs)
	}
	text.Style(inline.PlainStyle, 2, 6)
	runs = text.StyleRuns()
	if len(runs) != 2 {
		t.Fatalf("restyling to plain must split the run: %v", runs)
	}
	if runs[0].To != 2 || runs[1].From != 6 {
		t.Fatalf("unexpected remainders: %v", runs)
	}
}

func TestPlainStringRendersFields(t *testing.T) {
	text := TextFromString("Dear ,")
	if _, err := text.InsertField(5, "user.name", "Jane", inline.PlainStyle); err != nil {
		t.Fatalf("InsertField failed: %v", err)
	}
	if got := text.PlainString(0, text.Len()); got != "Dear Jane," {
		t.Fatalf("unexpected plain rendering: %q", got)
	}
	f, _ := text.Fields().At(5)
	f.Default = ""
	if got := text.PlainString(0, text.Len()); got != "Dear «user.name»," {
		t.Fatalf("unexpected fallback rendering: %q", got)
	}
}

func TestRemoveFieldDeletesPlaceholder(t *testing.T) {
	text := TextFromString("ab")
	f, err := text.InsertField(1, "x", "", inline.PlainStyle)
	if err != nil {
		t.Fatalf("InsertField failed: %v", err)
	}
	if text.Len() != 3 {
		t.Fatalf("placeholder must occupy one position, len=%d", text.Len())
	}
	if err := text.RemoveField(f.ID); err != nil {
		t.Fatalf("RemoveField failed: %v", err)
	}
	if text.String() != "ab" {
		t.Fatalf("placeholder must be deleted: %q", text.String())
	}
	if err := text.RemoveField(f.ID); !errors.Is(err, ErrUnknownAnnotation) {
		t.Fatalf("expected ErrUnknownAnnotation, got %v", err)
	}
}

func TestParagraphBounds(t *testing.T) {
	text := TextFromString("one\ntwo\nthree")
	if s := text.ParagraphStart(5); s != 4 {
		t.Errorf("ParagraphStart(5) = %d", s)
	}
	if e := text.ParagraphEnd(5); e != 8 {
		t.Errorf("ParagraphEnd(5) = %d", e)
	}
	if s := text.ParagraphStart(0); s != 0 {
		t.Errorf("ParagraphStart(0) = %d", s)
	}
	if e := text.ParagraphEnd(10); e != 13 {
		t.Errorf("ParagraphEnd(10) = %d", e)
	}
}
