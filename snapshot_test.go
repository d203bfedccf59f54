package flowtext

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/flowtext/inline"
)

func buildDocument(t *testing.T) *Text {
	t.Helper()
	text := TextFromString("Dear ,\nyour items:\n")
	text.Style(inline.BoldStyle, 0, 4)
	if _, err := text.InsertField(5, "user.name", "Jane", inline.EmStyle); err != nil {
		t.Fatalf("InsertField failed: %v", err)
	}
	if _, err := text.AddSection(8, 19, "items"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	inner := TextFromString("boxed")
	box := &TextBox{Width: 100, Height: 40, Content: inner}
	if _, err := text.InsertObject(text.Len(), box, PlaceBlock); err != nil {
		t.Fatalf("InsertObject failed: %v", err)
	}
	text.ParaStyle(ParaFormat{Align: AlignJustify}, 0, 6)
	return text
}

func TestSnapshotRoundTrip(t *testing.T) {
	text := buildDocument(t)
	restored, err := TextFromSnapshot(text.Snapshot())
	if err != nil {
		t.Fatalf("TextFromSnapshot failed: %v", err)
	}
	assertEqualTexts(t, text, restored)
}

func TestJSONRoundTrip(t *testing.T) {
	text := buildDocument(t)
	data, err := json.Marshal(text)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	restored := &Text{}
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	assertEqualTexts(t, text, restored)
	// ids allocated after restore must not collide with persisted ones
	f, err := restored.InsertField(0, "x", "", inline.PlainStyle)
	if err != nil {
		t.Fatalf("InsertField failed: %v", err)
	}
	for _, existing := range text.Fields().All() {
		if existing.ID == f.ID {
			t.Fatalf("id %d reused after restore", f.ID)
		}
	}
}

func assertEqualTexts(t *testing.T, want, got *Text) {
	t.Helper()
	if got.String() != want.String() {
		t.Fatalf("content mismatch: %q != %q", got.String(), want.String())
	}
	wr, gr := want.StyleRuns(), got.StyleRuns()
	if len(wr) != len(gr) {
		t.Fatalf("style run mismatch: %v != %v", gr, wr)
	}
	for i := range wr {
		if wr[i] != gr[i] {
			t.Fatalf("style run %d mismatch: %v != %v", i, gr[i], wr[i])
		}
	}
	for pos := 0; pos < want.Len(); pos++ {
		if want.ParaFormatAt(pos) != got.ParaFormatAt(pos) {
			t.Fatalf("paragraph format mismatch at %d", pos)
		}
	}
	wf, gf := want.Fields().All(), got.Fields().All()
	if len(wf) != len(gf) {
		t.Fatalf("field count mismatch: %d != %d", len(gf), len(wf))
	}
	for i := range wf {
		if *wf[i] != *gf[i] {
			t.Fatalf("field %d mismatch: %+v != %+v", i, gf[i], wf[i])
		}
	}
	wo, gobj := want.Objects().All(), got.Objects().All()
	if len(wo) != len(gobj) {
		t.Fatalf("object count mismatch: %d != %d", len(gobj), len(wo))
	}
	for i := range wo {
		if wo[i].ID != gobj[i].ID || wo[i].Index != gobj[i].Index || wo[i].Placement != gobj[i].Placement {
			t.Fatalf("anchor %d mismatch: %+v != %+v", i, gobj[i], wo[i])
		}
		if wo[i].Object.Kind() != gobj[i].Object.Kind() {
			t.Fatalf("object %d kind mismatch", i)
		}
	}
	ws, gs := want.Sections().All(), got.Sections().All()
	if len(ws) != len(gs) {
		t.Fatalf("section count mismatch: %d != %d", len(gs), len(ws))
	}
	for i := range ws {
		if *ws[i] != *gs[i] {
			t.Fatalf("section %d mismatch: %+v != %+v", i, gs[i], ws[i])
		}
	}
}

func TestTextBoxContentSurvivesSnapshot(t *testing.T) {
	text := NewText()
	inner := TextFromString("inner text")
	inner.Style(inline.BoldStyle, 0, 5)
	if _, err := text.InsertObject(0, &TextBox{Width: 80, Height: 20, Content: inner}, PlaceInline); err != nil {
		t.Fatalf("InsertObject failed: %v", err)
	}
	restored, err := TextFromSnapshot(text.Snapshot())
	if err != nil {
		t.Fatalf("TextFromSnapshot failed: %v", err)
	}
	a, ok := restored.Objects().At(0)
	if !ok {
		t.Fatalf("anchor lost")
	}
	box, ok := a.Object.(*TextBox)
	if !ok {
		t.Fatalf("object kind lost: %T", a.Object)
	}
	if box.Content.String() != "inner text" {
		t.Fatalf("nested content lost: %q", box.Content.String())
	}
	if runs := box.Content.StyleRuns(); len(runs) != 1 || runs[0].To != 5 {
		t.Fatalf("nested styles lost: %v", runs)
	}
}
