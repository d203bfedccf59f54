package flowtext

import (
	"encoding/json"

	"github.com/npillmayer/flowtext/inline"
)

// Snapshot is a serializable image of a Text: content, formatting and
// annotations. It is the persistence boundary of the document model;
// derived layout is never persisted.
type Snapshot struct {
	Content  string            `json:"content"`
	Runs     []StyleRun        `json:"runs,omitempty"`
	ParaFmts []ParaRunSnapshot `json:"paragraphs,omitempty"`
	Fields   []FieldSnapshot   `json:"fields,omitempty"`
	Objects  []ObjectSnapshot  `json:"objects,omitempty"`
	Sections []Section         `json:"sections,omitempty"`
	NextID   int               `json:"nextId"`
}

// ParaRunSnapshot is the serialized form of one paragraph-format range.
type ParaRunSnapshot struct {
	From   int        `json:"from"`
	To     int        `json:"to"`
	Format ParaFormat `json:"format"`
}

// FieldSnapshot is the serialized form of a substitution field.
type FieldSnapshot struct {
	ID      int          `json:"id"`
	Index   int          `json:"index"`
	Path    string       `json:"path"`
	Default string       `json:"default,omitempty"`
	Style   inline.Style `json:"style,omitempty"`
}

// ObjectSnapshot is the serialized form of an embedded-object anchor.
// Exactly one of Image, TextBox and Table is set, matching Kind.
type ObjectSnapshot struct {
	ID        int        `json:"id"`
	Index     int        `json:"index"`
	Placement Placement  `json:"placement"`
	Kind      ObjectKind `json:"kind"`
	Image     *Image     `json:"image,omitempty"`
	TextBox   *TextBoxSnapshot `json:"textbox,omitempty"`
	Table     *Table     `json:"table,omitempty"`
}

// TextBoxSnapshot serializes a text box together with its content.
type TextBoxSnapshot struct {
	Width   float64   `json:"w"`
	Height  float64   `json:"h"`
	Content *Snapshot `json:"content"`
}

// Snapshot captures the current state of the text.
func (t *Text) Snapshot() *Snapshot {
	snap := &Snapshot{
		Content: string(t.content),
		Runs:    t.runs.Runs(),
		NextID:  t.nextID,
	}
	for _, pr := range t.parafmts.runs {
		snap.ParaFmts = append(snap.ParaFmts, ParaRunSnapshot{From: pr.From, To: pr.To, Format: pr.Format})
	}
	for _, f := range t.fields.All() {
		snap.Fields = append(snap.Fields, FieldSnapshot{
			ID: f.ID, Index: f.Index, Path: f.Path, Default: f.Default, Style: f.Style,
		})
	}
	for _, a := range t.objects.All() {
		snap.Objects = append(snap.Objects, snapshotAnchor(a))
	}
	for _, s := range t.sections.All() {
		snap.Sections = append(snap.Sections, *s)
	}
	return snap
}

func snapshotAnchor(a *Anchor) ObjectSnapshot {
	os := ObjectSnapshot{ID: a.ID, Index: a.Index, Placement: a.Placement, Kind: a.Object.Kind()}
	switch obj := a.Object.(type) {
	case *Image:
		os.Image = obj
	case *TextBox:
		os.TextBox = &TextBoxSnapshot{Width: obj.Width, Height: obj.Height, Content: obj.Content.Snapshot()}
	case *Table:
		os.Table = obj
	}
	return os
}

// TextFromSnapshot reconstructs a Text from a snapshot.
func TextFromSnapshot(snap *Snapshot) (*Text, error) {
	if snap == nil {
		return nil, ErrIllegalArguments
	}
	t := NewText()
	t.content = []rune(snap.Content)
	t.runs.runs = append(t.runs.runs[:0], snap.Runs...)
	for _, pr := range snap.ParaFmts {
		t.parafmts.runs = append(t.parafmts.runs, paraRun{From: pr.From, To: pr.To, Format: pr.Format})
	}
	for _, fs := range snap.Fields {
		t.fields.add(&Field{ID: fs.ID, Index: fs.Index, Path: fs.Path, Default: fs.Default, Style: fs.Style})
	}
	for _, os := range snap.Objects {
		obj, err := objectFromSnapshot(os)
		if err != nil {
			return nil, err
		}
		t.objects.add(&Anchor{ID: os.ID, Index: os.Index, Object: obj, Placement: os.Placement})
	}
	for _, s := range snap.Sections {
		sec := s
		if err := t.sections.add(&sec); err != nil {
			return nil, err
		}
	}
	t.nextID = snap.NextID
	return t, nil
}

func objectFromSnapshot(os ObjectSnapshot) (EmbeddedObject, error) {
	switch os.Kind {
	case KindImage:
		if os.Image == nil {
			return nil, ErrIllegalArguments
		}
		return os.Image, nil
	case KindTextBox:
		if os.TextBox == nil {
			return nil, ErrIllegalArguments
		}
		content, err := TextFromSnapshot(os.TextBox.Content)
		if err != nil {
			return nil, err
		}
		return &TextBox{Width: os.TextBox.Width, Height: os.TextBox.Height, Content: content}, nil
	case KindTable:
		if os.Table == nil {
			return nil, ErrIllegalArguments
		}
		return os.Table, nil
	}
	return nil, ErrIllegalArguments
}

// MarshalJSON implements json.Marshaler for whole texts.
func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Snapshot())
}

// UnmarshalJSON implements json.Unmarshaler for whole texts.
func (t *Text) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	restored, err := TextFromSnapshot(&snap)
	if err != nil {
		return err
	}
	*t = *restored
	return nil
}
