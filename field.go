package flowtext

import (
	"sort"

	"github.com/npillmayer/flowtext/inline"
)

// FieldRune is the placeholder character occupying the buffer position
// of a substitution field.
const FieldRune = '￻'

// Field is an inline substitution field: a single-position placeholder
// bound to a merge-data path, resolved to a value at merge time.
type Field struct {
	ID      int
	Index   int          // anchor position in the buffer
	Path    string       // dot-separated merge-data path
	Default string       // value to render when the path does not resolve
	Style   inline.Style // style of the rendered value
}

// Display returns the human-readable rendering of an unresolved field,
// synthesized at layout time.
func (f *Field) Display() string {
	if f.Default != "" {
		return f.Default
	}
	return "«" + f.Path + "»"
}

// FieldSet is the id→anchor mapping for the substitution fields of one
// text. Iteration order is ascending by anchor position; consumers
// depend on this order for flow order.
type FieldSet struct {
	fields map[int]*Field
}

func newFieldSet() *FieldSet {
	return &FieldSet{fields: make(map[int]*Field)}
}

func (fs *FieldSet) add(f *Field) {
	fs.fields[f.ID] = f
}

// ByID finds a field by its id.
func (fs *FieldSet) ByID(id int) (*Field, error) {
	f, ok := fs.fields[id]
	if !ok {
		return nil, ErrUnknownAnnotation
	}
	return f, nil
}

// At returns the field anchored at a buffer position, if any.
func (fs *FieldSet) At(index int) (*Field, bool) {
	for _, f := range fs.fields {
		if f.Index == index {
			return f, true
		}
	}
	return nil, false
}

// All returns all fields in ascending anchor order.
func (fs *FieldSet) All() []*Field {
	out := make([]*Field, 0, len(fs.fields))
	for _, f := range fs.fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// InRange returns the fields anchored within [from,to), ascending.
func (fs *FieldSet) InRange(from, to int) []*Field {
	var out []*Field
	for _, f := range fs.All() {
		if f.Index >= from && f.Index < to {
			out = append(out, f)
		}
	}
	return out
}

func (fs *FieldSet) remove(id int) error {
	if _, ok := fs.fields[id]; !ok {
		return ErrUnknownAnnotation
	}
	delete(fs.fields, id)
	return nil
}

func (fs *FieldSet) shiftInsert(i, l int) {
	for _, f := range fs.fields {
		if f.Index >= i {
			f.Index += l
		}
	}
}

// shiftDelete adjusts anchors for a deletion of [s,e) and returns the
// fields whose anchors fell inside the deleted span.
func (fs *FieldSet) shiftDelete(s, e int) []*Field {
	var removed []*Field
	for id, f := range fs.fields {
		switch {
		case f.Index < s:
		case f.Index >= e:
			f.Index -= e - s
		default:
			removed = append(removed, f)
			delete(fs.fields, id)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].Index < removed[j].Index })
	return removed
}
