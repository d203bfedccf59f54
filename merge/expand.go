package merge

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/flowtext"
)

// ExpandedText produces the render-time expansion of a text against
// merge data: repeating-section templates are unrolled once per array
// element and substitution fields are replaced by their resolved
// values, rendered in the field's style. The result is an ephemeral
// text carrying neither fields nor sections; src is never mutated.
//
// An unresolved field path falls back to the field's display rendering;
// it never aborts the expansion.
func ExpandedText(src *flowtext.Text, ctx Context) (*flowtext.Text, error) {
	dst := flowtext.NewText()
	pos := 0
	for _, sec := range src.Sections().All() {
		if sec.From > pos {
			if err := copyRange(dst, src, pos, sec.From, ctx, "", -1); err != nil {
				return nil, err
			}
		}
		arr := ctx.Array(sec.Path)
		tracer().Debugf("unrolling section %q %d times", sec.Path, len(arr))
		for k := range arr {
			if err := copyRange(dst, src, sec.From, sec.To, ctx, sec.Path, k); err != nil {
				return nil, err
			}
		}
		pos = sec.To
	}
	if err := copyRange(dst, src, pos, src.Len(), ctx, "", -1); err != nil {
		return nil, err
	}
	return dst, nil
}

// copyRange appends the source range [from,to) to dst, resolving fields
// against ctx. Fields inside a section copy resolve relative to
// iteration iter of the section bound to secPath.
func copyRange(dst, src *flowtext.Text, from, to int, ctx Context, secPath string, iter int) error {
	i := from
	for i < to {
		switch src.Rune(i) {
		case flowtext.FieldRune:
			if f, ok := src.Fields().At(i); ok {
				if err := appendField(dst, f, ctx, secPath, iter); err != nil {
					return err
				}
			}
			i++
		case flowtext.ObjectRune:
			if a, ok := src.Objects().At(i); ok {
				obj, err := expandObject(a.Object, ctx)
				if err != nil {
					return err
				}
				if _, err := dst.InsertObject(dst.Len(), obj, a.Placement); err != nil {
					return err
				}
			}
			i++
		default:
			j := i + 1
			for j < to && src.Rune(j) != flowtext.FieldRune && src.Rune(j) != flowtext.ObjectRune {
				j++
			}
			if err := appendSpan(dst, src, i, j); err != nil {
				return err
			}
			i = j
		}
	}
	return nil
}

// appendSpan copies plain content with its character styles and
// paragraph formats.
func appendSpan(dst, src *flowtext.Text, from, to int) error {
	at := dst.Len()
	if err := dst.Insert(at, src.Slice(from, to)); err != nil {
		return err
	}
	for _, r := range src.StyleSection(from, to) {
		if err := dst.Style(r.Style, at+r.From, at+r.To); err != nil {
			return err
		}
	}
	k := from
	for k < to {
		pf := src.ParaFormatAt(k)
		e := k + 1
		for e < to && src.ParaFormatAt(e) == pf {
			e++
		}
		if pf != (flowtext.ParaFormat{}) {
			if err := dst.ParaStyle(pf, at+(k-from), at+(e-from)); err != nil {
				return err
			}
		}
		k = e
	}
	return nil
}

func appendField(dst *flowtext.Text, f *flowtext.Field, ctx Context, secPath string, iter int) error {
	path := iterationPath(f.Path, secPath, iter)
	val, err := ctx.String(path)
	if err != nil {
		if !errors.Is(err, ErrUnresolvedPath) {
			return err
		}
		tracer().Infof("field path %q unresolved, falling back to default", path)
		val = f.Display()
	}
	at := dst.Len()
	if err := dst.Insert(at, val); err != nil {
		return err
	}
	if len(val) > 0 {
		return dst.Style(f.Style, at, dst.Len())
	}
	return nil
}

// iterationPath substitutes the iteration index of the enclosing
// repeating section into a field path: inside iteration 2 of a section
// bound to "items", the field path "items.name" becomes "items.2.name".
func iterationPath(path, secPath string, iter int) string {
	if iter < 0 || secPath == "" {
		return path
	}
	if path == secPath {
		return secPath + "." + strconv.Itoa(iter)
	}
	if strings.HasPrefix(path, secPath+".") {
		return secPath + "." + strconv.Itoa(iter) + path[len(secPath):]
	}
	return path
}

// expandObject recursively expands text-box content; other object kinds
// are shared with the source, as expansion never mutates objects.
func expandObject(obj flowtext.EmbeddedObject, ctx Context) (flowtext.EmbeddedObject, error) {
	if tb, ok := obj.(*flowtext.TextBox); ok && tb.Content != nil {
		content, err := ExpandedText(tb.Content, ctx)
		if err != nil {
			return nil, err
		}
		return &flowtext.TextBox{Width: tb.Width, Height: tb.Height, Content: content}, nil
	}
	return obj, nil
}
