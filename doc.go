/*
Package flowtext implements the document model of a flowing-text layout
engine: an indexed character buffer, carrying formatting runs and
paragraph formats, together with annotations anchored at buffer
positions (substitution fields, embedded objects, repeating sections).

Flowing Text

Flowing text is the logical content of a document which reflows to fit
the width and height of its container. The model deliberately separates
three layers:

▪︎ the character sequence itself, edited with Insert and Delete,

▪︎ index-anchored annotations layered over the sequence, which shift in
lock-step with every edit,

▪︎ derived visual layout (lines and pages), which is not part of this
package; see flowtext/layout and flowtext/layout/paginate.

The hard part of such a model is keeping the second layer consistent
with the first under continuous edits. Every mutation of the buffer is
propagated synchronously to the formatting runs, the paragraph formats
and the three annotation sets, following one index-shift contract:
after inserting L characters at position i, an anchor a becomes a+L iff
a ≥ i; after deleting [s,e), an anchor inside the deleted span is
removed (with notification), and all anchors at or beyond e move left
by e−s.

Substitution fields and embedded objects occupy exactly one buffer
position each, represented by a placeholder character, so that index
arithmetic stays uniform across plain text and annotations. Repeating
sections span a contiguous range of the buffer, the template, which is
virtually unrolled at merge time by package flowtext/merge; the editing
API of this package always addresses the single template copy.

Status

API not stable.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.

*/
package flowtext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
