/*
Package merge resolves substitution fields and unrolls repeating
sections against a nested merge-data context.

Field paths are dot-separated keys into nested maps and arrays. Fields
inside a repeating section resolve relative to the section's current
iteration: the template range of a section bound to path "items" is
replicated once per element of the "items" array, and a field path
"items.name" resolves to "items.0.name", "items.1.name", … in the
respective copies.

Expansion is strictly a render-time operation. It produces an ephemeral
copy of the source text with sections unrolled and fields replaced by
their resolved values; the source text, including the one-copy template
ranges reported by its section set, is never touched. This edit/render
split is the central invariant of the subsystem.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package merge

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowtext'
func tracer() tracing.Trace {
	return tracing.Select("flowtext")
}
