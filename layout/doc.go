/*
Package layout breaks flowing text into lines.

The line breaker consumes a range of a flowtext.Text, an available width
and a Measurer capability, and produces an ordered sequence of flowed
lines. Breaking is greedy first-fit on UAX#14 break opportunities:
fragments are accumulated while the projected line width stays within
the available width, and the line is closed before the fragment that
would overflow it. A single fragment, field or object wider than the
available width stands alone on a line of its own; there is no
character-level splitting.

Lines are ephemeral, derived state. They are recomputed from scratch on
every layout pass and are never patched incrementally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowtext'
func tracer() tracing.Trace {
	return tracing.Select("flowtext")
}
