/*
Package paginate groups flowed lines into pages.

The paginator consumes the full ordered line sequence of a region and a
fixed page-content-height budget. Cumulative line height per page never
exceeds the budget and a page boundary never splits a line; an explicit
page-break marker forces a new page regardless of the space remaining.
Embedded tables which do not fit the remaining height of their anchor
page are split into row slices with header repetition instead of being
moved to the next page wholesale.

Pages, like lines, are derived state: every layout pass rebuilds them
from scratch, continuation slices included, so that stale layout can
never survive a row-height change.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package paginate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowtext'
func tracer() tracing.Trace {
	return tracing.Select("flowtext")
}
