/*
Package region composes the document model and the layout engine into
independently flowed text contexts.

A region owns one flowtext.Text together with its annotation sets, and
flows it — via the line breaker and the paginator — against its own
width and height. The document body, page headers and footers, text
boxes and table cells are all regions; they differ only in how their
bounds on a page are derived. A region maps between global (page)
coordinates, region-local coordinates and buffer positions, which is
the basis for click and caret handling.

Exactly one region holds the caret at any time. Focus transfer always
blurs the previous owner — stopping its caret-blink timer — before
focusing the next one, so that no two blink timers are ever active
concurrently. The blink timer is an injected capability, keeping focus
behavior deterministic under test.

Every layout pass runs synchronously to completion on the caller's
goroutine. The engine performs no internal locking; callers must not
mutate a region's text while a layout call for it is in flight.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package region

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowtext'
func tracer() tracing.Trace {
	return tracing.Select("flowtext")
}
