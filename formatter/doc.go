/*
Package formatter renders flowed pages on output devices.

The line breaker and the paginator decide where lines and pages end;
this package walks the resulting pages and hands uniformly styled text
spans to a formatting driver. Two drivers are included, one for
consoles with a fixed-width font and one for simple HTML output.
Substitution fields render their display value, inline objects are
delegated to the driver, and structural characters never reach it.

Think of this package in terms of `fmt.Println` for flowed, styled
text.

	text := flowtext.TextFromString("The quick brown fox")
	text.Style(inline.BoldStyle, 4, 9)

	console := formatter.NewConsoleFixedWidthFormat(nil, nil)
	console.Print(text, nil)

Status

Work in progress. API not stable.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowtext'
func tracer() tracing.Trace {
	return tracing.Select("flowtext")
}
