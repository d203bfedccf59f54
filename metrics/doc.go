/*
Package metrics provides ready-made Measurer implementations for the
layout engine.

Two measurers are included: a fixed-width measurer for cell-addressed
output devices, deriving character widths from UAX#11 East Asian width
over grapheme clusters, and a font-face measurer deriving pixel widths
and vertical metrics from golang.org/x/image font faces.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowtext'
func tracer() tracing.Trace {
	return tracing.Select("flowtext")
}
