/*
Package htmltext imports HTML fragments into styled texts.

The importer extracts the textual content of an HTML fragment into a
flowtext.Text, translating inline elements (b, i, em, strong, …) into
character styles and block boundaries into paragraph breaks. It does
no interpretation of CSS.

Status

Work in progress. API not stable.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package htmltext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowtext'
func tracer() tracing.Trace {
	return tracing.Select("flowtext")
}
