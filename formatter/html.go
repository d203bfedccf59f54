package formatter

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"fmt"
	"io"

	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/inline"
	"golang.org/x/net/html"
)

// HTML is a driver for simple HTML output. Pages become `div` elements
// of class "page", styles become the inline elements they correspond
// to (b, i, em, …).
type HTML struct{}

// NewHTML creates an HTML formatting driver.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs a flowed text as HTML.
//
// If parameter config is nil, a default configuration will be used.
func (h *HTML) Print(t *flowtext.Text, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{LineWidth: 40}
	}
	return Output(t, w, config, h)
}

// StyledText is called by the formatting driver to output a sequence
// of uniformly styled text, wrapped in the style's inline elements.
// (Part of interface Format)
func (h *HTML) StyledText(s string, sty inline.Style, w io.Writer) {
	names := inline.HTMLNames(sty)
	for _, name := range names {
		fmt.Fprintf(w, "<%s>", name)
	}
	w.Write([]byte(html.EscapeString(s)))
	for i := len(names) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "</%s>", names[i])
	}
}

// Object renders a placeholder element for an embedded object.
// (Part of interface Format)
func (h *HTML) Object(obj flowtext.EmbeddedObject, w io.Writer) {
	ow, oh := obj.Size()
	fmt.Fprintf(w, "<span class=\"object %s\" style=\"width:%gpx;height:%gpx\"></span>", obj.Kind(), ow, oh)
}

// Preamble outputs a `pre` tag.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	w.Write([]byte("<pre>\n"))
}

// Postamble outputs the closing `pre` tag.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	w.Write([]byte("</pre>\n"))
}

// BeginPage opens a page container.
// (Part of interface Format)
func (h *HTML) BeginPage(n int, w io.Writer) {
	fmt.Fprintf(w, "<div class=\"page\" data-page=\"%d\">\n", n)
}

// EndPage closes the page container.
// (Part of interface Format)
func (h *HTML) EndPage(w io.Writer) {
	w.Write([]byte("</div>\n"))
}

// Line indents the line with non-breaking spaces.
// (Part of interface Format)
func (h *HTML) Line(indent int, w io.Writer) {
	for i := 0; i < indent; i++ {
		w.Write([]byte("&nbsp;"))
	}
}

// Newline outputs a `br` tag.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	w.Write([]byte("<br>\n"))
}
