package htmltext

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"io"
	"strings"

	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/inline"
	"golang.org/x/net/html"
)

// TextFromHTML creates a flowtext.Text from the textual content of an
// HTML fragment. Inline elements become character styles, block
// elements and `br` become paragraph breaks.
func TextFromHTML(input io.Reader) (*flowtext.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := newBuilder()
	for _, n := range nodes {
		b.collect(n, inline.PlainStyle)
	}
	return b.text(), nil
}

// InnerText creates a flowtext.Text for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (*flowtext.Text, error) {
	if n == nil {
		return nil, flowtext.ErrIllegalArguments
	}
	b := newBuilder()
	b.collect(n, inline.PlainStyle)
	return b.text(), nil
}

// blockElements end the current paragraph when closed.
var blockElements = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "li": true, "blockquote": true,
	"tr": true, "pre": true,
}

// skipElements contribute no visible text.
var skipElements = map[string]bool{
	"head": true, "script": true, "style": true, "title": true,
}

type builder struct {
	t       *flowtext.Text
	pending bool // a paragraph break is owed before the next text
}

func newBuilder() *builder {
	return &builder{t: flowtext.NewText()}
}

func (b *builder) text() *flowtext.Text {
	return b.t
}

func (b *builder) collect(n *html.Node, sty inline.Style) {
	switch n.Type {
	case html.ElementNode:
		if skipElements[n.Data] {
			return
		}
		if n.Data == "br" {
			b.breakParagraph()
			return
		}
		sty = sty.Add(inline.StyleFromHTMLName(n.Data))
	case html.TextNode:
		b.appendText(n.Data, sty)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.collect(c, sty)
	}
	if n.Type == html.ElementNode && blockElements[n.Data] {
		b.breakParagraph()
	}
}

// appendText appends a text node's content, collapsing the whitespace
// runs HTML sources carry for indentation.
func (b *builder) appendText(s string, sty inline.Style) {
	s = collapseSpace(s)
	if s == "" {
		return
	}
	if b.pending && b.t.Len() > 0 {
		b.t.Insert(b.t.Len(), string(flowtext.LineBreak))
	}
	b.pending = false
	at := b.t.Len()
	b.t.Insert(at, s)
	if sty != inline.PlainStyle {
		b.t.Style(sty, at, b.t.Len())
	}
}

func (b *builder) breakParagraph() {
	b.pending = true
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	out := strings.Join(fields, " ")
	if isSpace(rune(s[0])) {
		out = " " + out
	}
	if isSpace(rune(s[len(s)-1])) {
		out = out + " "
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
