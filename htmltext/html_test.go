package htmltext

import (
	"strings"
	"testing"

	"github.com/npillmayer/flowtext/inline"
	"golang.org/x/net/html"
)

func TestHTMLParse(t *testing.T) {
	r := strings.NewReader(`<p>My <b>first</b> paragraph.</p><p>Second</p>`)
	text, err := TextFromHTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if text.String() != "My first paragraph.\nSecond" {
		t.Fatalf("unexpected text: %q", text.String())
	}
	runs := text.StyleRuns()
	if len(runs) != 1 || runs[0].From != 3 || runs[0].To != 8 || runs[0].Style != inline.BoldStyle {
		t.Fatalf("unexpected style runs: %v", runs)
	}
}

func TestHTMLNestedStyles(t *testing.T) {
	r := strings.NewReader(`<p><em>very <strong>important</strong></em></p>`)
	text, err := TextFromHTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if text.String() != "very important" {
		t.Fatalf("unexpected text: %q", text.String())
	}
	if sty := text.StyleAt(2); !sty.Contains(inline.EmStyle) || sty.Contains(inline.StrongStyle) {
		t.Fatalf("unexpected style at 2: %v", sty)
	}
	if sty := text.StyleAt(7); !sty.Contains(inline.EmStyle) || !sty.Contains(inline.StrongStyle) {
		t.Fatalf("nested elements must combine styles: %v", sty)
	}
}

func TestHTMLLineBreaks(t *testing.T) {
	r := strings.NewReader(`one<br>two`)
	text, err := TextFromHTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if text.String() != "one\ntwo" {
		t.Fatalf("unexpected text: %q", text.String())
	}
}

func TestHTMLCollapsesIndentation(t *testing.T) {
	r := strings.NewReader(`
	<p>
		My	first
		paragraph.
	</p>
`)
	text, err := TextFromHTML(r)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(text.String())
	if got != "My first paragraph." {
		t.Fatalf("source indentation must collapse: %q", got)
	}
}

func TestHTMLSkipsInvisibleElements(t *testing.T) {
	r := strings.NewReader(`<head><title>nope</title></head><body><script>var x;</script>yes</body>`)
	text, err := TextFromHTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if text.String() != "yes" {
		t.Fatalf("unexpected text: %q", text.String())
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`
	<!DOCTYPE html>
	<html>
	<body>
	<h1>My First Heading</h1>
	<p>My <b>first</b> paragraph.</p>
	</body>
	</html>
`))
	if err != nil {
		t.Fatal(err)
	}
	text, err := InnerText(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text.String(), "My First Heading\nMy first paragraph.") {
		t.Fatalf("unexpected text: %q", text.String())
	}
}
