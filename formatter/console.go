package formatter

/*
BSD 3-Clause License

Copyright (c) 2023–26, Norbert Pillmayer

Please refer to the LICENSE file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/flowtext"
	"github.com/npillmayer/flowtext/inline"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleFixedWidth is a formatting driver for consoles with a
// fixed-width font. It visualizes character styles with colors.
type ConsoleFixedWidth struct {
	colors map[inline.Style]*color.Color
}

// NewConsoleFixedWidthFormat creates a new console driver.
//
// colors is a map from styles to colors, used for display. It may
// contain just a subset of the styles used in the texts which will be
// handled by this driver; unmapped styles print unadorned.
func NewConsoleFixedWidthFormat(colors map[inline.Style]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{colors: colors}
	if fw.colors == nil {
		fw.colors = makeDefaultPalette()
	}
	return fw
}

func makeDefaultPalette() map[inline.Style]*color.Color {
	return map[inline.Style]*color.Color{
		inline.BoldStyle:      color.New(color.Bold),
		inline.ItalicsStyle:   color.New(color.Italic),
		inline.UnderlineStyle: color.New(color.Underline),
		inline.StrongStyle:    color.New(color.Bold, color.FgRed),
		inline.EmStyle:        color.New(color.Italic, color.FgBlue),
		inline.MarkedStyle:    color.New(color.BgYellow),
	}
}

// Print outputs a flowed text to stdout.
//
// If parameter config is nil, a heuristic will create a config from
// the current terminal's properties (if stdout is interactive).
// Config.Context will also be created based on heuristics from the
// user environment.
func (fw *ConsoleFixedWidth) Print(t *flowtext.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(t, os.Stdout, config, fw)
}

// StyledText is called by the formatting driver to output a sequence
// of uniformly styled text. It uses colors to visualize styles.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, sty inline.Style, w io.Writer) {
	if c, ok := fw.colors[sty]; ok {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// Object renders a short textual stand-in for an embedded object.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Object(obj flowtext.EmbeddedObject, w io.Writer) {
	fmt.Fprintf(w, "[%s]", obj.Kind())
}

// Preamble is called before the first page is formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {}

// Postamble is called after the last page has been formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {}

// BeginPage is called before each page; pages after the first print a
// rule as a page separator.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) BeginPage(n int, w io.Writer) {
	if n > 0 {
		w.Write([]byte("------------------------------- 8< -------------------------------\n"))
	}
}

// EndPage is called after each page.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) EndPage(w io.Writer) {}

// Line is called before each line of text; indent is the line's left
// offset in ‘en’s, produced by alignment and indents.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Line(indent int, w io.Writer) {
	for i := 0; i < indent; i++ {
		w.Write([]byte{' '})
	}
}

// Newline is called at the end of every formatted line of text.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	w.Write([]byte{'\n'})
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting
// Config. It checks wether stdout is a terminal, and if so it reads
// the terminal's size and sets Config.LineWidth and Config.PageHeight
// accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, h, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
			if h > 2 {
				config.PageHeight = h - 2
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
