package inline

// StyleFromHTMLName returns the style corresponding to an inline HTML
// element name, e.g. BoldStyle for "b". Unknown element names map to
// PlainStyle.
func StyleFromHTMLName(name string) Style {
	switch name {
	case "b":
		return BoldStyle
	case "i":
		return ItalicsStyle
	case "u":
		return UnderlineStyle
	case "strong":
		return StrongStyle
	case "em":
		return EmStyle
	case "small":
		return SmallStyle
	case "mark":
		return MarkedStyle
	}
	return PlainStyle
}

// HTMLNames returns the inline HTML element names for every style bit
// set in s, in document-source nesting order.
func HTMLNames(s Style) []string {
	var names []string
	for _, bit := range []Style{BoldStyle, ItalicsStyle, UnderlineStyle, StrongStyle, EmStyle, SmallStyle, MarkedStyle} {
		if s.Contains(bit) {
			names = append(names, htmlName(bit))
		}
	}
	return names
}

func htmlName(s Style) string {
	if s == MarkedStyle {
		return "mark"
	}
	return styleString(s)
}
