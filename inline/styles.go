package inline

import "fmt"

// Some standard text formats
const (
	PlainStyle Style = 0
	BoldStyle  Style = 1 << iota
	ItalicsStyle
	UnderlineStyle
	StrongStyle
	EmStyle
	SmallStyle
	MarkedStyle
)

func styleString(s Style) string {
	switch s {
	case PlainStyle:
		return "plain"
	case BoldStyle:
		return "b"
	case ItalicsStyle:
		return "i"
	case UnderlineStyle:
		return "u"
	case StrongStyle:
		return "strong"
	case EmStyle:
		return "em"
	case SmallStyle:
		return "small"
	case MarkedStyle:
		return "marked"
	}
	return fmt.Sprintf("Style(%d)", s)
}

// Style is a text style, applicable on runs of characters.
type Style int

func (s Style) Add(other Style) Style {
	return s | other
}

func (s Style) Minus(other Style) Style {
	return s & ^other
}

func (s Style) Contains(other Style) bool {
	return s&other == other
}

func (s Style) String() string {
	if s == 0 {
		return styleString(0)
	}
	str := ""
	for i := 0; i < 8; i++ {
		if s&(1<<i) > 0 {
			str = str + styleString(1<<i)
		}
	}
	if str != "" {
		return str
	}
	return styleString(s)
}

func (s Style) Equals(other Style) bool {
	return s == other
}
