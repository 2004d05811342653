// Package styledtext compiles markdown into paragraphs of plain text
// with out-of-band formatting metadata, so a rendering layer can draw
// rich text without markup embedded in the text buffer. Format
// strings may contain {} and {N} placeholders that splice in
// pre-parsed styled text with offset-translated spans.
package styledtext

import "strings"

// StyleKind enumerates the styles that can be applied to a text span.
type StyleKind int

const (
	Emphasis StyleKind = iota
	Strong
	Strikethrough
	Code
	LinkStyle
	Underline
	Color
)

var styleNames = map[StyleKind]string{
	Emphasis:      "emphasis",
	Strong:        "strong",
	Strikethrough: "strikethrough",
	Code:          "code",
	LinkStyle:     "link",
	Underline:     "underline",
	Color:         "color",
}

func (k StyleKind) String() string {
	if name, ok := styleNames[k]; ok {
		return name
	}
	return "unknown"
}

// Style is a style kind plus its payload. Color holds a packed ARGB
// value and is only meaningful for the Color kind.
type Style struct {
	Kind  StyleKind
	Color uint32
}

// FormattedSpan applies a style to a half-open byte range of the
// owning paragraph's text. Spans may overlap; a link nested inside
// emphasis produces two spans with the same range.
type FormattedSpan struct {
	Start int
	End   int
	Style Style
}

// Link records the clickable target for a byte range of the owning
// paragraph's text.
type Link struct {
	Start int
	End   int
	URL   string
}

// Paragraph is one section of styled text, split up by a line break
// or list item. Formatting and Links are in insertion order, not
// sorted by range.
type Paragraph struct {
	Text       string
	Formatting []FormattedSpan
	Links      []Link
}

// StyledText is markdown that has been parsed and separated into
// paragraphs. It is both the output of parsing and the accepted input
// type for interpolation arguments.
type StyledText struct {
	Paragraphs []Paragraph
}

// FromPlainText wraps text into a single unstyled paragraph, suitable
// as an interpolation argument.
func FromPlainText(text string) *StyledText {
	return &StyledText{Paragraphs: []Paragraph{{Text: text}}}
}

// RawText returns the text of all paragraphs joined by newlines,
// dropping all formatting.
func (st *StyledText) RawText() string {
	switch len(st.Paragraphs) {
	case 0:
		return ""
	case 1:
		return st.Paragraphs[0].Text
	}
	var b strings.Builder
	for i, p := range st.Paragraphs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// EscapeMarkdown escapes the characters that would otherwise be
// interpreted as markdown or inline HTML, so arbitrary text can be
// embedded in a format string verbatim.
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '*':
			b.WriteString(`\*`)
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '_':
			b.WriteString(`\_`)
		case '#':
			b.WriteString(`\#`)
		case '-':
			b.WriteString(`\-`)
		case '`':
			b.WriteString("\\`")
		case '&':
			b.WriteString(`\&`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
