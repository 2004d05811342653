package tools

import (
	"fmt"

	"github.com/davral/styledtext-mcp/internal/styledtext"
)

// FormattedSpanOutput is the wire form of a formatting span. Offsets
// are byte offsets into the paragraph text.
type FormattedSpanOutput struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style"`
	Color string `json:"color,omitempty"` // #aarrggbb, color style only
}

// LinkOutput is the wire form of a link target span.
type LinkOutput struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	URL   string `json:"url"`
}

// ParagraphOutput is the wire form of one styled paragraph.
type ParagraphOutput struct {
	Text       string                `json:"text"`
	Formatting []FormattedSpanOutput `json:"formatting,omitempty"`
	Links      []LinkOutput          `json:"links,omitempty"`
}

// StyledTextOutput is the wire form of a compiled document.
type StyledTextOutput struct {
	Paragraphs []ParagraphOutput `json:"paragraphs"`
}

// NewStyledTextOutput converts compiled styled text to its wire form.
func NewStyledTextOutput(st *styledtext.StyledText) StyledTextOutput {
	out := StyledTextOutput{Paragraphs: make([]ParagraphOutput, 0, len(st.Paragraphs))}
	for _, paragraph := range st.Paragraphs {
		p := ParagraphOutput{Text: paragraph.Text}
		for _, span := range paragraph.Formatting {
			s := FormattedSpanOutput{
				Start: span.Start,
				End:   span.End,
				Style: span.Style.Kind.String(),
			}
			if span.Style.Kind == styledtext.Color {
				s.Color = fmt.Sprintf("#%08x", span.Style.Color)
			}
			p.Formatting = append(p.Formatting, s)
		}
		for _, link := range paragraph.Links {
			p.Links = append(p.Links, LinkOutput{Start: link.Start, End: link.End, URL: link.URL})
		}
		out.Paragraphs = append(out.Paragraphs, p)
	}
	return out
}
