package styledtext

import (
	"strings"

	"github.com/davral/styledtext-mcp/internal/colors"
	"github.com/davral/styledtext-mcp/internal/htmltag"
)

// handleInlineHTML interprets the two inline tag forms layered on top
// of markdown: <u> opens an underline span and <font color="..."> a
// color span, both closed through the same open-style stack as the
// markdown styles.
func (p *parser) handleInlineHTML(fragment string) error {
	if strings.HasPrefix(fragment, "</") {
		return p.closeInlineHTML(fragment)
	}

	tags, err := htmltag.Tokenize(fragment)
	if err != nil {
		return &UnimplementedHTMLEventError{HTML: fragment}
	}
	for _, tag := range tags {
		switch tag.Name {
		case "u":
			if len(tag.Attributes) > 0 {
				return &UnexpectedAttributeError{Attribute: tag.Attributes[0].Name, HTML: fragment}
			}
			paragraph, err := p.current()
			if err != nil {
				return err
			}
			p.spans.open(Style{Kind: Underline}, len(paragraph.Text))
		case "font":
			style, err := fontStyle(tag, fragment)
			if err != nil {
				return err
			}
			paragraph, err := p.current()
			if err != nil {
				return err
			}
			p.spans.open(style, len(paragraph.Text))
		default:
			return &UnimplementedHTMLTagError{Tag: tag.Name}
		}
	}
	return nil
}

func fontStyle(tag htmltag.StartTag, fragment string) (Style, error) {
	var argb uint32
	seen := false
	for _, attr := range tag.Attributes {
		if attr.Name != "color" {
			return Style{}, &UnexpectedAttributeError{Attribute: attr.Name, HTML: fragment}
		}
		value, ok := colors.Resolve(attr.Value)
		if !ok {
			return Style{}, &InvalidColorError{Value: attr.Value}
		}
		argb = value
		seen = true
	}
	if !seen {
		return Style{}, &MissingColorError{HTML: fragment}
	}
	return Style{Kind: Color, Color: argb}, nil
}

func (p *parser) closeInlineHTML(fragment string) error {
	style, start, err := p.spans.close()
	if err != nil {
		return err
	}

	var expected string
	switch style.Kind {
	case Color:
		expected = "</font>"
	case Underline:
		expected = "</u>"
	default:
		// The innermost open style came from markdown, not HTML.
		return &ClosingTagMismatchError{Actual: fragment}
	}
	if fragment != expected {
		return &ClosingTagMismatchError{Expected: expected, Actual: fragment}
	}

	paragraph, err := p.current()
	if err != nil {
		return err
	}
	paragraph.Formatting = append(paragraph.Formatting, FormattedSpan{
		Start: start,
		End:   len(paragraph.Text),
		Style: style,
	})
	return nil
}
