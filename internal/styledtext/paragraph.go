package styledtext

import (
	"fmt"
	"strings"
)

// Bullet glyphs rotate with the nesting depth of unordered lists.
var bullets = [3]string{"• ", "◦ ", "▪ "}

// beginParagraph appends a new paragraph, rendering the indentation
// and list prefix as literal text. The prefix is plain text: it
// receives no formatting span, it only contributes to the offsets of
// spans opened later. item is nil outside list items.
func (p *parser) beginParagraph(item *listItem) {
	indentation := len(p.lists) - 1
	if indentation < 0 {
		indentation = 0
	}
	var b strings.Builder
	b.Grow(indentation * 4)
	for range indentation {
		b.WriteString("    ")
	}
	if item != nil {
		if item.ordered {
			fmt.Fprintf(&b, "%d. ", item.ordinal)
		} else {
			b.WriteString(bullets[indentation%3])
		}
	}
	p.paragraphs = append(p.paragraphs, Paragraph{Text: b.String()})
}
