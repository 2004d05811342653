// Package htmltag tokenizes the small inline HTML fragments that may
// appear inside markdown text, yielding start tags with their
// attributes.
package htmltag

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Attribute is a single name/value pair on a start tag.
type Attribute struct {
	Name  string
	Value string
}

// StartTag is one opening (or self-closing) tag found in a fragment.
type StartTag struct {
	Name       string
	Attributes []Attribute
}

// Tokenize splits one inline HTML fragment into its start tags.
// Anything that is not a start tag (text, comments, closing tags) is
// an error; closing tags are expected to be handled by the caller
// before tokenizing.
func Tokenize(fragment string) ([]StartTag, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var tags []StartTag
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("failed to tokenize inline html %q: %w", fragment, err)
			}
			return tags, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			tag := StartTag{Name: token.Data}
			for _, attr := range token.Attr {
				tag.Attributes = append(tag.Attributes, Attribute{Name: attr.Key, Value: attr.Val})
			}
			tags = append(tags, tag)
		default:
			return nil, fmt.Errorf("unsupported token in inline html %q", fragment)
		}
	}
}
