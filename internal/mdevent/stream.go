// Package mdevent flattens a goldmark syntax tree into the ordered
// event sequence consumed by the styled text compiler. Only the
// strikethrough extension is enabled on top of CommonMark, so GFM
// constructs like tables and task lists never reach the stream.
package mdevent

import (
	"bytes"
	"iter"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Stream parses source as markdown and returns a lazy, single-pass
// sequence of events in document order.
func Stream(source []byte) iter.Seq[Event] {
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	root := md.Parser().Parse(text.NewReader(source))
	return func(yield func(Event) bool) {
		emit(root, source, yield)
	}
}

// emit yields the events for a single node and its children. It
// returns false as soon as the consumer stops the iteration.
func emit(node ast.Node, source []byte, yield func(Event) bool) bool {
	switch n := node.(type) {
	case *ast.Document:
		return children(n, source, yield)
	case *ast.TextBlock:
		// Tight list item content carries no paragraph of its own.
		return children(n, source, yield)
	case *ast.Paragraph:
		return wrap(n, source, yield, Tag{Kind: TagParagraph})
	case *ast.List:
		return wrap(n, source, yield, Tag{Kind: TagList, Ordered: n.IsOrdered(), Start: n.Start})
	case *ast.ListItem:
		return wrap(n, source, yield, Tag{Kind: TagItem})
	case *ast.Heading:
		return wrap(n, source, yield, Tag{Kind: TagHeading})
	case *ast.Blockquote:
		return wrap(n, source, yield, Tag{Kind: TagBlockQuote})
	case *ast.CodeBlock:
		return wrap(n, source, yield, Tag{Kind: TagCodeBlock})
	case *ast.FencedCodeBlock:
		return wrap(n, source, yield, Tag{Kind: TagCodeBlock})
	case *ast.ThematicBreak:
		return yield(Event{Kind: EventRule})
	case *ast.HTMLBlock:
		return yield(Event{Kind: EventHTMLBlock})
	case *ast.Text:
		if !yield(Event{Kind: EventText, Text: string(n.Segment.Value(source))}) {
			return false
		}
		if n.HardLineBreak() {
			return yield(Event{Kind: EventHardBreak})
		}
		if n.SoftLineBreak() {
			return yield(Event{Kind: EventSoftBreak})
		}
		return true
	case *ast.String:
		return yield(Event{Kind: EventText, Text: string(n.Value)})
	case *ast.CodeSpan:
		return yield(Event{Kind: EventCode, Text: childText(n, source)})
	case *ast.Emphasis:
		tag := Tag{Kind: TagEmphasis}
		if n.Level == 2 {
			tag.Kind = TagStrong
		}
		return wrap(n, source, yield, tag)
	case *extast.Strikethrough:
		return wrap(n, source, yield, Tag{Kind: TagStrikethrough})
	case *ast.Link:
		return wrap(n, source, yield, Tag{Kind: TagLink, URL: string(n.Destination)})
	case *ast.AutoLink:
		url := string(n.URL(source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		tag := Tag{Kind: TagLink, URL: url}
		if !yield(Event{Kind: EventStart, Tag: tag}) {
			return false
		}
		if !yield(Event{Kind: EventText, Text: string(n.Label(source))}) {
			return false
		}
		return yield(Event{Kind: EventEnd, Tag: tag})
	case *ast.Image:
		return wrap(n, source, yield, Tag{Kind: TagImage})
	case *ast.RawHTML:
		return yield(Event{Kind: EventInlineHTML, Text: segmentsText(n.Segments, source)})
	default:
		// Nodes produced by extensions this stream does not enable
		// (tables, footnotes, ...) surface as an unsupported tag so
		// the consumer can reject them with a diagnostic.
		return yield(Event{Kind: EventStart, Tag: Tag{Kind: TagUnsupported, Name: node.Kind().String()}})
	}
}

func wrap(n ast.Node, source []byte, yield func(Event) bool, tag Tag) bool {
	if !yield(Event{Kind: EventStart, Tag: tag}) {
		return false
	}
	if !children(n, source, yield) {
		return false
	}
	return yield(Event{Kind: EventEnd, Tag: tag})
}

func children(n ast.Node, source []byte, yield func(Event) bool) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if !emit(c, source, yield) {
			return false
		}
	}
	return true
}

// childText concatenates the text segments of a node's direct
// children, used for code spans whose content is stored as raw text
// children.
func childText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}

func segmentsText(segments *text.Segments, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
