package styledtext

import (
	"github.com/davral/styledtext-mcp/internal/mdevent"
)

// Parse compiles a markdown string into styled text. Strikethrough is
// supported in addition to CommonMark inline styles; headings,
// images, tables, block quotes, code blocks and other block
// constructs are rejected with a typed error.
func Parse(markdown string) (*StyledText, error) {
	return ParseInterpolated(markdown)
}

// ParseInterpolated compiles a markdown format string, splicing the
// given pre-parsed arguments into its {} or {N} placeholders. Each
// argument must consist of exactly one paragraph; its formatting and
// link spans are offset-translated to the insertion point. Implicit
// and positional placeholders cannot be mixed, and the placeholder
// count must cover the argument list.
func ParseInterpolated(format string, args ...*StyledText) (*StyledText, error) {
	p := &parser{args: args}
	for ev := range mdevent.Stream([]byte(format)) {
		if err := p.handle(ev); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return &StyledText{Paragraphs: p.paragraphs}, nil
}

// listState is one entry of the list nesting stack: whether the list
// is ordered and, if so, the ordinal of its next item.
type listState struct {
	ordered bool
	next    int
}

// listItem describes the prefix of a list item paragraph.
type listItem struct {
	ordered bool
	ordinal int
}

// parser holds all state of one in-progress parse. Each call owns its
// own instance, so concurrent parses need no locking.
type parser struct {
	paragraphs []Paragraph
	lists      []listState
	spans      spanStack

	// pendingURL is captured from a link start event and attached to
	// the first span that closes afterwards.
	pendingURL *string

	args          []*StyledText
	implicitCount int
	maxExplicit   int
}

// current returns the paragraph under construction.
func (p *parser) current() (*Paragraph, error) {
	if len(p.paragraphs) == 0 {
		return nil, ErrParagraphNotStarted
	}
	return &p.paragraphs[len(p.paragraphs)-1], nil
}

func (p *parser) handle(ev mdevent.Event) error {
	switch ev.Kind {
	case mdevent.EventSoftBreak, mdevent.EventHardBreak:
		p.beginParagraph(nil)
		return nil
	case mdevent.EventStart:
		return p.handleStart(ev.Tag)
	case mdevent.EventEnd:
		return p.handleEnd(ev.Tag)
	case mdevent.EventText:
		paragraph, err := p.current()
		if err != nil {
			return err
		}
		return p.substitute(paragraph, ev.Text)
	case mdevent.EventCode:
		paragraph, err := p.current()
		if err != nil {
			return err
		}
		// A code span is intrinsically balanced, so it bypasses the
		// open-style stack.
		start := len(paragraph.Text)
		if err := p.substitute(paragraph, ev.Text); err != nil {
			return err
		}
		paragraph.Formatting = append(paragraph.Formatting, FormattedSpan{
			Start: start,
			End:   len(paragraph.Text),
			Style: Style{Kind: Code},
		})
		return nil
	case mdevent.EventInlineHTML:
		return p.handleInlineHTML(ev.Text)
	default:
		return &UnimplementedEventError{Event: ev.Kind.String()}
	}
}

func (p *parser) handleStart(tag mdevent.Tag) error {
	var style Style
	switch tag.Kind {
	case mdevent.TagParagraph:
		p.beginParagraph(nil)
		return nil
	case mdevent.TagItem:
		var item listItem
		if n := len(p.lists); n > 0 && p.lists[n-1].ordered {
			item = listItem{ordered: true, ordinal: p.lists[n-1].next}
			p.lists[n-1].next++
		}
		p.beginParagraph(&item)
		return nil
	case mdevent.TagList:
		p.lists = append(p.lists, listState{ordered: tag.Ordered, next: tag.Start})
		return nil
	case mdevent.TagStrong:
		style = Style{Kind: Strong}
	case mdevent.TagEmphasis:
		style = Style{Kind: Emphasis}
	case mdevent.TagStrikethrough:
		style = Style{Kind: Strikethrough}
	case mdevent.TagLink:
		url := tag.URL
		p.pendingURL = &url
		style = Style{Kind: LinkStyle}
	default:
		name := tag.Kind.String()
		if tag.Kind == mdevent.TagUnsupported {
			name = tag.Name
		}
		return &UnimplementedTagError{Tag: name}
	}

	paragraph, err := p.current()
	if err != nil {
		return err
	}
	p.spans.open(style, len(paragraph.Text))
	return nil
}

func (p *parser) handleEnd(tag mdevent.Tag) error {
	switch tag.Kind {
	case mdevent.TagList:
		if len(p.lists) == 0 {
			return ErrPop
		}
		p.lists = p.lists[:len(p.lists)-1]
		return nil
	case mdevent.TagParagraph, mdevent.TagItem:
		return nil
	}

	style, start, err := p.spans.close()
	if err != nil {
		return err
	}
	paragraph, err := p.current()
	if err != nil {
		return err
	}
	end := len(paragraph.Text)
	if p.pendingURL != nil {
		paragraph.Links = append(paragraph.Links, Link{Start: start, End: end, URL: *p.pendingURL})
		p.pendingURL = nil
	}
	paragraph.Formatting = append(paragraph.Formatting, FormattedSpan{Start: start, End: end, Style: style})
	return nil
}

// finish validates the placeholder bookkeeping and the balance of the
// open-style stack once the event stream is exhausted.
func (p *parser) finish() error {
	if p.implicitCount > 0 && p.maxExplicit > 0 {
		return ErrMixedPlaceholders
	}
	if (p.maxExplicit == 0 && p.implicitCount != len(p.args)) || p.maxExplicit > len(p.args) {
		return &PlaceholderCountMismatchError{
			Placeholders: max(p.implicitCount, p.maxExplicit),
			Args:         len(p.args),
		}
	}
	if !p.spans.empty() {
		return ErrNotEmpty
	}
	return nil
}
