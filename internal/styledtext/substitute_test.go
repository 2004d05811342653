package styledtext

import (
	"errors"
	"reflect"
	"testing"

	"github.com/davral/styledtext-mcp/internal/mdevent"
)

func TestSpliceArgument_TranslatesSpans(t *testing.T) {
	host := &Paragraph{Text: "prefix: "}
	arg := &StyledText{Paragraphs: []Paragraph{{
		Text: "styled body",
		Formatting: []FormattedSpan{
			{Start: 0, End: 6, Style: Style{Kind: Strong}},
			{Start: 7, End: 11, Style: Style{Kind: Emphasis}},
		},
		Links: []Link{
			{Start: 7, End: 11, URL: "https://example.com"},
		},
	}}}

	if err := spliceArgument(host, []*StyledText{arg}, 0); err != nil {
		t.Fatalf("spliceArgument() error = %v", err)
	}

	want := &Paragraph{
		Text: "prefix: styled body",
		Formatting: []FormattedSpan{
			{Start: 8, End: 14, Style: Style{Kind: Strong}},
			{Start: 15, End: 19, Style: Style{Kind: Emphasis}},
		},
		Links: []Link{
			{Start: 15, End: 19, URL: "https://example.com"},
		},
	}
	if !reflect.DeepEqual(host, want) {
		t.Errorf("spliced paragraph = %#v, want %#v", host, want)
	}
}

func TestSpliceArgument_DoesNotMutateArgument(t *testing.T) {
	arg := &StyledText{Paragraphs: []Paragraph{{
		Text: "body",
		Formatting: []FormattedSpan{
			{Start: 0, End: 4, Style: Style{Kind: Strong}},
		},
	}}}
	host := &Paragraph{Text: "prefix "}

	if err := spliceArgument(host, []*StyledText{arg}, 0); err != nil {
		t.Fatalf("spliceArgument() error = %v", err)
	}

	if span := arg.Paragraphs[0].Formatting[0]; span.Start != 0 || span.End != 4 {
		t.Errorf("argument span was mutated: %#v", span)
	}
}

func TestSpliceArgument_OutOfRange(t *testing.T) {
	host := &Paragraph{}
	err := spliceArgument(host, []*StyledText{FromPlainText("x")}, 3)
	var rangeErr *ArgumentOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error = %v, want ArgumentOutOfRangeError", err)
	}
	if rangeErr.Index != 3 || rangeErr.Args != 1 {
		t.Errorf("got index %d of %d args, want 3 of 1", rangeErr.Index, rangeErr.Args)
	}
}

func TestSubstitute_EscapedBraces(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  string
	}{
		{name: "no braces", chunk: "plain text", want: "plain text"},
		{name: "escaped open", chunk: "a {{ b", want: "a { b"},
		{name: "escaped close", chunk: "a }} b", want: "a } b"},
		{name: "escaped pair", chunk: "{{}}", want: "{}"},
		{name: "adjacent escapes", chunk: "{{{{", want: "{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &parser{}
			paragraph := &Paragraph{}
			if err := p.substitute(paragraph, tt.chunk); err != nil {
				t.Fatalf("substitute(%q) error = %v", tt.chunk, err)
			}
			if paragraph.Text != tt.want {
				t.Errorf("substitute(%q) text = %q, want %q", tt.chunk, paragraph.Text, tt.want)
			}
		})
	}
}

func TestSubstitute_PlaceholderIndexBound(t *testing.T) {
	// Indices wider than 16 bits are rejected as invalid rather than
	// treated as out of range.
	p := &parser{}
	err := p.substitute(&Paragraph{}, "{65536}")
	if !errors.Is(err, ErrInvalidPlaceholder) {
		t.Errorf("error = %v, want ErrInvalidPlaceholder", err)
	}
}

func TestHandle_TextBeforeParagraph(t *testing.T) {
	p := &parser{}
	err := p.handle(mdevent.Event{Kind: mdevent.EventText, Text: "stray"})
	if !errors.Is(err, ErrParagraphNotStarted) {
		t.Errorf("error = %v, want ErrParagraphNotStarted", err)
	}
}

func TestHandle_StyleBeforeParagraph(t *testing.T) {
	p := &parser{}
	err := p.handle(mdevent.Event{Kind: mdevent.EventStart, Tag: mdevent.Tag{Kind: mdevent.TagEmphasis}})
	if !errors.Is(err, ErrParagraphNotStarted) {
		t.Errorf("error = %v, want ErrParagraphNotStarted", err)
	}
}

func TestHandle_ListEndWithoutStart(t *testing.T) {
	p := &parser{}
	err := p.handle(mdevent.Event{Kind: mdevent.EventEnd, Tag: mdevent.Tag{Kind: mdevent.TagList}})
	if !errors.Is(err, ErrPop) {
		t.Errorf("error = %v, want ErrPop", err)
	}
}
