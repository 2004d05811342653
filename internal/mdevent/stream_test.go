package mdevent

import (
	"reflect"
	"testing"
)

// collect drains the stream, merging adjacent text events so the
// expectations do not depend on how the parser segments literal text.
func collect(source string) []Event {
	var events []Event
	for ev := range Stream([]byte(source)) {
		if ev.Kind == EventText && len(events) > 0 && events[len(events)-1].Kind == EventText {
			events[len(events)-1].Text += ev.Text
			continue
		}
		events = append(events, ev)
	}
	return events
}

func TestStream(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []Event
	}{
		{
			name:     "emphasis",
			markdown: "hello *world*",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventText, Text: "hello "},
				{Kind: EventStart, Tag: Tag{Kind: TagEmphasis}},
				{Kind: EventText, Text: "world"},
				{Kind: EventEnd, Tag: Tag{Kind: TagEmphasis}},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "strong",
			markdown: "**bold**",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventStart, Tag: Tag{Kind: TagStrong}},
				{Kind: EventText, Text: "bold"},
				{Kind: EventEnd, Tag: Tag{Kind: TagStrong}},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "strikethrough",
			markdown: "~~gone~~",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventStart, Tag: Tag{Kind: TagStrikethrough}},
				{Kind: EventText, Text: "gone"},
				{Kind: EventEnd, Tag: Tag{Kind: TagStrikethrough}},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "code span",
			markdown: "run `go doc` now",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventText, Text: "run "},
				{Kind: EventCode, Text: "go doc"},
				{Kind: EventText, Text: " now"},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "link",
			markdown: "[text](https://example.com)",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventStart, Tag: Tag{Kind: TagLink, URL: "https://example.com"}},
				{Kind: EventText, Text: "text"},
				{Kind: EventEnd, Tag: Tag{Kind: TagLink, URL: "https://example.com"}},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "email autolink",
			markdown: "<mail@example.com>",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventStart, Tag: Tag{Kind: TagLink, URL: "mailto:mail@example.com"}},
				{Kind: EventText, Text: "mail@example.com"},
				{Kind: EventEnd, Tag: Tag{Kind: TagLink, URL: "mailto:mail@example.com"}},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "tight unordered list",
			markdown: "- a\n- b",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagList}},
				{Kind: EventStart, Tag: Tag{Kind: TagItem}},
				{Kind: EventText, Text: "a"},
				{Kind: EventEnd, Tag: Tag{Kind: TagItem}},
				{Kind: EventStart, Tag: Tag{Kind: TagItem}},
				{Kind: EventText, Text: "b"},
				{Kind: EventEnd, Tag: Tag{Kind: TagItem}},
				{Kind: EventEnd, Tag: Tag{Kind: TagList}},
			},
		},
		{
			name:     "ordered list carries its start",
			markdown: "3. a",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagList, Ordered: true, Start: 3}},
				{Kind: EventStart, Tag: Tag{Kind: TagItem}},
				{Kind: EventText, Text: "a"},
				{Kind: EventEnd, Tag: Tag{Kind: TagItem}},
				{Kind: EventEnd, Tag: Tag{Kind: TagList, Ordered: true, Start: 3}},
			},
		},
		{
			name:     "soft break",
			markdown: "one\ntwo",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventText, Text: "one"},
				{Kind: EventSoftBreak},
				{Kind: EventText, Text: "two"},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "hard break",
			markdown: "one  \ntwo",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventText, Text: "one"},
				{Kind: EventHardBreak},
				{Kind: EventText, Text: "two"},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "inline html",
			markdown: "<u>x</u>",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagParagraph}},
				{Kind: EventInlineHTML, Text: "<u>"},
				{Kind: EventText, Text: "x"},
				{Kind: EventInlineHTML, Text: "</u>"},
				{Kind: EventEnd, Tag: Tag{Kind: TagParagraph}},
			},
		},
		{
			name:     "thematic break",
			markdown: "---",
			want: []Event{
				{Kind: EventRule},
			},
		},
		{
			name:     "heading",
			markdown: "# title",
			want: []Event{
				{Kind: EventStart, Tag: Tag{Kind: TagHeading}},
				{Kind: EventText, Text: "title"},
				{Kind: EventEnd, Tag: Tag{Kind: TagHeading}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.markdown)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("unexpected events.\nGot:  %#v\nWant: %#v", got, tt.want)
			}
		})
	}
}

func TestStream_StopsEarly(t *testing.T) {
	count := 0
	for range Stream([]byte("a *b* c")) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("consumed %d events, want 2", count)
	}
}

func TestStream_TableIsUnsupported(t *testing.T) {
	// The table extension is not enabled, so a table parses as plain
	// paragraph content rather than an unsupported node.
	events := collect("| a | b |\n| --- | --- |")
	if len(events) == 0 || events[0].Kind != EventStart || events[0].Tag.Kind != TagParagraph {
		t.Errorf("expected table source to parse as a paragraph, got %#v", events)
	}
}
