package mdevent

// Kind identifies the type of a markdown event.
type Kind int

const (
	EventStart Kind = iota
	EventEnd
	EventText
	EventCode
	EventInlineHTML
	EventSoftBreak
	EventHardBreak
	EventRule
	EventHTMLBlock
	EventTaskListMarker
	EventFootnoteReference
	EventInlineMath
	EventDisplayMath
)

var kindNames = map[Kind]string{
	EventStart:             "start",
	EventEnd:               "end",
	EventText:              "text",
	EventCode:              "code",
	EventInlineHTML:        "inline html",
	EventSoftBreak:         "soft break",
	EventHardBreak:         "hard break",
	EventRule:              "rule",
	EventHTMLBlock:         "html block",
	EventTaskListMarker:    "task list marker",
	EventFootnoteReference: "footnote reference",
	EventInlineMath:        "inline math",
	EventDisplayMath:       "display math",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// TagKind identifies the structural element a Start/End event refers to.
type TagKind int

const (
	TagParagraph TagKind = iota
	TagItem
	TagList
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagHeading
	TagImage
	TagBlockQuote
	TagCodeBlock
	TagUnsupported
)

var tagNames = map[TagKind]string{
	TagParagraph:     "paragraph",
	TagItem:          "item",
	TagList:          "list",
	TagEmphasis:      "emphasis",
	TagStrong:        "strong",
	TagStrikethrough: "strikethrough",
	TagLink:          "link",
	TagHeading:       "heading",
	TagImage:         "image",
	TagBlockQuote:    "block quote",
	TagCodeBlock:     "code block",
	TagUnsupported:   "unsupported",
}

func (k TagKind) String() string {
	if name, ok := tagNames[k]; ok {
		return name
	}
	return "unknown"
}

// Tag carries the payload of a Start or End event.
type Tag struct {
	Kind TagKind
	// Ordered and Start describe a list tag: whether the list is
	// ordered and, if so, the ordinal of its first item.
	Ordered bool
	Start   int
	// URL is the destination of a link tag.
	URL string
	// Name is the node kind name of an unsupported tag, kept for
	// diagnostics only.
	Name string
}

// Event is one element of the flattened markdown event sequence.
// Start and End events carry a Tag; Text, Code and InlineHTML events
// carry the literal text.
type Event struct {
	Kind Kind
	Tag  Tag
	Text string
}
