package styledtext

import (
	"errors"
	"fmt"
)

// Every error is fatal to the whole parse; there is no partial or
// best-effort output. Errors without a payload are sentinel values so
// callers can test them with errors.Is; errors carrying context are
// typed for errors.As.
var (
	// ErrPop reports a close event with no matching open style.
	ErrPop = errors.New("spans are unbalanced: stack already empty when popped")
	// ErrNotEmpty reports open styles left over at end of input.
	ErrNotEmpty = errors.New("spans are unbalanced: stack contained items at end of input")
	// ErrParagraphNotStarted reports a text or style event arriving
	// before any paragraph exists.
	ErrParagraphNotStarted = errors.New("paragraph not started")

	// ErrUnexpectedTrailingBrace reports an unescaped '{' at the very
	// end of a text chunk.
	ErrUnexpectedTrailingBrace = errors.New("unexpected '{' at end of format string, escape '{' with '{{'")
	// ErrUnexpectedClosingBrace reports a '}' with no open placeholder.
	ErrUnexpectedClosingBrace = errors.New("unexpected '}' in format string, escape '}' with '}}'")
	// ErrUnterminatedPlaceholder reports a '{' whose '}' never arrives.
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder in format string, '{' must be escaped with '{{'")
	// ErrInvalidPlaceholder reports placeholder content that is
	// neither empty nor a decimal index.
	ErrInvalidPlaceholder = errors.New("invalid '{...}' placeholder in format string: the placeholder must be a number, or braces must be escaped with '{{' and '}}'")
	// ErrMixedPlaceholders reports a format string using both {} and
	// {N} placeholders.
	ErrMixedPlaceholders = errors.New("cannot mix positional and non-positional placeholders in format string")
	// ErrMultiParagraphInterpolation reports an interpolation argument
	// that does not consist of exactly one paragraph.
	ErrMultiParagraphInterpolation = errors.New("interpolating multiple styled text paragraphs is not implemented")
)

// UnimplementedTagError reports a markdown construct the compiler
// deliberately rejects instead of degrading silently.
type UnimplementedTagError struct {
	Tag string
}

func (e *UnimplementedTagError) Error() string {
	return fmt.Sprintf("unimplemented markdown tag: %s", e.Tag)
}

// UnimplementedEventError reports a markdown event the compiler
// deliberately rejects instead of degrading silently.
type UnimplementedEventError struct {
	Event string
}

func (e *UnimplementedEventError) Error() string {
	return fmt.Sprintf("unimplemented markdown event: %s", e.Event)
}

// UnimplementedHTMLEventError reports inline HTML that did not
// tokenize into plain start tags.
type UnimplementedHTMLEventError struct {
	HTML string
}

func (e *UnimplementedHTMLEventError) Error() string {
	return fmt.Sprintf("unimplemented html: %s", e.HTML)
}

// UnimplementedHTMLTagError reports an inline HTML tag other than
// <u> and <font>.
type UnimplementedHTMLTagError struct {
	Tag string
}

func (e *UnimplementedHTMLTagError) Error() string {
	return fmt.Sprintf("unimplemented html tag: %s", e.Tag)
}

// UnexpectedAttributeError reports an attribute the tag does not
// accept.
type UnexpectedAttributeError struct {
	Attribute string
	HTML      string
}

func (e *UnexpectedAttributeError) Error() string {
	return fmt.Sprintf("unexpected %s attribute in html %s", e.Attribute, e.HTML)
}

// MissingColorError reports a <font> tag without a color attribute.
type MissingColorError struct {
	HTML string
}

func (e *MissingColorError) Error() string {
	return fmt.Sprintf("missing color attribute in html %s", e.HTML)
}

// InvalidColorError reports a color attribute value that resolves to
// neither a hex literal nor a named color.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color value %q", e.Value)
}

// ClosingTagMismatchError reports a closing HTML tag that does not
// match the innermost open tag. Expected is empty when no HTML tag
// was open at all.
type ClosingTagMismatchError struct {
	Expected string
	Actual   string
}

func (e *ClosingTagMismatchError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("closing html tag %s does not match any open html tag", e.Actual)
	}
	return fmt.Sprintf("closing html tag does not match the opening tag: expected %s, got %s", e.Expected, e.Actual)
}

// ArgumentOutOfRangeError reports a placeholder index with no
// corresponding argument.
type ArgumentOutOfRangeError struct {
	Index int
	Args  int
}

func (e *ArgumentOutOfRangeError) Error() string {
	return fmt.Sprintf("argument index %d out of range: %d arguments provided", e.Index, e.Args)
}

// PlaceholderCountMismatchError reports a format string whose
// placeholder count disagrees with the number of arguments.
type PlaceholderCountMismatchError struct {
	Placeholders int
	Args         int
}

func (e *PlaceholderCountMismatchError) Error() string {
	return fmt.Sprintf("format string contains %d placeholders, but %d arguments were provided", e.Placeholders, e.Args)
}
