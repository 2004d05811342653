package styledtext

import (
	"strconv"
	"strings"
)

// substitute appends a literal text chunk to the paragraph, expanding
// {} and {N} placeholders into the matching arguments. {{ and }} are
// escape sequences for literal braces. Literal text between
// placeholders is appended verbatim.
func (p *parser) substitute(paragraph *Paragraph, chunk string) error {
	pos := 0
	literalStart := 0
	for {
		rel := strings.IndexAny(chunk[pos:], "{}")
		if rel < 0 {
			break
		}
		i := pos + rel

		if chunk[i] == '}' {
			if i+1 < len(chunk) && chunk[i+1] == '}' {
				// Collapse the escape: keep one '}' in the output.
				paragraph.Text += chunk[literalStart : i+1]
				pos = i + 2
				literalStart = pos
				continue
			}
			return ErrUnexpectedClosingBrace
		}

		if i+1 >= len(chunk) {
			return ErrUnexpectedTrailingBrace
		}
		if chunk[i+1] == '{' {
			paragraph.Text += chunk[literalStart : i+1]
			pos = i + 2
			literalStart = pos
			continue
		}

		term := strings.IndexByte(chunk[i+1:], '}')
		if term < 0 {
			return ErrUnterminatedPlaceholder
		}
		end := i + 1 + term

		inner := chunk[i+1 : end]
		var argIndex int
		if inner == "" {
			argIndex = p.implicitCount
			p.implicitCount++
		} else if n, err := strconv.ParseUint(inner, 10, 16); err == nil {
			argIndex = int(n)
			if argIndex+1 > p.maxExplicit {
				p.maxExplicit = argIndex + 1
			}
		} else {
			return ErrInvalidPlaceholder
		}

		paragraph.Text += chunk[literalStart:i]
		if err := spliceArgument(paragraph, p.args, argIndex); err != nil {
			return err
		}

		pos = end + 1
		literalStart = pos
	}
	paragraph.Text += chunk[literalStart:]
	return nil
}

// spliceArgument appends the argument's single paragraph to the host
// paragraph, translating every formatting and link span by the
// pre-splice length of the host text.
func spliceArgument(paragraph *Paragraph, args []*StyledText, index int) error {
	if index >= len(args) {
		return &ArgumentOutOfRangeError{Index: index, Args: len(args)}
	}
	var source []Paragraph
	if args[index] != nil {
		source = args[index].Paragraphs
	}
	if len(source) != 1 {
		return ErrMultiParagraphInterpolation
	}
	argument := &source[0]

	offset := len(paragraph.Text)
	paragraph.Text += argument.Text
	for _, span := range argument.Formatting {
		span.Start += offset
		span.End += offset
		paragraph.Formatting = append(paragraph.Formatting, span)
	}
	for _, link := range argument.Links {
		link.Start += offset
		link.End += offset
		paragraph.Links = append(paragraph.Links, link)
	}
	return nil
}
