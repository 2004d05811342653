package styledtext

// openStyle is a style whose end offset is not yet known.
type openStyle struct {
	style Style
	start int
}

// spanStack tracks the nesting discipline of inline styles: a style
// is pushed with the text offset at which it began and popped when
// its close event arrives, materializing a span.
type spanStack struct {
	entries []openStyle
}

func (s *spanStack) open(style Style, start int) {
	s.entries = append(s.entries, openStyle{style: style, start: start})
}

// close pops the innermost open style. Popping an empty stack means
// the input closed a style it never opened.
func (s *spanStack) close() (Style, int, error) {
	if len(s.entries) == 0 {
		return Style{}, 0, ErrPop
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.style, top.start, nil
}

func (s *spanStack) empty() bool {
	return len(s.entries) == 0
}
