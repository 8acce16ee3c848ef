// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import "sort"

// Source maps offsets in a source text to line and column numbers. Offsets
// and columns are counted in runes.
type Source struct {
	text  []rune
	lines []int // offset of the first rune of each line
}

// NewSource indexes the lines of text.
func NewSource(text string) *Source {
	s := &Source{text: []rune(text), lines: []int{0}}
	for i, r := range s.text {
		if r == '\n' {
			s.lines = append(s.lines, i+1)
		}
	}
	return s
}

// Position returns the 1-based line and column of offset off.
func (s *Source) Position(off int) (line, col int) {
	if off > len(s.text) {
		off = len(s.text)
	}
	l := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > off }) - 1
	return l + 1, off - s.lines[l] + 1
}

// Len returns the length of the source in runes.
func (s *Source) Len() int { return len(s.text) }

func (s *Source) syntaxError(off int) *SyntaxError {
	if off > len(s.text) {
		off = len(s.text)
	}
	line, col := s.Position(off)
	return &SyntaxError{Offset: off, Line: line, Col: col, Rest: string(s.text[off:])}
}
