package parser

import (
	"fmt"
	"sort"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineMap converts byte offsets into 1-based line and column positions.
// Columns count bytes, not runes.
type LineMap struct {
	file  string
	lines []int
}

func NewLineMap(file string, src []byte) *LineMap {
	lines := []int{0}
	for i, ch := range src {
		if ch == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &LineMap{file: file, lines: lines}
}

func (m *LineMap) Position(offset int) Position {
	line := sort.Search(len(m.lines), func(i int) bool { return m.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Position{
		File:   m.file,
		Offset: offset,
		Line:   line + 1,
		Column: offset - m.lines[line] + 1,
	}
}

func (m *LineMap) LineCount() int {
	return len(m.lines)
}
