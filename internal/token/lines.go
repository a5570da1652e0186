package token

import "sort"

// Position is a 1-based line and column. Column counts bytes.
type Position struct {
	Line   int
	Column int
}

// Lines maps byte offsets of a source text to line/column positions.
type Lines struct {
	starts []int
	size   int
}

// NewLines indexes the line starts of src.
func NewLines(src string) *Lines {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Lines{starts, len(src)}
}

// Position returns the position of offset. Offsets past the end of the
// source are clamped to the end.
func (l *Lines) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > l.size {
		offset = l.size
	}
	// index of the last line start <= offset
	line := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	}) - 1
	return Position{line + 1, offset - l.starts[line] + 1}
}

// End returns the position just past the last byte of the source.
func (l *Lines) End() Position {
	return l.Position(l.size)
}
