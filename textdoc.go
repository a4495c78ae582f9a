package jsonpad

import "strings"

// Position is a 1-based line/column location in a text document.
type Position struct {
	Line   int
	Column int
}

// OffsetAt converts a 1-based line/column position to a 0-based character
// offset by summing the lengths of prior lines plus their newline characters.
// Returns 0 if line or column is out of range.
func OffsetAt(text string, line, column int) int {
	if line < 1 || column < 1 {
		return 0
	}

	lines := strings.Split(text, "\n")
	if line > len(lines) {
		return 0
	}

	offset := 0
	for i := 0; i < line-1; i++ {
		offset += len(lines[i]) + 1
	}

	col := column - 1
	if col > len(lines[line-1]) {
		col = len(lines[line-1])
	}

	return offset + col
}

// PositionAt converts a 0-based character offset to a 1-based line/column
// position. Offsets outside [0, len(text)] are clamped.
func PositionAt(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	line := 1
	lineStart := 0

	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return Position{Line: line, Column: offset - lineStart + 1}
}
