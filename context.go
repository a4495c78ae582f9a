package jsonpad

import (
	"regexp"
	"strings"
)

// CursorContext describes where a cursor sits inside a JSON document's raw
// text: the partial token being typed, whether the cursor is in value
// position (a ':' was crossed at the current nesting depth), whether it is
// inside a quoted string, and the enclosing object key.
//
// Path holds at most one segment: the backward scan stops at the first key
// it resolves, so deeper ancestor keys are not collected. That limitation is
// part of the contract; callers must not assume a full ancestor chain.
type CursorContext struct {
	Text         string
	Path         []string
	IsValue      bool
	InsideQuotes bool
}

var keyBeforeColonRE = regexp.MustCompile(`"([^"]*)"\s*:$`)

func isTokenByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '-'
}

// AnalyzeCursor scans text backward from offset and reports the cursor
// context. It operates on raw text, not a parse tree, so it keeps working on
// invalid or partially typed documents; it never fails, returning a neutral
// context in the worst case.
func AnalyzeCursor(text string, offset int) (ctx CursorContext) {
	defer func() {
		if recover() != nil {
			ctx = CursorContext{}
		}
	}()

	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	lines := strings.Split(text, "\n")
	pos := PositionAt(text, offset)
	lineIdx := pos.Line - 1
	col := pos.Column - 1

	cur := lines[lineIdx]
	if col > len(cur) {
		col = len(cur)
	}

	ctx.Text = tokenBefore(cur, col)
	ctx.InsideQuotes = oddQuotes(cur[:col])

	// Backward scan across lines, tracking nesting depth and string state.
	depth := 0
	inString := false

	for li := lineIdx; li >= 0; li-- {
		line := lines[li]

		end := len(line)
		if li == lineIdx {
			end = col
		}

		for j := end - 1; j >= 0; j-- {
			c := line[j]

			if c == '"' && !escapedAt(line, j) {
				inString = !inString
				continue
			}

			if inString {
				continue
			}

			switch c {
			case '}', ']':
				depth++

			case '{', '[':
				depth--
				if depth < 0 {
					// Unmatched opener before any resolved key.
					return ctx
				}

			case ':':
				if depth == 0 && !escapedAt(line, j) {
					ctx.IsValue = true

					if m := keyBeforeColonRE.FindStringSubmatch(line[:j+1]); m != nil {
						ctx.Path = []string{m[1]}
						return ctx
					}
				}
			}
		}
	}

	return ctx
}

// tokenBefore returns the maximal run of token characters immediately before
// column col on line.
func tokenBefore(line string, col int) string {
	if col > len(line) {
		col = len(line)
	}

	start := col
	for start > 0 && isTokenByte(line[start-1]) {
		start--
	}

	return line[start:col]
}

// oddQuotes reports whether s contains an odd number of unescaped quotes.
func oddQuotes(s string) bool {
	count := 0

	for i := 0; i < len(s); i++ {
		if s[i] == '"' && !escapedAt(s, i) {
			count++
		}
	}

	return count%2 == 1
}

// escapedAt reports whether the character at index i is preceded by an odd
// number of backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}

	return n%2 == 1
}
