package jsonpad

import (
	"regexp"
	"strconv"
	"strings"
)

// Segment is one step of a [Path]: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a value inside a JSON document.
type Path []Segment

var identifierRE = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// String renders the path in dot/bracket notation: identifier-like keys as
// .key (no dot before the first), other keys as ['key'], indices as [i].
// Rendering is lossy for keys that contain brackets or quotes; re-parsing a
// rendered path is not a contract.
func (p Path) String() string {
	b := &strings.Builder{}

	for i, seg := range p {
		switch {
		case seg.IsIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')

		case identifierRE.MatchString(seg.Key):
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(seg.Key)

		default:
			b.WriteString("['")
			b.WriteString(strings.ReplaceAll(seg.Key, "'", `\'`))
			b.WriteString("']")
		}
	}

	return b.String()
}

type pathFrame struct {
	isArray bool
	index   int
	key     string
	hasKey  bool
	pending string
}

// PathAtOffset returns the rendered path of the token enclosing offset in
// text. The scan works on raw text and tolerates malformed or partially
// typed JSON, unlike [Parse]. A trailing segment with no key yet resolved
// (cursor between tokens, e.g. right after an opening brace) is dropped.
// Returns "" for the document root, out-of-range offsets, or when resolution
// fails.
func PathAtOffset(text string, offset int) (out string) {
	// Resolution must never propagate a failure.
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	if offset < 0 || offset > len(text) {
		return ""
	}

	var stack []*pathFrame

	inString := false
	escape := false
	lastString := ""

	for i := 0; i < offset; i++ {
		c := text[i]

		if escape {
			escape = false
			continue
		}

		if inString {
			switch c {
			case '\\':
				escape = true
			case '"':
				inString = false
				if len(stack) > 0 && !stack[len(stack)-1].isArray {
					stack[len(stack)-1].pending = lastString
				}
			default:
				lastString += string(c)
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			lastString = ""

		case '{':
			stack = append(stack, &pathFrame{})

		case '[':
			stack = append(stack, &pathFrame{isArray: true})

		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case ':':
			if len(stack) > 0 && !stack[len(stack)-1].isArray {
				top := stack[len(stack)-1]
				top.key = top.pending
				top.hasKey = true
			}

		case ',':
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.isArray {
					top.index++
				} else {
					top.hasKey = false
					top.pending = ""
				}
			}
		}
	}

	path := Path{}
	for _, frame := range stack {
		if frame.isArray {
			path = append(path, Segment{Index: frame.index, IsIndex: true})
			continue
		}
		path = append(path, Segment{Key: frame.key})
	}

	// Drop a trailing key segment that never resolved.
	if len(path) > 0 {
		last := path[len(path)-1]
		if !last.IsIndex && last.Key == "" {
			path = path[:len(path)-1]
		}
	}

	return path.String()
}
