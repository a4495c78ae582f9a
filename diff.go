package jsonpad

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Diff parses both documents, serializes them canonically, and returns a
// unified diff so formatting differences never show up as changes. Identical
// documents produce "".
func Diff(name1, text1, name2, text2 string) (string, error) {
	out1, err := FormatText(text1, DefaultIndent)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name1, err)
	}

	out2, err := FormatText(text2, DefaultIndent)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name2, err)
	}

	// Line-based diffing wants newline-terminated inputs.
	if !strings.HasSuffix(out1, "\n") {
		out1 += "\n"
	}
	if !strings.HasSuffix(out2, "\n") {
		out2 += "\n"
	}

	edits := myers.ComputeEdits(span.URIFromPath(name1), out1, out2)

	return fmt.Sprint(gotextdiff.ToUnified(name1, name2, out1, edits)), nil
}
