package jsonpad_test

import (
	"testing"

	"github.com/jsonpad/jsonpad"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCursorValuePosition(t *testing.T) {
	t.Parallel()

	text := `{"a": {"b": }}`
	ctx := jsonpad.AnalyzeCursor(text, 12)

	require.True(t, ctx.IsValue)
	require.Equal(t, []string{"b"}, ctx.Path)
	require.False(t, ctx.InsideQuotes)
	require.Equal(t, "", ctx.Text)
}

func TestAnalyzeCursorInsideOpenString(t *testing.T) {
	t.Parallel()

	text := `{"name": "Jo`
	ctx := jsonpad.AnalyzeCursor(text, len(text))

	require.True(t, ctx.InsideQuotes)
	require.Equal(t, "Jo", ctx.Text)
}

func TestAnalyzeCursorKeyPosition(t *testing.T) {
	t.Parallel()

	text := `{"na`
	ctx := jsonpad.AnalyzeCursor(text, len(text))

	require.True(t, ctx.InsideQuotes)
	require.Equal(t, "na", ctx.Text)
	require.False(t, ctx.IsValue)
	require.Empty(t, ctx.Path)
}

func TestAnalyzeCursorTokenCharacters(t *testing.T) {
	t.Parallel()

	text := `{"a": my-tok.en_2`
	ctx := jsonpad.AnalyzeCursor(text, len(text))

	require.Equal(t, "my-tok.en_2", ctx.Text)
	require.True(t, ctx.IsValue)
}

func TestAnalyzeCursorSinglePathSegment(t *testing.T) {
	t.Parallel()

	// Only the innermost key is resolved; ancestors are not collected.
	text := `{"outer": {"middle": {"inner": `
	ctx := jsonpad.AnalyzeCursor(text, len(text))

	require.True(t, ctx.IsValue)
	require.Equal(t, []string{"inner"}, ctx.Path)
}

func TestAnalyzeCursorInsideArray(t *testing.T) {
	t.Parallel()

	text := `[{"x": 1}, {"y": `
	ctx := jsonpad.AnalyzeCursor(text, len(text))

	require.True(t, ctx.IsValue)
	require.Equal(t, []string{"y"}, ctx.Path)
}

func TestAnalyzeCursorMultiLine(t *testing.T) {
	t.Parallel()

	text := "{\"a\":\n"
	ctx := jsonpad.AnalyzeCursor(text, len(text))

	require.True(t, ctx.IsValue)
	require.Equal(t, []string{"a"}, ctx.Path)
	require.False(t, ctx.InsideQuotes)
}

func TestAnalyzeCursorEscapedQuotes(t *testing.T) {
	t.Parallel()

	// The escaped quote does not toggle string state.
	text := `{"a": "x\"y`
	ctx := jsonpad.AnalyzeCursor(text, len(text))

	require.True(t, ctx.InsideQuotes)
}

func TestAnalyzeCursorOutOfRangeOffsets(t *testing.T) {
	t.Parallel()

	ctx := jsonpad.AnalyzeCursor(`{"a": 1}`, -5)
	require.Equal(t, "", ctx.Text)

	ctx = jsonpad.AnalyzeCursor(`{"a": 1}`, 1000)
	require.Empty(t, ctx.Path)
	require.False(t, ctx.IsValue)
}

func TestAnalyzeCursorNeverPanics(t *testing.T) {
	t.Parallel()

	texts := []string{
		``,
		`"`,
		`\\\"`,
		`}}}{{{`,
		"{\n\n\n:::\n",
		`{"a": [}`,
	}

	for _, text := range texts {
		for offset := 0; offset <= len(text); offset++ {
			_ = jsonpad.AnalyzeCursor(text, offset)
		}
	}
}
