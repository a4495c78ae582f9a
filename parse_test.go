package jsonpad_test

import (
	"errors"
	"testing"

	"github.com/jsonpad/jsonpad"
	"github.com/stretchr/testify/require"
)

func TestParseKinds(t *testing.T) {
	t.Parallel()

	v, err := jsonpad.Parse(`{"s": "x", "n": 1.50, "b": true, "z": null, "a": [1, 2], "o": {}}`)
	require.NoError(t, err)
	require.Equal(t, jsonpad.Object, v.Kind)
	require.Equal(t, 6, v.Len())

	require.Equal(t, jsonpad.String, v.Get("s").Kind)
	require.Equal(t, "x", v.Get("s").Str)

	require.Equal(t, jsonpad.Number, v.Get("n").Kind)
	require.Equal(t, "1.50", v.Get("n").Number)

	require.Equal(t, jsonpad.Bool, v.Get("b").Kind)
	require.True(t, v.Get("b").Bool)

	require.Equal(t, jsonpad.Null, v.Get("z").Kind)
	require.Equal(t, jsonpad.Array, v.Get("a").Kind)
	require.Equal(t, 2, v.Get("a").Len())
	require.Equal(t, jsonpad.Object, v.Get("o").Kind)
	require.Equal(t, 0, v.Get("o").Len())
}

func TestParsePreservesMemberOrder(t *testing.T) {
	t.Parallel()

	v, err := jsonpad.Parse(`{"zebra": 1, "apple": 2, "mango": 3}`)
	require.NoError(t, err)

	keys := []string{}
	for _, m := range v.Members {
		keys = append(keys, m.Key)
	}

	require.Equal(t, []string{"zebra", "apple", "mango"}, keys)
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	t.Parallel()

	text := "{\n  \"a\": 1,\n  ]\n}"

	_, err := jsonpad.Parse(text)
	require.Error(t, err)

	var serr *jsonpad.SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, 3, serr.Line)
	require.Equal(t, 3, serr.Column)

	// Offset must equal the manually counted character offset of line 3,
	// column 3, and must always agree with OffsetAt.
	require.Equal(t, 14, serr.Offset)
	require.Equal(t, jsonpad.OffsetAt(text, serr.Line, serr.Column), serr.Offset)
}

func TestParseErrorWrapsSentinel(t *testing.T) {
	t.Parallel()

	_, err := jsonpad.Parse(`{`)
	require.Error(t, err)
	require.True(t, errors.Is(err, jsonpad.ErrDecode))
	require.True(t, errors.Is(err, jsonpad.Err))
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := jsonpad.Parse("")
	require.Error(t, err)

	var serr *jsonpad.SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Contains(t, serr.Message, "unexpected end of input")
}

func TestParseTrailingContent(t *testing.T) {
	t.Parallel()

	_, err := jsonpad.Parse(`{} {}`)
	require.Error(t, err)

	var serr *jsonpad.SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Contains(t, serr.Message, "after top-level value")
}

func TestParseTopLevelPrimitives(t *testing.T) {
	t.Parallel()

	for _, text := range []string{`null`, `true`, `42`, `"hi"`, `[]`} {
		v, err := jsonpad.Parse(text)
		require.NoError(t, err, text)
		require.NotNil(t, v, text)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	require.True(t, jsonpad.Valid(`{"a": 1}`))
	require.False(t, jsonpad.Valid(`{"a": }`))
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	a, err := jsonpad.Parse(`{"x": [1, {"y": null}]}`)
	require.NoError(t, err)

	b, err := jsonpad.Parse(`{"x": [1, {"y": null}]}`)
	require.NoError(t, err)

	c, err := jsonpad.Parse(`{"x": [1, {"y": false}]}`)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
