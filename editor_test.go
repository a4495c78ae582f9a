package jsonpad_test

import (
	"testing"

	"github.com/jsonpad/jsonpad"
	"github.com/stretchr/testify/require"
)

type fakeEditor struct {
	text       string
	cursor     int
	markers    []jsonpad.Marker
	breadcrumb string
}

func (f *fakeEditor) Value() string { return f.text }

func (f *fakeEditor) SetValue(text string) { f.text = text }

func (f *fakeEditor) CursorOffset() int { return f.cursor }

func (f *fakeEditor) SetMarkers(markers []jsonpad.Marker) { f.markers = markers }

func (f *fakeEditor) SetBreadcrumb(path string) { f.breadcrumb = path }

func TestMarkersValid(t *testing.T) {
	t.Parallel()

	markers := jsonpad.Markers(`{"a": 1}`)

	require.NotNil(t, markers)
	require.Empty(t, markers)
}

func TestMarkersInvalid(t *testing.T) {
	t.Parallel()

	markers := jsonpad.Markers("{\n  \"a\": 1,\n  ]\n}")

	require.Len(t, markers, 1)
	require.Equal(t, 3, markers[0].Line)
	require.Equal(t, 3, markers[0].StartColumn)
	require.Equal(t, 4, markers[0].EndColumn)
	require.NotEmpty(t, markers[0].Message)
}

func TestTokenRange(t *testing.T) {
	t.Parallel()

	text := `{"country": "Fr`

	r := jsonpad.TokenRange(text, len(text))
	require.Equal(t, jsonpad.Range{Start: 13, End: 15}, r)
	require.Equal(t, "Fr", text[r.Start:r.End])
}

func TestTokenRangeEmpty(t *testing.T) {
	t.Parallel()

	text := `{"a": `

	r := jsonpad.TokenRange(text, len(text))
	require.Equal(t, r.Start, r.End)
}

func TestTokenRangeClamped(t *testing.T) {
	t.Parallel()

	require.Equal(t, jsonpad.Range{Start: 0, End: 0}, jsonpad.TokenRange("abc", -1))
	require.Equal(t, jsonpad.Range{Start: 0, End: 3}, jsonpad.TokenRange("abc", 100))
}

func TestSessionHandleChange(t *testing.T) {
	t.Parallel()

	ed := &fakeEditor{text: `{"a": `}
	s := jsonpad.NewSession(ed)

	s.HandleChange()
	require.Len(t, ed.markers, 1)

	ed.text = `{"a": 1}`
	s.HandleChange()
	require.NotNil(t, ed.markers)
	require.Empty(t, ed.markers)
}

func TestSessionHandleCursorMove(t *testing.T) {
	t.Parallel()

	text := `{"user": {"name": "Jan"}}`
	ed := &fakeEditor{text: text, cursor: len(text) - 5}
	s := jsonpad.NewSession(ed)

	s.HandleCursorMove()
	require.Equal(t, "user.name", ed.breadcrumb)
}

func TestSessionApplyFormat(t *testing.T) {
	t.Parallel()

	ed := &fakeEditor{text: `{"a":1}`}
	s := jsonpad.NewSession(ed)

	require.NoError(t, s.ApplyFormat(2))
	require.Equal(t, "{\n  \"a\": 1\n}", ed.text)
	require.Empty(t, ed.markers)
}

func TestSessionApplyFormatInvalid(t *testing.T) {
	t.Parallel()

	ed := &fakeEditor{text: `{"a": `}
	s := jsonpad.NewSession(ed)

	err := s.ApplyFormat(2)
	require.ErrorIs(t, err, jsonpad.ErrDecode)
	require.Equal(t, `{"a": `, ed.text)
}

func TestSessionApplyMinify(t *testing.T) {
	t.Parallel()

	ed := &fakeEditor{text: "{\n  \"a\": 1\n}"}
	s := jsonpad.NewSession(ed)

	require.NoError(t, s.ApplyMinify())
	require.Equal(t, `{"a":1}`, ed.text)
}

func TestSessionApplyRepair(t *testing.T) {
	t.Parallel()

	ed := &fakeEditor{text: `{"a": 1,}`}
	s := jsonpad.NewSession(ed)

	fixed := jsonpad.RepairerFunc(func(string) (string, error) {
		return `{"a": 1}`, nil
	})

	require.NoError(t, s.ApplyRepair(fixed))
	require.Equal(t, `{"a": 1}`, ed.text)
	require.Empty(t, ed.markers)
}

// Registry state is process-wide, so the default fallback, the first
// registration, and the duplicate rejection are all checked here in order.
func TestCompletionProviderRegistry(t *testing.T) {
	text := `{"country": "France", "shipping": "Fr`

	candidates, r := jsonpad.RegisteredCompletionProvider()(text, len(text))
	require.NotEmpty(t, candidates)
	require.Equal(t, jsonpad.Range{Start: 35, End: 37}, r)

	custom := func(string, int) ([]jsonpad.Candidate, jsonpad.Range) {
		return []jsonpad.Candidate{{Label: "custom"}}, jsonpad.Range{}
	}

	require.True(t, jsonpad.RegisterCompletionProvider(custom))
	require.False(t, jsonpad.RegisterCompletionProvider(custom))

	ed := &fakeEditor{text: text, cursor: len(text)}
	s := jsonpad.NewSession(ed)

	got, _ := s.Completions()
	require.Len(t, got, 1)
	require.Equal(t, "custom", got[0].Label)
}
