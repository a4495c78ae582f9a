package jsonpad

import (
	"errors"
	"sync"
)

// Editor is the subset of the host editor widget the core relies on. All
// other widget behavior (rendering, keybindings, clipboard) stays on the
// host side of the boundary.
type Editor interface {
	Value() string
	SetValue(text string)
	CursorOffset() int
	SetMarkers(markers []Marker)
	SetBreadcrumb(path string)
}

// Marker is an inline error annotation for the host editor. Line and columns
// are 1-based.
type Marker struct {
	Line        int
	StartColumn int
	EndColumn   int
	Message     string
}

// Markers validates text and returns the inline markers to display. Valid
// input yields an empty (non-nil) list so the host clears prior markers.
func Markers(text string) []Marker {
	_, err := Parse(text)
	if err == nil {
		return []Marker{}
	}

	var serr *SyntaxError
	if !errors.As(err, &serr) {
		return []Marker{{Line: 1, StartColumn: 1, EndColumn: 2, Message: err.Error()}}
	}

	line, col := serr.Line, serr.Column
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}

	return []Marker{{
		Line:        line,
		StartColumn: col,
		EndColumn:   col + 1,
		Message:     serr.Message,
	}}
}

// Range is a half-open [Start, End) character range in the document.
type Range struct {
	Start int
	End   int
}

// TokenRange returns the replacement range for the in-progress token at
// offset: backward over token characters, forward boundary at the cursor.
func TokenRange(text string, offset int) Range {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	start := offset
	for start > 0 && isTokenByte(text[start-1]) {
		start--
	}

	return Range{Start: start, End: offset}
}

// CompletionProvider produces candidates plus the text range they replace.
type CompletionProvider func(text string, offset int) ([]Candidate, Range)

// DefaultCompletionProvider runs the full analyze/extract/suggest pipeline.
func DefaultCompletionProvider(text string, offset int) ([]Candidate, Range) {
	return CompletionsAt(text, offset), TokenRange(text, offset)
}

var completionRegistry struct {
	mu       sync.Mutex
	provider CompletionProvider
}

// RegisterCompletionProvider installs the process-wide completion provider.
// Registration is idempotent: only the first call takes effect, so host
// re-mounts cannot register duplicate providers. Reports whether this call
// installed the provider.
func RegisterCompletionProvider(p CompletionProvider) bool {
	completionRegistry.mu.Lock()
	defer completionRegistry.mu.Unlock()

	if completionRegistry.provider != nil {
		return false
	}

	completionRegistry.provider = p

	return true
}

// RegisteredCompletionProvider returns the installed provider, or
// [DefaultCompletionProvider] if none was registered.
func RegisteredCompletionProvider() CompletionProvider {
	completionRegistry.mu.Lock()
	defer completionRegistry.mu.Unlock()

	if completionRegistry.provider == nil {
		return DefaultCompletionProvider
	}

	return completionRegistry.provider
}

// Session wires one host editor instance to the core computations. Every
// handler reads a fresh document snapshot from the editor; nothing is cached
// between events, so superseded calls are safe to discard.
type Session struct {
	ed Editor
}

func NewSession(ed Editor) *Session {
	return &Session{ed: ed}
}

// HandleChange revalidates the document after an edit and refreshes the
// editor's markers.
func (s *Session) HandleChange() {
	s.ed.SetMarkers(Markers(s.ed.Value()))
}

// HandleCursorMove refreshes the breadcrumb path for the current cursor.
func (s *Session) HandleCursorMove() {
	s.ed.SetBreadcrumb(PathAtOffset(s.ed.Value(), s.ed.CursorOffset()))
}

// Completions answers a completion request at the current cursor.
func (s *Session) Completions() ([]Candidate, Range) {
	return RegisteredCompletionProvider()(s.ed.Value(), s.ed.CursorOffset())
}

// ApplyFormat replaces the document with its indented serialization.
func (s *Session) ApplyFormat(indent int) error {
	out, err := FormatText(s.ed.Value(), indent)
	if err != nil {
		return err
	}

	s.ed.SetValue(out)
	s.HandleChange()

	return nil
}

// ApplyMinify replaces the document with its minified serialization.
func (s *Session) ApplyMinify() error {
	out, err := MinifyText(s.ed.Value())
	if err != nil {
		return err
	}

	s.ed.SetValue(out)
	s.HandleChange()

	return nil
}

// ApplyRepair runs the repair collaborator over the document. The document
// is only replaced when the repaired text re-validates.
func (s *Session) ApplyRepair(r Repairer) error {
	out, err := Repair(s.ed.Value(), r)
	if err != nil {
		return err
	}

	s.ed.SetValue(out)
	s.HandleChange()

	return nil
}
