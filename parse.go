package jsonpad

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Parse decodes text into a [Value]. It never panics; on malformed input it
// returns a *[SyntaxError] carrying best-effort position information. Object
// member order and number literals are preserved exactly as written.
func Parse(text string) (*Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, locateError(text, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		pos := PositionAt(text, int(dec.InputOffset()))
		return nil, &SyntaxError{
			Message: "unexpected content after top-level value",
			Line:    pos.Line,
			Column:  pos.Column,
			Offset:  OffsetAt(text, pos.Line, pos.Column),
		}
	}

	return v, nil
}

// Valid reports whether text parses as JSON.
func Valid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q: %w", t.String(), ErrDecode)
		}

	case string:
		return &Value{Kind: String, Str: t}, nil

	case json.Number:
		return &Value{Kind: Number, Number: t.String()}, nil

	case bool:
		return &Value{Kind: Bool, Bool: t}, nil

	case nil:
		return &Value{Kind: Null}, nil

	default:
		return nil, fmt.Errorf("unexpected token %v: %w", tok, ErrDecode)
	}
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := &Value{Kind: Object}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string: %w", keyTok, ErrDecode)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		obj.Members = append(obj.Members, Member{Key: key, Value: val})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := &Value{Kind: Array}

	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		arr.Items = append(arr.Items, item)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

var (
	errLineRE   = regexp.MustCompile(`line (\d+)`)
	errColumnRE = regexp.MustCompile(`column (\d+)`)
)

// locateError is the single adapter between underlying decoder errors and
// the structured [SyntaxError]. Positions come from *json.SyntaxError byte
// offsets when available, else from a "line N" / "column N" pattern in the
// error message. Offset is always recomputed from Line/Column via [OffsetAt]
// so the two stay consistent.
func locateError(text string, err error) *SyntaxError {
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		off := int(serr.Offset)
		if off > len(text) {
			off = len(text)
		}
		if off > 0 {
			off--
		}

		pos := PositionAt(text, off)

		return &SyntaxError{
			Message: serr.Error(),
			Line:    pos.Line,
			Column:  pos.Column,
			Offset:  OffsetAt(text, pos.Line, pos.Column),
		}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		pos := PositionAt(text, len(text))

		return &SyntaxError{
			Message: "unexpected end of input",
			Line:    pos.Line,
			Column:  pos.Column,
			Offset:  OffsetAt(text, pos.Line, pos.Column),
		}
	}

	msg := err.Error()

	line, col := positionFromMessage(msg)
	if line > 0 && col > 0 {
		return &SyntaxError{
			Message: msg,
			Line:    line,
			Column:  col,
			Offset:  OffsetAt(text, line, col),
		}
	}

	return &SyntaxError{Message: msg}
}

func positionFromMessage(msg string) (int, int) {
	lm := errLineRE.FindStringSubmatch(msg)
	cm := errColumnRE.FindStringSubmatch(msg)

	if lm == nil || cm == nil {
		return 0, 0
	}

	line, err := strconv.Atoi(lm[1])
	if err != nil {
		return 0, 0
	}

	col, err := strconv.Atoi(cm[1])
	if err != nil {
		return 0, 0
	}

	return line, col
}
