package jsonpad

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultIndent is the indent width used by the convenience helpers.
const DefaultIndent = 2

// Nesting guard for programmatically built values; parsed JSON can never
// reach this.
const maxEncodeDepth = 10000

// Format serializes v as indented JSON with indent spaces per level,
// preserving object member order. Serialization failures wrap [ErrFormat].
func Format(v *Value, indent int) (string, error) {
	if indent < 0 {
		indent = 0
	}

	b := &strings.Builder{}

	err := writeValue(b, v, strings.Repeat(" ", indent), 0, indent > 0)
	if err != nil {
		return "", fmt.Errorf("%w / %w", err, ErrFormat)
	}

	return b.String(), nil
}

// Minify serializes v with no whitespace. Failures wrap [ErrMinify].
func Minify(v *Value) (string, error) {
	b := &strings.Builder{}

	err := writeValue(b, v, "", 0, false)
	if err != nil {
		return "", fmt.Errorf("%w / %w", err, ErrMinify)
	}

	return b.String(), nil
}

// FormatText parses text and reserializes it with indent spaces per level.
func FormatText(text string, indent int) (string, error) {
	v, err := Parse(text)
	if err != nil {
		return "", err
	}

	return Format(v, indent)
}

// MinifyText parses text and reserializes it with no whitespace.
func MinifyText(text string) (string, error) {
	v, err := Parse(text)
	if err != nil {
		return "", err
	}

	return Minify(v)
}

func writeValue(b *strings.Builder, v *Value, indent string, depth int, pretty bool) error {
	if v == nil {
		return fmt.Errorf("nil value: %w", ErrInvalidType)
	}

	if depth > maxEncodeDepth {
		return fmt.Errorf("nesting depth %d exceeded: %w", maxEncodeDepth, ErrInvalidType)
	}

	switch v.Kind {
	case Null:
		b.WriteString("null")
		return nil

	case Bool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
		return nil

	case Number:
		// json.Marshal validates the literal for us.
		out, err := json.Marshal(json.Number(v.Number))
		if err != nil {
			return err
		}
		b.Write(out)
		return nil

	case String:
		out, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		b.Write(out)
		return nil

	case Array:
		return writeArray(b, v, indent, depth, pretty)

	case Object:
		return writeObject(b, v, indent, depth, pretty)

	default:
		return fmt.Errorf("kind %d: %w", v.Kind, ErrInvalidType)
	}
}

func writeArray(b *strings.Builder, v *Value, indent string, depth int, pretty bool) error {
	if len(v.Items) == 0 {
		b.WriteString("[]")
		return nil
	}

	b.WriteByte('[')

	for i, item := range v.Items {
		if i > 0 {
			b.WriteByte(',')
		}

		if pretty {
			b.WriteByte('\n')
			writeIndent(b, indent, depth+1)
		}

		err := writeValue(b, item, indent, depth+1, pretty)
		if err != nil {
			return err
		}
	}

	if pretty {
		b.WriteByte('\n')
		writeIndent(b, indent, depth)
	}

	b.WriteByte(']')

	return nil
}

func writeObject(b *strings.Builder, v *Value, indent string, depth int, pretty bool) error {
	if len(v.Members) == 0 {
		b.WriteString("{}")
		return nil
	}

	b.WriteByte('{')

	for i, m := range v.Members {
		if i > 0 {
			b.WriteByte(',')
		}

		if pretty {
			b.WriteByte('\n')
			writeIndent(b, indent, depth+1)
		}

		key, err := json.Marshal(m.Key)
		if err != nil {
			return err
		}

		b.Write(key)
		b.WriteByte(':')

		if pretty {
			b.WriteByte(' ')
		}

		err = writeValue(b, m.Value, indent, depth+1, pretty)
		if err != nil {
			return err
		}
	}

	if pretty {
		b.WriteByte('\n')
		writeIndent(b, indent, depth)
	}

	b.WriteByte('}')

	return nil
}

func writeIndent(b *strings.Builder, indent string, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}
