package jsonpad

import (
	"bytes"
	"fmt"

	"github.com/magiconair/properties"
)

// marshalProperties flattens the document to dotted-path keys, one line per
// primitive leaf.
func marshalProperties(v *Value) ([]byte, error) {
	if v == nil || v.Kind != Object {
		return nil, fmt.Errorf("properties requires a top-level object: %w", ErrInvalidType)
	}

	p := properties.NewProperties()
	p.WriteSeparator = "="

	for _, node := range Flatten(v) {
		if node.Type == Object || node.Type == Array {
			continue
		}

		key := node.Path.String()
		if key == "" {
			continue
		}

		p.Set(key, primitiveText(node.Value))
	}

	var buf bytes.Buffer

	_, err := p.Write(&buf, properties.UTF8)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func primitiveText(v *Value) string {
	switch v.Kind {
	case Null:
		return "null"
	case Bool:
		return fmt.Sprintf("%t", v.Bool)
	case Number:
		return v.Number
	case String:
		return v.Str
	default:
		return ""
	}
}
