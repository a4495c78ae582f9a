package jsonpad

import (
	"fmt"
	"sort"
)

type exportFormat struct {
	marshal func(*Value) ([]byte, error)
}

var formatByExtension = map[string]exportFormat{
	"json": {
		marshal: marshalJSON,
	},
	"json-pretty": {
		marshal: marshalJSONPretty,
	},
	"yaml": {
		marshal: marshalYAML,
	},
	"yml": {
		marshal: marshalYAML,
	},
	"toml": {
		marshal: marshalTOML,
	},
	"properties": {
		marshal: marshalProperties,
	},
}

// Export serializes v in the named format (keyed by file extension).
func Export(v *Value, name string) ([]byte, error) {
	f, found := formatByExtension[name]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}

	out, err := f.marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w / %w", err, ErrEncode)
	}

	return out, nil
}

// ExportText parses text and serializes it in the named format.
func ExportText(text string, name string) ([]byte, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, err
	}

	return Export(v, name)
}

// Extensions returns the supported export format names, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(formatByExtension))
	for ext := range formatByExtension {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}

func marshalJSON(v *Value) ([]byte, error) {
	out, err := Minify(v)
	if err != nil {
		return nil, err
	}

	return append([]byte(out), '\n'), nil
}

func marshalJSONPretty(v *Value) ([]byte, error) {
	out, err := Format(v, DefaultIndent)
	if err != nil {
		return nil, err
	}

	return append([]byte(out), '\n'), nil
}
