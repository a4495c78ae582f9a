package jsonpad

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

func marshalYAML(v *Value) ([]byte, error) {
	buf := &bytes.Buffer{}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	err := enc.Encode(v.Interface())
	if err != nil {
		return nil, err
	}

	err = enc.Close()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
