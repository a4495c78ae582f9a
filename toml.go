package jsonpad

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

func marshalTOML(v *Value) ([]byte, error) {
	if v == nil || v.Kind != Object {
		return nil, fmt.Errorf("toml requires a top-level object: %w", ErrInvalidType)
	}

	out, err := toml.Marshal(v.Interface())
	if err != nil {
		return nil, err
	}

	return out, nil
}
