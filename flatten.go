package jsonpad

import "slices"

// Node is one value in a flattened document: the value itself, its JSON type
// tag, the key it sits under (empty for array items and the root), and its
// full path. [Search] reports matches with the same shape.
type Node struct {
	Key   string
	Value *Value
	Type  Kind
	Path  Path
}

// Flatten converts v into a depth-first pre-order list of nodes: each
// container before its children, array items in index order, object members
// in document order. Every value yields exactly one node, including the root
// and empty containers.
func Flatten(v *Value) []Node {
	return FlattenAt(v, nil)
}

// FlattenAt is [Flatten] with all node paths prefixed by prefix.
func FlattenAt(v *Value, prefix Path) []Node {
	return flattenValue(v, "", slices.Clone(prefix), nil)
}

func flattenValue(v *Value, key string, path Path, out []Node) []Node {
	if v == nil {
		return out
	}

	out = append(out, Node{Key: key, Value: v, Type: v.Kind, Path: path})

	switch v.Kind {
	case Array:
		for i, item := range v.Items {
			child := append(slices.Clone(path), Segment{Index: i, IsIndex: true})
			out = flattenValue(item, "", child, out)
		}

	case Object:
		for _, m := range v.Members {
			child := append(slices.Clone(path), Segment{Key: m.Key})
			out = flattenValue(m.Value, m.Key, child, out)
		}
	}

	return out
}
