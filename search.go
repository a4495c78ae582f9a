package jsonpad

import (
	"slices"
	"strings"
)

// Search recursively scans v for term, matching object keys and primitive
// values, in the same pre-order as [Flatten]. An empty term matches nothing.
//
// A key whose lowercase form contains the lowercase term reports that key's
// value immediately; its descendants are still searched independently, so
// the same path can legitimately appear twice (once for a key match, once
// for a value match).
//
// Strings and booleans match case-insensitively; numbers match by substring
// of the source literal against the term exactly as typed. Null matches only
// when the term itself contains "null" (substring of the term, not the other
// way around).
func Search(v *Value, term string) []Node {
	if v == nil || term == "" {
		return nil
	}

	s := &searcher{term: term, lower: strings.ToLower(term)}
	s.walk(v, "", nil)

	return s.out
}

type searcher struct {
	term  string
	lower string
	out   []Node
}

func (s *searcher) walk(v *Value, key string, path Path) {
	if v == nil {
		return
	}

	switch v.Kind {
	case Object:
		for _, m := range v.Members {
			child := append(slices.Clone(path), Segment{Key: m.Key})

			if strings.Contains(strings.ToLower(m.Key), s.lower) {
				s.emit(m.Key, m.Value, child)
			}

			s.walk(m.Value, m.Key, child)
		}

	case Array:
		for i, item := range v.Items {
			child := append(slices.Clone(path), Segment{Index: i, IsIndex: true})
			s.walk(item, "", child)
		}

	default:
		if s.primitiveMatches(v) {
			s.emit(key, v, path)
		}
	}
}

func (s *searcher) primitiveMatches(v *Value) bool {
	switch v.Kind {
	case String:
		return strings.Contains(strings.ToLower(v.Str), s.lower)

	case Bool:
		if v.Bool {
			return strings.Contains("true", s.lower)
		}
		return strings.Contains("false", s.lower)

	case Number:
		return strings.Contains(v.Number, s.term)

	case Null:
		// Deliberately inverted: the term must contain "null".
		return strings.Contains(s.lower, "null")

	default:
		return false
	}
}

func (s *searcher) emit(key string, v *Value, path Path) {
	s.out = append(s.out, Node{Key: key, Value: v, Type: v.Kind, Path: path})
}
