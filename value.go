package jsonpad

import "strconv"

// Kind identifies the variant held by a [Value].
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON type tag for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Member is a single key/value pair of a JSON object. Objects keep their
// members in document order.
type Member struct {
	Key   string
	Value *Value
}

// Value is a parsed JSON value. Exactly the fields for the active Kind are
// meaningful: Bool for Bool, Number (the source literal) for Number, Str for
// String, Items for Array, Members for Object.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  string
	Str     string
	Items   []*Value
	Members []Member
}

// Get returns the member value for key, or nil if v is not an object or the
// key is absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != Object {
		return nil
	}

	for _, m := range v.Members {
		if m.Key == key {
			return m.Value
		}
	}

	return nil
}

// Len returns the number of direct children (array items or object members).
func (v *Value) Len() int {
	if v == nil {
		return 0
	}

	switch v.Kind {
	case Array:
		return len(v.Items)
	case Object:
		return len(v.Members)
	default:
		return 0
	}
}

// Equal reports deep equality between two values. Objects compare by ordered
// member list; numbers compare by literal text.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}

	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case Null:
		return true

	case Bool:
		return v.Bool == other.Bool

	case Number:
		return v.Number == other.Number

	case String:
		return v.Str == other.Str

	case Array:
		if len(v.Items) != len(other.Items) {
			return false
		}
		for i, item := range v.Items {
			if !item.Equal(other.Items[i]) {
				return false
			}
		}
		return true

	case Object:
		if len(v.Members) != len(other.Members) {
			return false
		}
		for i, m := range v.Members {
			if m.Key != other.Members[i].Key || !m.Value.Equal(other.Members[i].Value) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// Interface converts the value to plain Go types (nil, bool, int64 or
// float64 for numbers with the raw literal as a fallback, string, []any,
// map[string]any). Object key order is lost; callers that care about order
// should walk Members directly.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}

	switch v.Kind {
	case Null:
		return nil

	case Bool:
		return v.Bool

	case Number:
		return numberInterface(v.Number)

	case String:
		return v.Str

	case Array:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = item.Interface()
		}
		return out

	case Object:
		out := make(map[string]any, len(v.Members))
		for _, m := range v.Members {
			out[m.Key] = m.Value.Interface()
		}
		return out

	default:
		return nil
	}
}

func numberInterface(lit string) any {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return f
	}

	return lit
}
