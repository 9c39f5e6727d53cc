package feature

import "strconv"

// ValueKind identifies the variant stored in a Value.
type ValueKind int

const (
	// ValueKindNull is the default, unset attribute state.
	ValueKindNull ValueKind = iota
	// ValueKindBool holds a boolean.
	ValueKindBool
	// ValueKindInt holds a 64-bit signed integer.
	ValueKindInt
	// ValueKindFloat holds a 64-bit float.
	ValueKindFloat
	// ValueKindText holds a string.
	ValueKindText
)

// String returns the kind name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case ValueKindNull:
		return "Null"
	case ValueKindBool:
		return "Bool"
	case ValueKindInt:
		return "Int"
	case ValueKindFloat:
		return "Float"
	case ValueKindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Value is the tagged attribute value union crossing the feature
// boundary: null, boolean, integer, float or text.
//
// The zero Value is null. Values are immutable; comparison via Equal
// requires both kind and payload to match (no numeric coercion).
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// NullValue returns the null value. Equivalent to the zero Value.
func NullValue() Value {
	return Value{}
}

// BoolValue returns a boolean value.
func BoolValue(v bool) Value {
	return Value{kind: ValueKindBool, b: v}
}

// IntValue returns an integer value.
func IntValue(v int64) Value {
	return Value{kind: ValueKindInt, i: v}
}

// FloatValue returns a float value.
func FloatValue(v float64) Value {
	return Value{kind: ValueKindFloat, f: v}
}

// TextValue returns a text value.
func TextValue(v string) Value {
	return Value{kind: ValueKindText, s: v}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool {
	return v.kind == ValueKindNull
}

// Bool returns the boolean payload, or false when the kind differs.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload, or 0 when the kind differs.
func (v Value) Int() int64 {
	return v.i
}

// Float returns the float payload, or 0 when the kind differs.
func (v Value) Float() float64 {
	return v.f
}

// Text returns the text payload, or "" when the kind differs.
func (v Value) Text() string {
	return v.s
}

// Equal reports whether both values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueKindNull:
		return true
	case ValueKindBool:
		return v.b == other.b
	case ValueKindInt:
		return v.i == other.i
	case ValueKindFloat:
		return v.f == other.f
	case ValueKindText:
		return v.s == other.s
	default:
		return false
	}
}

// String renders the value as text. The rendering is deterministic:
// null is the empty string, booleans are "true"/"false", integers are
// base 10, floats use the shortest representation that round-trips.
// Used by Feature.String for diagnostics; not a serialization format.
func (v Value) String() string {
	switch v.kind {
	case ValueKindBool:
		return strconv.FormatBool(v.b)
	case ValueKindInt:
		return strconv.FormatInt(v.i, 10)
	case ValueKindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case ValueKindText:
		return v.s
	default:
		return ""
	}
}
