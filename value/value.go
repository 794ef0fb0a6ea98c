// Package value defines the tagged-union tree shared by every structured-data
// parser and serializer in convkit.
//
// A Value is one of Null, Bool, Number, String, List or Mapping. Mappings keep
// their keys unique and in insertion order so serializers can reproduce the
// source order. Values built by the constructors in this package are never
// mutated afterwards: accessors return copies.
package value

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is the absent value (JSON null, empty XML element text).
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is a float64.
	KindNumber
	// KindString is text.
	KindString
	// KindList is an ordered, possibly heterogeneous sequence.
	KindList
	// KindMapping is an insertion-ordered string-keyed map.
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is an immutable node of the structured-data tree.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
	m    *Mapping
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a text Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list Value holding a copy of items.
func List(items ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// Map returns a mapping Value holding a copy of m.
// A nil m yields an empty mapping.
func Map(m *Mapping) Value {
	if m == nil {
		return Value{kind: KindMapping, m: NewMapping()}
	}
	return Value{kind: KindMapping, m: m.Clone()}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number held by v.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the text held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsList returns a copy of the items held by v.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// Len returns the number of list items or mapping entries, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMapping:
		return v.m.Len()
	default:
		return 0
	}
}

// Index returns the i-th list item, or Null when out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindList || i < 0 || i >= len(v.list) {
		return Null()
	}
	return v.list[i]
}

// AsMapping returns a copy of the mapping held by v.
func (v Value) AsMapping() (*Mapping, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	return v.m.Clone(), true
}

// Get returns the value stored under key when v is a Mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Null(), false
	}
	return v.m.Get(key)
}

// Keys returns the mapping keys of v in insertion order, or nil.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return v.m.Keys()
}

// Text renders a scalar the way text-based formats (CSV cells, XML text,
// YAML plain scalars) expect: null is empty, integral numbers have no
// fraction, and booleans are true/false. Collections render as their kind.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return FormatNumber(v.n)
	case KindString:
		return v.s
	default:
		return v.kind.String()
	}
}

// IsScalar reports whether v is neither a List nor a Mapping.
func (v Value) IsScalar() bool {
	return v.kind != KindList && v.kind != KindMapping
}

// GoString implements fmt.GoStringer for readable test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.GoString()
		}
		return "List[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		parts := make([]string, 0, v.m.Len())
		for _, e := range v.m.entries {
			parts = append(parts, strconv.Quote(e.Key)+": "+e.Value.GoString())
		}
		return "Mapping{" + strings.Join(parts, ", ") + "}"
	default:
		return v.Text()
	}
}

// FormatNumber renders n with the shortest representation that parses back to
// the same float64. Integral values inside the exact float64 range have no
// fractional part.
func FormatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
