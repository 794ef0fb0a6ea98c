package value

import (
	"slices"
	"sort"
)

// Equal reports whether a and b are structurally equal.
// Mapping comparison ignores key order; list comparison does not.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindList:
		return slices.EqualFunc(a.list, b.list, Equal)
	case KindMapping:
		if a.m.Len() != b.m.Len() {
			return false
		}
		for _, e := range a.m.entries {
			other, ok := b.m.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Interface converts v into plain Go values: nil, bool, float64, string,
// []any and map[string]any. Key order is lost for mappings.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, v.m.Len())
		for _, e := range v.m.entries {
			out[e.Key] = e.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// FromInterface converts plain Go data into a Value. Maps are sorted by key.
// Integer kinds become Numbers; any unrecognized type becomes Null.
func FromInterface(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromInterface(item)
		}
		return Value{kind: KindList, list: items}
	case []string:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = String(item)
		}
		return Value{kind: KindList, list: items}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, FromInterface(t[k]))
		}
		return Value{kind: KindMapping, m: m}
	case map[string]string:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, String(t[k]))
		}
		return Value{kind: KindMapping, m: m}
	default:
		return Null()
	}
}

// Walk calls fn for v and every nested value in depth-first document order.
// The path uses "." for mapping keys and "[i]" for list indexes; the root path is "".
// Returning false from fn skips the children of that value.
func Walk(v Value, fn func(path string, v Value) bool) {
	walk("", v, fn)
}

func walk(path string, v Value, fn func(string, Value) bool) {
	if !fn(path, v) {
		return
	}
	switch v.kind {
	case KindList:
		for i, item := range v.list {
			walk(path+"["+itoa(i)+"]", item, fn)
		}
	case KindMapping:
		for _, e := range v.m.entries {
			child := e.Key
			if path != "" {
				child = path + "." + e.Key
			}
			walk(child, e.Value, fn)
		}
	}
}

func itoa(i int) string {
	return FormatNumber(float64(i))
}
