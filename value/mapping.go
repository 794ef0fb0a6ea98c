package value

import "slices"

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Value
}

// Mapping is an insertion-ordered map with unique string keys.
// Setting an existing key replaces its value and keeps its position.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// MappingOf builds a Mapping from entries; later duplicates win.
func MappingOf(entries ...Entry) *Mapping {
	m := NewMapping()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores val under key.
func (m *Mapping) Set(key string, val Value) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = val
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: val})
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Null(), false
	}
	i, ok := m.index[key]
	if !ok {
		return Null(), false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	return slices.Clone(m.entries)
}

// Clone returns a shallow copy; nested Values are immutable so sharing them is safe.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping()
	if m == nil {
		return c
	}
	c.entries = slices.Clone(m.entries)
	for k, i := range m.index {
		c.index[k] = i
	}
	return c
}
