// Package tree holds the untyped document model decoded from the YAML data
// files: scalars, sequences and ordered mappings.
package tree

// Node is a decoded value. It is one of:
//   - a scalar: string, int, float64, bool or nil
//   - a sequence: []Node
//   - a mapping: *Map
type Node = any

// Map is a mapping that remembers the order its keys were first set in.
// The order only matters for rendering; lookups are by key.
type Map struct {
	keys   []string
	values map[string]Node
}

// NewMap creates an empty map
func NewMap() *Map {
	return &Map{values: make(map[string]Node)}
}

// MapOf builds a map from alternating key, value arguments.
// It panics on an odd argument count or a non-string key and is meant for
// literals in code and tests.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("tree.MapOf: odd number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("tree.MapOf: key must be a string")
		}
		m.Set(key, kv[i+1])
	}
	return m
}

// Set stores value under key. Overwriting keeps the key's original position.
func (m *Map) Set(key string, value Node) {
	if m.values == nil {
		m.values = make(map[string]Node)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value under key
func (m *Map) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key order
func (m *Map) Values() []Node {
	if m == nil {
		return nil
	}
	out := make([]Node, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Len returns the number of keys
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each calls fn for every entry in key order
func (m *Map) Each(fn func(key string, value Node)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Clone returns a shallow copy of m
func (m *Map) Clone() *Map {
	out := NewMap()
	m.Each(out.Set)
	return out
}

// IsSingleton reports whether n is a mapping with exactly one key
func IsSingleton(n Node) bool {
	m, ok := n.(*Map)
	return ok && m.Len() == 1
}

// First returns the first key and value of a mapping
func (m *Map) First() (string, Node, bool) {
	if m.Len() == 0 {
		return "", nil, false
	}
	k := m.keys[0]
	return k, m.values[k], true
}
