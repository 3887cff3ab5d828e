package tree

import (
	"math"
	"strconv"
	"strings"
)

// Text formats a value for display. Sequences and mappings are joined with
// ", " over their elements or values.
func Text(v Node) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []Node:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, Text(item))
		}
		return strings.Join(parts, ", ")
	case *Map:
		return Text(t.Values())
	default:
		return ""
	}
}

// Truthy reports whether v counts as set: nil, "", 0, NaN and false do not.
func Truthy(v Node) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case int:
		return t != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	case bool:
		return t
	default:
		return true
	}
}

// Int reads a whole number from an int, a float or a numeric string
func Int(v Node) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(t), "+"))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// AsMap returns v as a mapping
func AsMap(v Node) (*Map, bool) {
	m, ok := v.(*Map)
	return m, ok && m != nil
}

// AsList returns v as a sequence
func AsList(v Node) ([]Node, bool) {
	l, ok := v.([]Node)
	return l, ok
}

// GetMap returns the mapping stored under key, or nil
func (m *Map) GetMap(key string) *Map {
	v, _ := m.Get(key)
	out, _ := AsMap(v)
	return out
}

// GetText returns the display text stored under key
func (m *Map) GetText(key string) string {
	v, _ := m.Get(key)
	return Text(v)
}

// GetInt returns the number stored under key, or 0
func (m *Map) GetInt(key string) int {
	v, _ := m.Get(key)
	n, _ := Int(v)
	return n
}

// Truthy reports whether the value under key counts as set
func (m *Map) Truthy(key string) bool {
	v, _ := m.Get(key)
	return Truthy(v)
}
