// Package normalizer rewrites decoded roster and catalog trees into a single
// canonical shape. Authors often write a mapping as a list of one-key
// mappings; Normalize collapses that shorthand everywhere in a tree.
package normalizer

import (
	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// Normalize returns a canonical copy of n.
//
// Sequence elements are normalized first. When the sequence is non-empty and
// every normalized element is a singleton mapping, the sequence becomes one
// mapping, fields in sequence order, later duplicates overwriting earlier
// ones. Any other sequence, including an empty one, stays a sequence.
// Mappings keep their keys. Scalars are returned as is. The input is never
// modified, and Normalize(Normalize(n)) equals Normalize(n).
func Normalize(n tree.Node) tree.Node {
	switch v := n.(type) {
	case []tree.Node:
		items := make([]tree.Node, len(v))
		for i, item := range v {
			items[i] = Normalize(item)
		}
		if !collapsible(items) {
			return items
		}
		out := tree.NewMap()
		for _, item := range items {
			key, value, _ := item.(*tree.Map).First()
			out.Set(key, value)
		}
		return out
	case *tree.Map:
		out := tree.NewMap()
		v.Each(func(key string, value tree.Node) {
			out.Set(key, Normalize(value))
		})
		return out
	default:
		return n
	}
}

func collapsible(items []tree.Node) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !tree.IsSingleton(item) {
			return false
		}
	}
	return true
}

// ParseRoster turns a decoded roster into characters. The root must be a
// sequence of singleton mappings; each key becomes a character ID and its
// value is normalized into the character's fields.
func ParseRoster(root tree.Node) ([]*sheet.Character, error) {
	entries, ok := tree.AsList(root)
	if !ok {
		return nil, errors.InvalidArgument("roster root must be a sequence of characters")
	}

	characters := make([]*sheet.Character, 0, len(entries))
	for i, entry := range entries {
		if !tree.IsSingleton(entry) {
			return nil, errors.InvalidArgumentf("roster entry %d must be a mapping with a single character key", i).
				WithMeta("index", i)
		}

		id, value, _ := entry.(*tree.Map).First()
		fields, ok := tree.AsMap(Normalize(value))
		if !ok {
			fields = tree.NewMap()
		}

		characters = append(characters, &sheet.Character{
			ID:     id,
			Fields: fields,
		})
	}

	return characters, nil
}
