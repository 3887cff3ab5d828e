package sheet

import "github.com/KirkDiggler/rpg-sheets/internal/entities/tree"

// ItemRef is one element of a character's item selection: either a bare name
// to look up in a catalog or an inline value used as authored.
type ItemRef interface {
	isItemRef()
}

// NameRef references a catalog entry by name
type NameRef struct {
	Name string
}

// InlineRef carries an item defined in place
type InlineRef struct {
	Value tree.Node
}

func (NameRef) isItemRef()   {}
func (InlineRef) isItemRef() {}

// RefOf classifies a selection element
func RefOf(n tree.Node) ItemRef {
	if name, ok := n.(string); ok {
		return NameRef{Name: name}
	}
	return InlineRef{Value: n}
}

// ItemTitle returns the display title of a resolved item: its nome, then its
// name, then the scalar itself. Empty when none apply.
func ItemTitle(item tree.Node) string {
	if m, ok := tree.AsMap(item); ok {
		if m.Truthy(FieldItemName) {
			return m.GetText(FieldItemName)
		}
		if m.Truthy(FieldItemNameAlt) {
			return m.GetText(FieldItemNameAlt)
		}
		return ""
	}
	return tree.Text(item)
}
