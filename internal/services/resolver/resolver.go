// Package resolver expands bare item names in a character's selections into
// the full definitions held by the catalogs.
package resolver

import (
	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
)

// Resolve returns selection with every name replaced by its catalog entry.
//
// Only sequences are resolved. A string element becomes the catalog entry of
// that name when the entry is a mapping, otherwise the stub {name: <string>}.
// Other elements pass through. Empty selections and any non-sequence shape
// are returned unchanged. The catalog is only read.
func Resolve(selection tree.Node, catalog sheet.Catalog) tree.Node {
	out, _ := resolveNamed(selection, catalog)
	return out
}

// resolveNamed resolves selection and also reports the name each element was
// written as, nil when selection is not a non-empty sequence
func resolveNamed(selection tree.Node, catalog sheet.Catalog) (tree.Node, []string) {
	items, ok := tree.AsList(selection)
	if !ok || len(items) == 0 {
		return selection, nil
	}

	out := make([]tree.Node, len(items))
	names := make([]string, len(items))
	for i, item := range items {
		ref := sheet.RefOf(item)
		if name, isName := ref.(sheet.NameRef); isName {
			names[i] = name.Name
		}
		out[i] = resolveRef(ref, catalog)
	}
	return out, names
}

func resolveRef(ref sheet.ItemRef, catalog sheet.Catalog) tree.Node {
	switch r := ref.(type) {
	case sheet.NameRef:
		if entry, ok := catalog.Lookup(r.Name); ok {
			if record, isMap := tree.AsMap(entry); isMap {
				return record
			}
		}
		return sheet.StubRecord(r.Name)
	case sheet.InlineRef:
		return r.Value
	default:
		return nil
	}
}

// ResolveCharacter resolves every category field the character has, in place.
// The written names are kept in RefNames; an element that is already a record
// keeps the name recorded by an earlier resolution.
func ResolveCharacter(character *sheet.Character, catalogs sheet.Catalogs) {
	if character.Fields == nil {
		return
	}
	for _, category := range sheet.Categories() {
		selection, ok := character.Fields.Get(category.Field())
		if !ok {
			continue
		}
		resolved, names := resolveNamed(selection, catalogs.Get(category))
		character.Fields.Set(category.Field(), resolved)
		if names == nil {
			continue
		}
		for i, name := range names {
			if name == "" {
				names[i] = character.RefName(category, i)
			}
		}
		if character.RefNames == nil {
			character.RefNames = make(map[sheet.Category][]string)
		}
		character.RefNames[category] = names
	}
}

// ResolveAll resolves every character in the roster
func ResolveAll(characters []*sheet.Character, catalogs sheet.Catalogs) {
	for _, c := range characters {
		ResolveCharacter(c, catalogs)
	}
}
