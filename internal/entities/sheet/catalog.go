package sheet

import "github.com/KirkDiggler/rpg-sheets/internal/entities/tree"

// StubNameField is the only field of a record synthesized for a name the
// catalog does not define
const StubNameField = "name"

// Catalog maps item names to item definitions. It is read only once built.
type Catalog struct {
	entries *tree.Map
}

// NewCatalog wraps a mapping of item name to definition
func NewCatalog(entries *tree.Map) Catalog {
	return Catalog{entries: entries}
}

// Lookup returns the definition stored under name
func (c Catalog) Lookup(name string) (tree.Node, bool) {
	return c.entries.Get(name)
}

// Names returns the item names in catalog order
func (c Catalog) Names() []string {
	return c.entries.Keys()
}

// Len returns the number of entries
func (c Catalog) Len() int {
	return c.entries.Len()
}

// Entries returns a copy of the underlying mapping
func (c Catalog) Entries() *tree.Map {
	if c.entries == nil {
		return tree.NewMap()
	}
	return c.entries.Clone()
}

// Catalogs holds one catalog per category
type Catalogs map[Category]Catalog

// EmptyCatalogs returns a set with an empty catalog for every category
func EmptyCatalogs() Catalogs {
	out := make(Catalogs, len(Categories()))
	for _, c := range Categories() {
		out[c] = Catalog{}
	}
	return out
}

// Get returns the catalog for a category; a missing one is empty
func (c Catalogs) Get(category Category) Catalog {
	return c[category]
}

// StubRecord builds the display-only record for an unmatched name
func StubRecord(name string) *tree.Map {
	return tree.MapOf(StubNameField, name)
}
