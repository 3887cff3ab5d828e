// Package sheet defines the character sheet model: characters decoded from the
// roster, the item categories they reference and the catalogs those
// references resolve against.
package sheet

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
)

// EntityType is the rpg-toolkit entity type of a roster character
const EntityType = "character"

// Character is one roster entry. ID is the entry's top-level key and never
// changes; Fields holds the normalized sheet data.
//
// RefNames records, per category, the name each resolved selection element
// was written as. Inline elements have an empty name.
type Character struct {
	ID       string
	Fields   *tree.Map
	RefNames map[Category][]string
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character's roster key
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityType
}

// DisplayName returns nome_personagem, falling back to the ID
func (c *Character) DisplayName() string {
	if c.Fields.Truthy(FieldName) {
		return c.Fields.GetText(FieldName)
	}
	return c.ID
}

// Field returns a raw field value
func (c *Character) Field(key string) (tree.Node, bool) {
	return c.Fields.Get(key)
}

// RefName returns the name the i-th element of a category selection was
// written as, or "" when it was inline or the selection was not resolved
func (c *Character) RefName(category Category, i int) string {
	names := c.RefNames[category]
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// Level returns the level from nivel or nível
func (c *Character) Level() (tree.Node, bool) {
	if v, ok := c.Fields.Get(FieldLevel); ok && v != nil {
		return v, true
	}
	if v, ok := c.Fields.Get(FieldLevelAccented); ok && v != nil {
		return v, true
	}
	return nil, false
}

// Abilities returns the habilidades mapping, possibly nil
func (c *Character) Abilities() *tree.Map {
	return c.Fields.GetMap(FieldAbilities)
}

// Ability returns one ability block by key, possibly nil
func (c *Character) Ability(key string) *tree.Map {
	return c.Abilities().GetMap(key)
}

// FindCharacter returns the first character with the given ID
func FindCharacter(characters []*Character, id string) (*Character, bool) {
	for _, c := range characters {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}
