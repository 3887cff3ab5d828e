// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *sheet.Character
}

// NewCharacterBuilder creates a builder for a character with the given ID
func NewCharacterBuilder(id string) *CharacterBuilder {
	return &CharacterBuilder{
		character: &sheet.Character{ID: id, Fields: tree.NewMap()},
	}
}

// WithField sets any field
func (b *CharacterBuilder) WithField(key string, value tree.Node) *CharacterBuilder {
	b.character.Fields.Set(key, value)
	return b
}

// WithName sets nome_personagem
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	return b.WithField(sheet.FieldName, name)
}

// WithAbility adds an ability block under habilidades
func (b *CharacterBuilder) WithAbility(key, name string, value, modifier int, savingProficiency bool) *CharacterBuilder {
	abilities := b.character.Fields.GetMap(sheet.FieldAbilities)
	if abilities == nil {
		abilities = tree.NewMap()
		b.character.Fields.Set(sheet.FieldAbilities, abilities)
	}
	block := tree.MapOf(
		sheet.FieldAbilityName, name,
		sheet.FieldAbilityValue, value,
		sheet.FieldAbilityModifier, modifier,
	)
	if savingProficiency {
		block.Set(sheet.FieldSavingProficiency, true)
	}
	abilities.Set(key, block)
	return b
}

// WithSkill adds a skill under pericias
func (b *CharacterBuilder) WithSkill(key, name, ability string, proficient bool) *CharacterBuilder {
	skills := b.character.Fields.GetMap(sheet.FieldSkills)
	if skills == nil {
		skills = tree.NewMap()
		b.character.Fields.Set(sheet.FieldSkills, skills)
	}
	skills.Set(key, tree.MapOf(
		sheet.FieldAbilityName, name,
		sheet.FieldSkillAbility, ability,
		sheet.FieldSkillProficiency, proficient,
	))
	return b
}

// WithItems sets a category selection
func (b *CharacterBuilder) WithItems(category sheet.Category, items ...tree.Node) *CharacterBuilder {
	return b.WithField(category.Field(), items)
}

// Build returns the character
func (b *CharacterBuilder) Build() *sheet.Character {
	return b.character
}
