package dice

import "github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"

// RollDamageInput defines the request for rolling a damage expression
type RollDamageInput struct {
	Notation string
}

// RollDamageOutput defines the result of a damage roll
type RollDamageOutput struct {
	Roll *Roll
}

// RollWeaponDamageInput defines the request for rolling a character's weapon
type RollWeaponDamageInput struct {
	Characters  []*sheet.Character
	CharacterID string
	Weapon      string
}

// RollWeaponDamageOutput defines the result of a weapon damage roll
type RollWeaponDamageOutput struct {
	Weapon     string
	DamageType string
	Roll       *Roll
}

// Roll is one evaluated damage expression
type Roll struct {
	Notation string
	Count    int
	Size     int
	Modifier int
	Dice     []int
	Total    int
}
