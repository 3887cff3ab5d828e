// Package dice rolls the damage expressions written on weapons and spells
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-sheets/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

const (
	// FieldDamage holds a weapon's damage expression
	FieldDamage = "dano"
	// FieldDamageType holds a weapon's damage type
	FieldDamageType = "tipo_dano"
)

var (
	// XdY with an optional +Z or -Z, spaces allowed: "1d8", "2d6 + 3", "1d4-1"
	damageNotationRegex = regexp.MustCompile(`^(\d+)\s*d\s*(\d+)\s*(?:([+-])\s*(\d+))?$`)
)

// Service defines the interface for dice operations
type Service interface {
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
	RollWeaponDamage(ctx context.Context, input *RollWeaponDamageInput) (*RollWeaponDamageOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	// Roller is optional. Without one every roll goes through dice.NewRoll.
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	return nil
}

type orchestrator struct {
	roller dice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
	}, nil
}

// ParseNotation splits a damage expression into dice count, die size and
// flat modifier
func ParseNotation(notation string) (count, size, modifier int, err error) {
	matches := damageNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY, XdY+Z or XdY-Z)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}
	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	if count <= 0 || size <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	if matches[4] != "" {
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	return count, size, modifier, nil
}

// rollDice returns the individual results of count dice of the given size
func (o *orchestrator) rollDice(count, size int) ([]int, error) {
	if o.roller != nil {
		results, err := o.roller.RollN(count, size)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll dice")
		}
		return results, nil
	}

	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create dice roll")
	}

	// Description format: "+2d6[3,4]=7"
	description := roll.GetDescription()
	var results []int
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start >= 0 && end > start {
		for _, ds := range strings.Split(description[start+1:end], ",") {
			if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
				results = append(results, d)
			}
		}
	}

	if len(results) != count {
		// fall back to the total when the description cannot be read
		return []int{roll.GetValue()}, nil
	}
	return results, nil
}

// RollDamage evaluates a damage expression
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Notation) == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "roll canceled")
	}

	count, size, modifier, err := ParseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	results, err := o.rollDice(count, size)
	if err != nil {
		return nil, err
	}

	total := modifier
	for _, r := range results {
		total += r
	}

	slog.DebugContext(ctx, "rolled damage",
		"notation", input.Notation,
		"dice", results,
		"total", total)

	return &RollDamageOutput{
		Roll: &Roll{
			Notation: input.Notation,
			Count:    count,
			Size:     size,
			Modifier: modifier,
			Dice:     results,
			Total:    total,
		},
	}, nil
}

// RollWeaponDamage finds a weapon in a character's resolved armas and rolls
// its dano
func (o *orchestrator) RollWeaponDamage(ctx context.Context, input *RollWeaponDamageInput) (*RollWeaponDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Weapon == "" {
		return nil, errors.InvalidArgument("weapon is required")
	}

	character, ok := sheet.FindCharacter(input.Characters, input.CharacterID)
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.CharacterID)
	}

	weapon, name, found := findWeapon(character, input.Weapon)
	if !found {
		return nil, errors.NotFoundf("weapon %s not found for %s", input.Weapon, input.CharacterID)
	}
	if !weapon.Truthy(FieldDamage) {
		return nil, errors.FailedPreconditionf("weapon %s has no damage", input.Weapon).
			WithMeta("character_id", input.CharacterID)
	}

	out, err := o.RollDamage(ctx, &RollDamageInput{Notation: weapon.GetText(FieldDamage)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Weapon)
	}

	return &RollWeaponDamageOutput{
		Weapon:     name,
		DamageType: weapon.GetText(FieldDamageType),
		Roll:       out.Roll,
	}, nil
}

// findWeapon matches a weapon by its nome/name or by the name it was written
// as, case-insensitively. The returned record is nil for a non-mapping item.
func findWeapon(character *sheet.Character, query string) (*tree.Map, string, bool) {
	weapons, _ := character.Field(sheet.CategoryWeapons.Field())

	var items []tree.Node
	var names []string
	if m, isMap := tree.AsMap(weapons); isMap {
		items = m.Values()
		names = m.Keys()
	} else {
		items, _ = tree.AsList(weapons)
		for i := range items {
			names = append(names, character.RefName(sheet.CategoryWeapons, i))
		}
	}

	for i, item := range items {
		title := sheet.ItemTitle(item)
		if !strings.EqualFold(title, query) && !strings.EqualFold(names[i], query) {
			continue
		}
		if title == "" {
			title = names[i]
		}
		weapon, _ := tree.AsMap(item)
		return weapon, title, true
	}
	return nil, "", false
}
