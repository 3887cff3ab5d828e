package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
)

var (
	throwRangeRegex       = regexp.MustCompile(`(?i)alcance\s*([0-9]+\s*/\s*[0-9]+)`)
	throwParenthesisRegex = regexp.MustCompile(`(?i)arremesso[^)]*\((?:alcance\s*)?([^)]+)\)`)
	whitespaceRegex       = regexp.MustCompile(`\s+`)
)

// FormatBonus renders a modifier with its sign: +2, -1, +0
func FormatBonus(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Items returns the elements of a category field: a sequence as is, a
// mapping as its values in key order, anything else as nothing
func Items(n tree.Node) []tree.Node {
	switch v := n.(type) {
	case []tree.Node:
		return v
	case *tree.Map:
		return v.Values()
	default:
		return nil
	}
}

// ItemText returns the display text of a list element: a string as is, a
// mapping's nome or name, or its values joined
func ItemText(n tree.Node) string {
	if m, ok := tree.AsMap(n); ok {
		if title := sheet.ItemTitle(m); title != "" {
			return title
		}
		return tree.Text(m)
	}
	return tree.Text(n)
}

// JoinItems renders every element with ItemText joined by ", "
func JoinItems(n tree.Node) string {
	items := Items(n)
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, ItemText(item))
	}
	return strings.Join(parts, ", ")
}

// Initiative is the dexterity modifier plus bonus_iniciativa
func Initiative(c *sheet.Character) int {
	return c.Ability(sheet.AbilityDexterity).GetInt(sheet.FieldAbilityModifier) +
		c.Fields.GetInt(sheet.FieldInitiativeBonus)
}

// SkillBonus is the related ability's modifier. The proficiency bonus is not
// added.
func SkillBonus(skill, abilities *tree.Map) int {
	related := skill.GetText(sheet.FieldSkillAbility)
	return abilities.GetMap(related).GetInt(sheet.FieldAbilityModifier)
}

// SkillEntry is one skill with its pericias key
type SkillEntry struct {
	Key   string
	Skill *tree.Map
}

// GroupSkillsByAbility groups skills under their habilidade_relacionada in
// ability order. Skills naming an unknown ability are dropped; every known
// ability has an entry, possibly empty.
func GroupSkillsByAbility(skills *tree.Map) map[string][]SkillEntry {
	groups := make(map[string][]SkillEntry, len(sheet.AbilityOrder))
	for _, ability := range sheet.AbilityOrder {
		groups[ability] = []SkillEntry{}
	}

	skills.Each(func(key string, value tree.Node) {
		skill, ok := tree.AsMap(value)
		if !ok {
			return
		}
		ability := skill.GetText(sheet.FieldSkillAbility)
		if _, known := groups[ability]; known {
			groups[ability] = append(groups[ability], SkillEntry{Key: key, Skill: skill})
		}
	})

	return groups
}

// ThrowRange returns alcance_arremesso or, failing that, the range written
// inside a property such as "Arremesso (alcance 20/60)"
func ThrowRange(weapon *tree.Map) string {
	if weapon.Truthy("alcance_arremesso") {
		return weapon.GetText("alcance_arremesso")
	}

	props, _ := weapon.Get("propriedades")
	list, _ := tree.AsList(props)
	for _, p := range list {
		text := tree.Text(p)
		if m := throwRangeRegex.FindStringSubmatch(text); m != nil {
			return whitespaceRegex.ReplaceAllString(m[1], "")
		}
		if m := throwParenthesisRegex.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// RangeText renders a spell range: numbers in meters, anything else as text
func RangeText(v tree.Node) string {
	switch t := v.(type) {
	case int, float64:
		return tree.Text(t) + "m"
	default:
		return tree.Text(t)
	}
}

// ProficiencyList renders one proficiencias list, or "Nenhuma" when empty
func ProficiencyList(n tree.Node) string {
	if len(Items(n)) == 0 {
		return "Nenhuma"
	}
	return JoinItems(n)
}

// ImagePath returns the avatar path for a character
func ImagePath(dir, id, ext string) string {
	return joinImage(dir, "token_"+id+"."+ext)
}
