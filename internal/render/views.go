package render

import (
	"html/template"
	"strings"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
)

// CardView is the data behind one character card
type CardView struct {
	ID             string
	Name           string
	Image          string
	FallbackImage  string
	Level          string
	HasLevel       bool
	HitPoints      string
	HasHitPoints   bool
	HitDie         string
	ArmorClass     string
	HasArmorClass  bool
	Proficiency    string
	HasProficiency bool
	Race           string
	Class          string
	Languages      []string
	Initiative     string
	Abilities      []AbilityView
	SavingThrows   []SavingThrowView
	SkillGroups    []SkillGroupView
	Proficiencies  ProficienciesView
	Actions        []ActionView
}

// AbilityView is one ability score block
type AbilityView struct {
	Key      string
	Name     string
	Value    string
	Modifier string
}

// SavingThrowView is one saving throw line
type SavingThrowView struct {
	Name       string
	Bonus      string
	Proficient bool
}

// SkillGroupView lists the skills of one ability
type SkillGroupView struct {
	Title  string
	Skills []SkillView
}

// SkillView is one skill line
type SkillView struct {
	Name       string
	Bonus      string
	Proficient bool
}

// ProficienciesView holds the three proficiency lists as text
type ProficienciesView struct {
	Weapons string
	Armor   string
	Tools   string
}

// ActionView is a detail button on a card
type ActionView struct {
	Action string
	Label  string
}

// NewCardView builds the card data for a character. Absent fields are left
// empty and flagged so the template omits them.
func NewCardView(c *sheet.Character, imageDir string) CardView {
	fields := c.Fields

	view := CardView{
		ID:            c.ID,
		Name:          c.DisplayName(),
		Image:         ImagePath(imageDir, c.ID, "png"),
		FallbackImage: ImagePath(imageDir, c.ID, "gif"),
		Race:          truthyText(fields, sheet.FieldRace),
		Class:         truthyText(fields, sheet.FieldClass),
		HitDie:        truthyText(fields, sheet.FieldHitDie),
		Initiative:    FormatBonus(Initiative(c)),
		Proficiencies: newProficienciesView(fields.GetMap(sheet.FieldProficiencies)),
	}

	if level, ok := c.Level(); ok {
		view.Level, view.HasLevel = tree.Text(level), true
	}
	if v, ok := fields.Get(sheet.FieldHitPoints); ok {
		view.HitPoints, view.HasHitPoints = tree.Text(v), true
	}
	if v, ok := fields.Get(sheet.FieldArmorClass); ok {
		view.ArmorClass, view.HasArmorClass = tree.Text(v), true
	}
	if _, ok := fields.Get(sheet.FieldProficiencyBonus); ok {
		view.Proficiency = FormatBonus(fields.GetInt(sheet.FieldProficiencyBonus))
		view.HasProficiency = true
	}

	if langs, ok := fields.Get(sheet.FieldLanguages); ok {
		if list, isList := tree.AsList(langs); isList {
			for _, l := range list {
				view.Languages = append(view.Languages, tree.Text(l))
			}
		}
	}

	abilities := c.Abilities()
	for _, key := range sheet.AbilityOrder {
		ability := abilities.GetMap(key)
		if ability == nil {
			continue
		}
		view.Abilities = append(view.Abilities, AbilityView{
			Key:      key,
			Name:     ability.GetText(sheet.FieldAbilityName),
			Value:    ability.GetText(sheet.FieldAbilityValue),
			Modifier: FormatBonus(ability.GetInt(sheet.FieldAbilityModifier)),
		})
		view.SavingThrows = append(view.SavingThrows, SavingThrowView{
			Name:       ability.GetText(sheet.FieldAbilityName),
			Bonus:      FormatBonus(ability.GetInt(sheet.FieldAbilityModifier)),
			Proficient: ability.Truthy(sheet.FieldSavingProficiency),
		})
	}

	view.SkillGroups = newSkillGroups(fields.GetMap(sheet.FieldSkills), abilities)

	for _, category := range sheet.ActionOrder() {
		view.Actions = append(view.Actions, ActionView{
			Action: string(category),
			Label:  category.Label(),
		})
	}

	return view
}

func truthyText(m *tree.Map, key string) string {
	if !m.Truthy(key) {
		return ""
	}
	return m.GetText(key)
}

func newSkillGroups(skills, abilities *tree.Map) []SkillGroupView {
	grouped := GroupSkillsByAbility(skills)

	var groups []SkillGroupView
	for _, ability := range sheet.AbilityOrder {
		entries := grouped[ability]
		if len(entries) == 0 {
			continue
		}
		group := SkillGroupView{Title: sheet.AbilityTitles[ability]}
		for _, entry := range entries {
			group.Skills = append(group.Skills, SkillView{
				Name:       entry.Skill.GetText(sheet.FieldAbilityName),
				Bonus:      FormatBonus(SkillBonus(entry.Skill, abilities)),
				Proficient: entry.Skill.Truthy(sheet.FieldSkillProficiency),
			})
		}
		groups = append(groups, group)
	}
	return groups
}

func newProficienciesView(profs *tree.Map) ProficienciesView {
	get := func(key string) string {
		v, _ := profs.Get(key)
		return ProficiencyList(v)
	}
	return ProficienciesView{
		Weapons: get(sheet.ProficiencyWeapons),
		Armor:   get(sheet.ProficiencyArmor),
		Tools:   get(sheet.ProficiencyTools),
	}
}

// WeaponView is one weapon in the weapons detail
type WeaponView struct {
	Title      string
	Proficient bool
	Damage     string
	DamageType string
	ThrowRange string
	Tags       []string
}

// SpellView is one spell or cantrip in its detail
type SpellView struct {
	Title       string
	Description template.HTML
	Damage      string
	Range       string
	Duration    string
	Components  []ComponentView
}

// ComponentView is one spell component tag
type ComponentView struct {
	Text  string
	Class string
}

// EquipmentView is one piece of equipment in its detail
type EquipmentView struct {
	Title string
	Parts []EquipmentPart
}

// Equipment part kinds
const (
	PartTags    = "tags"
	PartEffects = "effects"
	PartText    = "text"
	PartLabeled = "labeled"
)

// EquipmentPart is one rendered field of a piece of equipment
type EquipmentPart struct {
	Kind  string
	Label string
	Text  string
	HTML  template.HTML
	Items []string
}

// TraitView is one trait in the traits detail
type TraitView struct {
	Title       string
	Description template.HTML
}

func titleOr(item tree.Node, fallback string) string {
	if title := sheet.ItemTitle(item); title != "" {
		return title
	}
	return fallback
}

func newWeaponView(item tree.Node, fallback string) WeaponView {
	view := WeaponView{Title: titleOr(item, fallback)}
	weapon, ok := tree.AsMap(item)
	if !ok {
		return view
	}

	view.Proficient = weapon.Truthy(sheet.FieldSkillProficiency)
	view.Damage = truthyText(weapon, "dano")
	view.DamageType = truthyText(weapon, "tipo_dano")
	view.ThrowRange = ThrowRange(weapon)

	props, _ := weapon.Get("propriedades")
	if list, isList := tree.AsList(props); isList {
		for _, p := range list {
			view.Tags = append(view.Tags, tree.Text(p))
		}
	}
	return view
}

func newSpellView(item tree.Node, fallback string) SpellView {
	view := SpellView{Title: titleOr(item, fallback)}
	spell, ok := tree.AsMap(item)
	if !ok {
		return view
	}

	if spell.Truthy(sheet.FieldItemDescription) {
		view.Description = sanitize(spell.GetText(sheet.FieldItemDescription))
	}
	view.Damage = truthyText(spell, "dano")
	if v, has := spell.Get("alcance"); has {
		view.Range = RangeText(v)
	}
	view.Duration = truthyText(spell, "duracao")

	comps, _ := spell.Get("componentes")
	if list, isList := tree.AsList(comps); isList {
		for _, c := range list {
			text := tree.Text(c)
			view.Components = append(view.Components, ComponentView{
				Text:  text,
				Class: "comp-" + strings.ToUpper(text),
			})
		}
	}
	return view
}

func newTraitView(item tree.Node, fallback string) TraitView {
	view := TraitView{Title: titleOr(item, fallback)}
	if trait, ok := tree.AsMap(item); ok && trait.Truthy(sheet.FieldItemDescription) {
		view.Description = sanitize(trait.GetText(sheet.FieldItemDescription))
	}
	return view
}

func newEquipmentView(item tree.Node, fallback string) EquipmentView {
	view := EquipmentView{Title: titleOr(item, fallback)}
	equipment, ok := tree.AsMap(item)
	if !ok {
		return view
	}

	equipment.Each(func(key string, value tree.Node) {
		if part, keep := equipmentPart(key, value); keep {
			view.Parts = append(view.Parts, part)
		}
	})
	return view
}

func equipmentPart(key string, value tree.Node) (EquipmentPart, bool) {
	lower := strings.ToLower(key)

	switch {
	case lower == sheet.FieldItemName || lower == sheet.FieldItemNameAlt:
		return EquipmentPart{}, false

	case lower == "propriedades":
		list, _ := tree.AsList(value)
		if len(list) == 0 {
			return EquipmentPart{}, false
		}
		part := EquipmentPart{Kind: PartTags}
		for _, p := range list {
			part.Items = append(part.Items, tree.Text(p))
		}
		return part, true

	case lower == "efeitos":
		list, _ := tree.AsList(value)
		if len(list) == 0 {
			return EquipmentPart{}, false
		}
		part := EquipmentPart{Kind: PartEffects, Label: "Efeitos"}
		for _, e := range list {
			part.Items = append(part.Items, ItemText(e))
		}
		return part, true

	case lower == sheet.FieldItemDescription || lower == sheet.FieldItemDescriptionAlt:
		if !tree.Truthy(value) {
			return EquipmentPart{}, false
		}
		return EquipmentPart{Kind: PartText, HTML: sanitize(value)}, true

	case lower == "bonus" || lower == "bônus":
		if !tree.Truthy(value) {
			return EquipmentPart{}, false
		}
		return EquipmentPart{Kind: PartLabeled, Label: "Bônus", Text: tree.Text(value)}, true
	}

	switch v := value.(type) {
	case []tree.Node:
		if len(v) == 0 {
			return EquipmentPart{}, false
		}
		return EquipmentPart{Kind: PartLabeled, Label: key, Text: JoinItems(v)}, true
	case *tree.Map:
		pairs := make([]string, 0, v.Len())
		v.Each(func(k string, inner tree.Node) {
			pairs = append(pairs, k+": "+tree.Text(inner))
		})
		return EquipmentPart{Kind: PartLabeled, Label: key, Text: strings.Join(pairs, "; ")}, true
	case nil:
		return EquipmentPart{}, false
	default:
		text := tree.Text(v)
		if text == "" {
			return EquipmentPart{}, false
		}
		return EquipmentPart{Kind: PartLabeled, Label: key, Text: text}, true
	}
}
