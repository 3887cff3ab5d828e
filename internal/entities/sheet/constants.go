package sheet

// Character field keys as authored in the roster
const (
	FieldName             = "nome_personagem"
	FieldLevel            = "nivel"
	FieldLevelAccented    = "nível"
	FieldAbilities        = "habilidades"
	FieldSkills           = "pericias"
	FieldProficiencies    = "proficiencias"
	FieldProficiencyBonus = "bonus_proficiencia"
	FieldInitiativeBonus  = "bonus_iniciativa"
	FieldHitPoints        = "pontos_vida"
	FieldHitDie           = "dado_vida"
	FieldArmorClass       = "classe_armadura"
	FieldRace             = "raca"
	FieldClass            = "classe"
	FieldLanguages        = "idiomas"
)

// Ability block keys
const (
	FieldAbilityName        = "nome"
	FieldAbilityValue       = "valor"
	FieldAbilityModifier    = "modificador"
	FieldSavingProficiency  = "proficiencia_resistencia"
	FieldSkillAbility       = "habilidade_relacionada"
	FieldSkillProficiency   = "proficiencia"
	FieldItemName           = "nome"
	FieldItemNameAlt        = "name"
	FieldItemDescription    = "descricao"
	FieldItemDescriptionAlt = "descrição"
)

// Ability keys in sheet order
const (
	AbilityStrength     = "forca"
	AbilityDexterity    = "destreza"
	AbilityConstitution = "constituicao"
	AbilityIntelligence = "inteligencia"
	AbilityWisdom       = "sabedoria"
	AbilityCharisma     = "carisma"
)

// AbilityOrder lists the ability keys in the order sheets show them
var AbilityOrder = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityTitles maps ability keys to their display titles
var AbilityTitles = map[string]string{
	AbilityStrength:     "Força",
	AbilityDexterity:    "Destreza",
	AbilityConstitution: "Constituição",
	AbilityIntelligence: "Inteligência",
	AbilityWisdom:       "Sabedoria",
	AbilityCharisma:     "Carisma",
}

// Proficiency list keys inside proficiencias
const (
	ProficiencyWeapons = "armas"
	ProficiencyArmor   = "armaduras"
	ProficiencyTools   = "ferramentas"
)
