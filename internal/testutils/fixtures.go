package testutils

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
)

// Fixture paths used by WriteFixtures
const (
	RosterPath = "ficha_personagens.yaml"
	CatalogDir = "yaml"
)

// RosterYAML is a two-character roster written in the singleton-list shorthand
const RosterYAML = `
- flip:
    - nome_personagem: Flip
    - nivel: 3
    - raca: Halfling
    - classe: Ladino
    - pontos_vida: 21
    - dado_vida: 1d8
    - classe_armadura: 14
    - bonus_proficiencia: 2
    - bonus_iniciativa: 1
    - idiomas: [Comum, Halfling]
    - habilidades:
        - forca: {nome: Força, valor: 8, modificador: -1}
        - destreza: {nome: Destreza, valor: 15, modificador: 2, proficiencia_resistencia: true}
        - inteligencia: {nome: Inteligência, valor: 12, modificador: 1, proficiencia_resistencia: true}
    - pericias:
        - furtividade: {nome: Furtividade, habilidade_relacionada: destreza, proficiencia: true}
        - atletismo: {nome: Atletismo, habilidade_relacionada: forca}
        - investigacao: {nome: Investigação, habilidade_relacionada: inteligencia}
    - proficiencias:
        - armas: [Armas simples, Espadas curtas]
        - armaduras: [Leves]
    - armas:
        - Adaga
        - nome: Funda Própria
          dano: 1d4
    - magias: [Mísseis Mágicos, Desconhecida]
    - truques: [Mãos Mágicas]
    - equipamentos: [Kit de Ladrão]
    - tracos: [Sortudo]
- bruna:
    - nome_personagem: Bruna
    - nível: 2
    - classe: Clériga
`

// WeaponsYAML is a weapons catalog in the singleton-list shorthand
const WeaponsYAML = `
- Adaga:
    - nome: Adaga
    - dano: 1d4
    - tipo_dano: perfurante
    - propriedades: [Acuidade, Leve, Arremesso (alcance 6/18)]
    - proficiencia: true
- Espada Curta:
    nome: Espada Curta
    dano: 1d6
    tipo_dano: perfurante
    propriedades: [Acuidade, Leve]
`

// SpellsYAML is a spells catalog written as a plain mapping
const SpellsYAML = `
Mísseis Mágicos:
  nome: Mísseis Mágicos
  descricao: Três dardos de força.
  dano: 1d4+1
  alcance: 36
  duracao: Instantânea
  componentes: [V, S]
`

// CantripsYAML is a cantrips catalog nested under its top key
const CantripsYAML = `
truques:
  Mãos Mágicas:
    nome: Mãos Mágicas
    alcance: 9
    duracao: 1 minuto
    componentes: [V, S]
`

// TraitsYAML is a traits catalog
const TraitsYAML = `
Sortudo:
  nome: Sortudo
  descricao: Rola novamente um 1 natural.
`

// EquipmentYAML is an equipment catalog exercising every rendering branch
const EquipmentYAML = `
Kit de Ladrão:
  nome: Kit de Ladrão
  peso: 0.5
  propriedades: [Ferramenta]
  efeitos:
    - Abrir fechaduras
    - nome: Desarmar armadilhas
  descricao: Ferramentas finas.
  bonus: +2 em testes
  conteudo: [Gazuas, Lima]
  custo: {po: 25}
`

// CatalogYAML returns the fixture for a category
func CatalogYAML(category sheet.Category) string {
	switch category {
	case sheet.CategoryWeapons:
		return WeaponsYAML
	case sheet.CategorySpells:
		return SpellsYAML
	case sheet.CategoryCantrips:
		return CantripsYAML
	case sheet.CategoryTraits:
		return TraitsYAML
	case sheet.CategoryEquipment:
		return EquipmentYAML
	default:
		return ""
	}
}

// WriteFixtures writes the roster at RosterPath and every catalog under
// CatalogDir
func WriteFixtures(fs afero.Fs) error {
	if err := afero.WriteFile(fs, RosterPath, []byte(RosterYAML), 0o644); err != nil {
		return err
	}
	if err := fs.MkdirAll(CatalogDir, 0o755); err != nil {
		return err
	}
	for _, category := range sheet.Categories() {
		path := filepath.Join(CatalogDir, category.FileName())
		if err := afero.WriteFile(fs, path, []byte(CatalogYAML(category)), 0o644); err != nil {
			return err
		}
	}
	return nil
}
