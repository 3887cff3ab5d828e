package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/render"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils/builders"
)

type FormatTestSuite struct {
	suite.Suite
}

func TestFormatSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (s *FormatTestSuite) TestFormatBonus() {
	testCases := []struct {
		input    int
		expected string
	}{
		{input: 3, expected: "+3"},
		{input: -1, expected: "-1"},
		{input: 0, expected: "+0"},
	}

	for _, tc := range testCases {
		s.Run(tc.expected, func() {
			s.Equal(tc.expected, render.FormatBonus(tc.input))
		})
	}
}

func (s *FormatTestSuite) TestItems() {
	s.Run("sequence as is", func() {
		s.Equal([]tree.Node{"a", "b"}, render.Items([]tree.Node{"a", "b"}))
	})
	s.Run("mapping values in key order", func() {
		m := tree.MapOf("z", 1, "a", 2)
		s.Equal([]tree.Node{1, 2}, render.Items(m))
	})
	s.Run("scalar is empty", func() {
		s.Empty(render.Items("x"))
		s.Empty(render.Items(nil))
	})
}

func (s *FormatTestSuite) TestGroupSkillsByAbility() {
	skills := tree.MapOf(
		"furtividade", tree.MapOf("nome", "Furtividade", "habilidade_relacionada", "destreza"),
		"voo", tree.MapOf("nome", "Voo", "habilidade_relacionada", "asas"),
		"acrobacia", tree.MapOf("nome", "Acrobacia", "habilidade_relacionada", "destreza"),
		"atletismo", tree.MapOf("nome", "Atletismo", "habilidade_relacionada", "forca"),
	)

	groups := render.GroupSkillsByAbility(skills)

	s.Len(groups, len(sheet.AbilityOrder))
	s.Require().Len(groups[sheet.AbilityDexterity], 2)
	s.Equal("furtividade", groups[sheet.AbilityDexterity][0].Key)
	s.Equal("acrobacia", groups[sheet.AbilityDexterity][1].Key)
	s.Len(groups[sheet.AbilityStrength], 1)
	s.Empty(groups[sheet.AbilityCharisma])
	s.NotContains(groups, "asas")
}

func (s *FormatTestSuite) TestGroupSkillsByAbilityNil() {
	groups := render.GroupSkillsByAbility(nil)
	for _, ability := range sheet.AbilityOrder {
		s.Empty(groups[ability])
	}
}

func (s *FormatTestSuite) TestSkillBonus() {
	abilities := tree.MapOf(
		"destreza", tree.MapOf("modificador", 3),
	)

	s.Run("uses the related ability modifier", func() {
		skill := tree.MapOf("habilidade_relacionada", "destreza", "proficiencia", true)
		s.Equal(3, render.SkillBonus(skill, abilities))
	})
	s.Run("unknown ability is zero", func() {
		skill := tree.MapOf("habilidade_relacionada", "sabedoria")
		s.Equal(0, render.SkillBonus(skill, abilities))
	})
}

func (s *FormatTestSuite) TestInitiative() {
	s.Run("dexterity plus bonus", func() {
		c := builders.NewCharacterBuilder("flip").
			WithAbility(sheet.AbilityDexterity, "Destreza", 15, 2, false).
			WithField(sheet.FieldInitiativeBonus, 1).
			Build()
		s.Equal(3, render.Initiative(c))
	})
	s.Run("nothing set is zero", func() {
		s.Equal(0, render.Initiative(builders.NewCharacterBuilder("x").Build()))
	})
}

func (s *FormatTestSuite) TestThrowRange() {
	testCases := []struct {
		name     string
		weapon   *tree.Map
		expected string
	}{
		{
			name:     "explicit field wins",
			weapon:   tree.MapOf("alcance_arremesso", "9/27", "propriedades", []tree.Node{"Arremesso (alcance 6/18)"}),
			expected: "9/27",
		},
		{
			name:     "alcance pattern in a property",
			weapon:   tree.MapOf("propriedades", []tree.Node{"Leve", "Arremesso (alcance 20 / 60)"}),
			expected: "20/60",
		},
		{
			name:     "parenthesis after arremesso",
			weapon:   tree.MapOf("propriedades", []tree.Node{"Arremesso (curto)"}),
			expected: "curto",
		},
		{
			name:     "no throw property",
			weapon:   tree.MapOf("propriedades", []tree.Node{"Pesada"}),
			expected: "",
		},
		{
			name:     "no properties",
			weapon:   tree.MapOf("dano", "1d8"),
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, render.ThrowRange(tc.weapon))
		})
	}
}

func (s *FormatTestSuite) TestRangeText() {
	s.Equal("36m", render.RangeText(36))
	s.Equal("1.5m", render.RangeText(1.5))
	s.Equal("Toque", render.RangeText("Toque"))
	s.Equal("", render.RangeText(nil))
}

func (s *FormatTestSuite) TestProficiencyList() {
	s.Equal("Nenhuma", render.ProficiencyList(nil))
	s.Equal("Nenhuma", render.ProficiencyList([]tree.Node{}))
	s.Equal("Leves, Médias", render.ProficiencyList([]tree.Node{"Leves", tree.MapOf("nome", "Médias")}))
	s.Equal("Escudo", render.ProficiencyList([]tree.Node{tree.MapOf("name", "Escudo")}))
}

func TestImagePath(t *testing.T) {
	assert.Equal(t, "img/token_flip.png", render.ImagePath("img", "flip", "png"))
	assert.Equal(t, "img/token_flip.gif", render.ImagePath("img/", "flip", "gif"))
	assert.Equal(t, "token_flip.png", render.ImagePath("", "flip", "png"))
}
