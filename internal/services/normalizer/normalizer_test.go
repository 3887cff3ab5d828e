package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/services/normalizer"
)

type NormalizerTestSuite struct {
	suite.Suite
}

func TestNormalizerSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func (s *NormalizerTestSuite) TestNormalize() {
	testCases := []struct {
		name     string
		input    tree.Node
		expected tree.Node
	}{
		{
			name:     "singleton sequence collapses into a mapping",
			input:    []tree.Node{tree.MapOf("a", 1), tree.MapOf("b", 2)},
			expected: tree.MapOf("a", 1, "b", 2),
		},
		{
			name:     "empty sequence stays a sequence",
			input:    []tree.Node{},
			expected: []tree.Node{},
		},
		{
			name:     "mixed sequence is kept with elements normalized",
			input:    []tree.Node{"Espada", tree.MapOf("x", []tree.Node{tree.MapOf("y", 1)})},
			expected: []tree.Node{"Espada", tree.MapOf("x", tree.MapOf("y", 1))},
		},
		{
			name:     "sequence with a multi-key mapping is not collapsed",
			input:    []tree.Node{tree.MapOf("a", 1), tree.MapOf("b", 2, "c", 3)},
			expected: []tree.Node{tree.MapOf("a", 1), tree.MapOf("b", 2, "c", 3)},
		},
		{
			name:     "duplicate keys are last write wins",
			input:    []tree.Node{tree.MapOf("armas", []tree.Node{"Adaga"}), tree.MapOf("armas", []tree.Node{"Espada"})},
			expected: tree.MapOf("armas", []tree.Node{"Espada"}),
		},
		{
			name:     "nested mappings are normalized",
			input:    tree.MapOf("habilidades", []tree.Node{tree.MapOf("forca", []tree.Node{tree.MapOf("valor", 10)})}),
			expected: tree.MapOf("habilidades", tree.MapOf("forca", tree.MapOf("valor", 10))),
		},
		{
			name:     "nested shorthand lists collapse in one pass",
			input:    []tree.Node{[]tree.Node{tree.MapOf("a", 1)}, []tree.Node{tree.MapOf("b", 2)}},
			expected: tree.MapOf("a", 1, "b", 2),
		},
		{
			name:     "scalars are unchanged",
			input:    "texto",
			expected: "texto",
		},
		{
			name:     "nil is unchanged",
			input:    nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, normalizer.Normalize(tc.input))
		})
	}
}

func (s *NormalizerTestSuite) TestNormalizeKeepsFieldOrder() {
	input := []tree.Node{tree.MapOf("z", 1), tree.MapOf("a", 2), tree.MapOf("m", 3), tree.MapOf("z", 4)}

	out, ok := normalizer.Normalize(input).(*tree.Map)
	s.Require().True(ok)
	s.Equal([]string{"z", "a", "m"}, out.Keys())
	s.Equal(4, out.GetInt("z"))
}

func (s *NormalizerTestSuite) TestNormalizeIsIdempotent() {
	inputs := []tree.Node{
		nil,
		42,
		[]tree.Node{},
		[]tree.Node{tree.MapOf("a", []tree.Node{tree.MapOf("b", []tree.Node{})})},
		[]tree.Node{tree.MapOf("a", 1), "b", []tree.Node{tree.MapOf("c", 2)}},
		tree.MapOf("x", []tree.Node{tree.MapOf("y", tree.MapOf("z", []tree.Node{tree.MapOf("w", 1)}))}),
		// a collapsed mapping that is itself a singleton inside a list
		[]tree.Node{[]tree.Node{tree.MapOf("k", []tree.Node{tree.MapOf("v", 1)})}},
	}

	for _, input := range inputs {
		once := normalizer.Normalize(input)
		s.Equal(once, normalizer.Normalize(once))
	}
}

func (s *NormalizerTestSuite) TestNormalizeDoesNotModifyInput() {
	inner := []tree.Node{tree.MapOf("valor", 10)}
	input := tree.MapOf("forca", inner)

	normalizer.Normalize(input)

	v, _ := input.Get("forca")
	s.Equal(inner, v)
}

func (s *NormalizerTestSuite) TestParseRoster() {
	root := []tree.Node{
		tree.MapOf("flip", []tree.Node{
			tree.MapOf("nome_personagem", "Flip"),
			tree.MapOf("armas", []tree.Node{"Adaga"}),
			tree.MapOf("armas", []tree.Node{"Espada"}),
		}),
		tree.MapOf("bruna", tree.MapOf("classe", "Clériga")),
		tree.MapOf("vazio", nil),
	}

	characters, err := normalizer.ParseRoster(root)
	s.Require().NoError(err)
	s.Require().Len(characters, 3)

	s.Equal("flip", characters[0].ID)
	s.Equal("Flip", characters[0].Fields.GetText("nome_personagem"))
	armas, _ := characters[0].Fields.Get("armas")
	s.Equal([]tree.Node{"Espada"}, armas)

	s.Equal("bruna", characters[1].ID)
	s.Equal("Clériga", characters[1].Fields.GetText("classe"))

	s.Equal("vazio", characters[2].ID)
	s.Equal(0, characters[2].Fields.Len())
}

func (s *NormalizerTestSuite) TestParseRosterErrors() {
	testCases := []struct {
		name string
		root tree.Node
	}{
		{name: "root is a mapping", root: tree.MapOf("flip", tree.NewMap())},
		{name: "root is nil", root: nil},
		{name: "entry is a scalar", root: []tree.Node{"flip"}},
		{name: "entry has two keys", root: []tree.Node{tree.MapOf("a", 1, "b", 2)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			characters, err := normalizer.ParseRoster(tc.root)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(characters)
		})
	}
}

func (s *NormalizerTestSuite) TestParseRosterEmpty() {
	characters, err := normalizer.ParseRoster([]tree.Node{})
	s.NoError(err)
	s.Empty(characters)
}
