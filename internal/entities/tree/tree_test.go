package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
)

func TestMapSetKeepsFirstPosition(t *testing.T) {
	m := tree.NewMap()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []tree.Node{3, 2}, m.Values())
	assert.Equal(t, 2, m.Len())
}

func TestMapNilReceiver(t *testing.T) {
	var m *tree.Map

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.False(t, m.Has("x"))
	assert.Nil(t, m.GetMap("x"))
	assert.Equal(t, "", m.GetText("x"))
}

func TestIsSingleton(t *testing.T) {
	assert.True(t, tree.IsSingleton(tree.MapOf("a", 1)))
	assert.False(t, tree.IsSingleton(tree.NewMap()))
	assert.False(t, tree.IsSingleton(tree.MapOf("a", 1, "b", 2)))
	assert.False(t, tree.IsSingleton("a"))
	assert.False(t, tree.IsSingleton([]tree.Node{tree.MapOf("a", 1)}))
}

func TestDecode(t *testing.T) {
	data := []byte(`
- flip:
    - nome_personagem: Flip
    - nivel: 3
    - ativo: true
    - peso: 1.5
    - vazio: ~
`)
	root, err := tree.Decode(data)
	require.NoError(t, err)

	expected := []tree.Node{
		tree.MapOf("flip", []tree.Node{
			tree.MapOf("nome_personagem", "Flip"),
			tree.MapOf("nivel", 3),
			tree.MapOf("ativo", true),
			tree.MapOf("peso", 1.5),
			tree.MapOf("vazio", nil),
		}),
	}
	assert.Equal(t, expected, root)
}

func TestDecodeEmpty(t *testing.T) {
	root, err := tree.Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := tree.Decode([]byte("a: [unclosed"))
	assert.Error(t, err)
}

func TestDecodeAliasAndMerge(t *testing.T) {
	data := []byte(`
base: &base
  dano: 1d6
  tipo_dano: cortante
Espada:
  <<: *base
  dano: 1d8
Adaga: *base
`)
	root, err := tree.Decode(data)
	require.NoError(t, err)

	m, ok := tree.AsMap(root)
	require.True(t, ok)

	espada := m.GetMap("Espada")
	require.NotNil(t, espada)
	assert.Equal(t, []string{"dano", "tipo_dano"}, espada.Keys())
	assert.Equal(t, "1d8", espada.GetText("dano"))
	assert.Equal(t, "cortante", espada.GetText("tipo_dano"))

	assert.Equal(t, "1d6", m.GetMap("Adaga").GetText("dano"))
}

func TestEncodeKeepsOrder(t *testing.T) {
	m := tree.MapOf("zeta", 1, "alfa", []tree.Node{"x", 2.5}, "meio", tree.MapOf("k", true))

	data, err := tree.Encode(m)
	require.NoError(t, err)
	text := string(data)
	assert.Less(t, strings.Index(text, "zeta:"), strings.Index(text, "alfa:"))
	assert.Less(t, strings.Index(text, "alfa:"), strings.Index(text, "meio:"))

	back, err := tree.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestText(t *testing.T) {
	testCases := []struct {
		name     string
		value    tree.Node
		expected string
	}{
		{"nil", nil, ""},
		{"string", "Espada", "Espada"},
		{"int", 9, "9"},
		{"float", 1.5, "1.5"},
		{"whole float", 18.0, "18"},
		{"bool", true, "true"},
		{"list", []tree.Node{"a", 1}, "a, 1"},
		{"map", tree.MapOf("x", "a", "y", "b"), "a, b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tree.Text(tc.value))
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, tree.Truthy(nil))
	assert.False(t, tree.Truthy(""))
	assert.False(t, tree.Truthy(0))
	assert.False(t, tree.Truthy(0.0))
	assert.False(t, tree.Truthy(false))
	assert.True(t, tree.Truthy("x"))
	assert.True(t, tree.Truthy(-1))
	assert.True(t, tree.Truthy([]tree.Node{}))
	assert.True(t, tree.Truthy(tree.NewMap()))
}

func TestInt(t *testing.T) {
	n, ok := tree.Int(3)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = tree.Int("+2")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = tree.Int(2.0)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = tree.Int("abc")
	assert.False(t, ok)
}
