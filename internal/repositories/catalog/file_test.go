package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-sheets/internal/testutils"
)

type FileCatalogTestSuite struct {
	suite.Suite
	fs   afero.Fs
	repo catalog.Repository
	ctx  context.Context
}

func TestFileCatalogSuite(t *testing.T) {
	suite.Run(t, new(FileCatalogTestSuite))
}

func (s *FileCatalogTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.ctx = context.Background()
	s.Require().NoError(testutils.WriteFixtures(s.fs))

	repo, err := catalog.NewFile(&catalog.FileConfig{Fs: s.fs, Dir: testutils.CatalogDir})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *FileCatalogTestSuite) TestNewFile() {
	_, err := catalog.NewFile(nil)
	s.ErrorContains(err, "config cannot be nil")

	_, err = catalog.NewFile(&catalog.FileConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Dir: is required")
	s.Contains(err.Error(), "Fs: is required")
}

func (s *FileCatalogTestSuite) TestGetShorthandCatalog() {
	output, err := s.repo.Get(s.ctx, catalog.GetInput{Category: sheet.CategoryWeapons})
	s.Require().NoError(err)

	s.Equal([]string{"Adaga", "Espada Curta"}, output.Catalog.Names())

	adaga, ok := output.Catalog.Lookup("Adaga")
	s.Require().True(ok)
	entry, isMap := tree.AsMap(adaga)
	s.Require().True(isMap)
	s.Equal("1d4", entry.GetText("dano"))
	s.Equal([]string{"nome", "dano", "tipo_dano", "propriedades", "proficiencia"}, entry.Keys())
}

func (s *FileCatalogTestSuite) TestGetUnwrapsTopKey() {
	output, err := s.repo.Get(s.ctx, catalog.GetInput{Category: sheet.CategoryCantrips})
	s.Require().NoError(err)

	s.Equal([]string{"Mãos Mágicas"}, output.Catalog.Names())
}

func (s *FileCatalogTestSuite) TestGetKeepsTopKeyWhenNotNested() {
	path := filepath.Join(testutils.CatalogDir, sheet.CategoryCantrips.FileName())
	s.Require().NoError(afero.WriteFile(s.fs, path, []byte("truques: texto\nLuz:\n  nome: Luz\n"), 0o644))

	output, err := s.repo.Get(s.ctx, catalog.GetInput{Category: sheet.CategoryCantrips})
	s.Require().NoError(err)
	s.Equal([]string{"truques", "Luz"}, output.Catalog.Names())
}

func (s *FileCatalogTestSuite) TestGetEmptyFile() {
	path := filepath.Join(testutils.CatalogDir, sheet.CategoryTraits.FileName())
	s.Require().NoError(afero.WriteFile(s.fs, path, []byte(""), 0o644))

	output, err := s.repo.Get(s.ctx, catalog.GetInput{Category: sheet.CategoryTraits})
	s.Require().NoError(err)
	s.Equal(0, output.Catalog.Len())
}

func (s *FileCatalogTestSuite) TestGetErrors() {
	s.Require().NoError(afero.WriteFile(s.fs,
		filepath.Join(testutils.CatalogDir, sheet.CategorySpells.FileName()), []byte("Luz: [unclosed"), 0o644))
	s.Require().NoError(afero.WriteFile(s.fs,
		filepath.Join(testutils.CatalogDir, sheet.CategoryTraits.FileName()), []byte("- Sortudo\n- Bravo\n"), 0o644))
	s.Require().NoError(s.fs.Remove(filepath.Join(testutils.CatalogDir, sheet.CategoryEquipment.FileName())))

	testCases := []struct {
		name     string
		category sheet.Category
		checkErr func(error) bool
	}{
		{name: "unknown category", category: "pericias", checkErr: errors.IsInvalidArgument},
		{name: "malformed yaml", category: sheet.CategorySpells, checkErr: errors.IsInvalidArgument},
		{name: "sequence of names", category: sheet.CategoryTraits, checkErr: errors.IsInvalidArgument},
		{name: "missing file", category: sheet.CategoryEquipment, checkErr: errors.IsNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.repo.Get(s.ctx, catalog.GetInput{Category: tc.category})
			s.Error(err)
			s.True(tc.checkErr(err), "unexpected error: %v", err)
			s.Nil(output)
		})
	}
}
