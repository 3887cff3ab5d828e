package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	sheetorchestrator "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/sheet"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage item catalogs",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [category...]",
	Short: "Copy catalog files into redis",
	Long: `Import reads each catalog file from the catalog directory and replaces the
matching catalog in redis. Without arguments every category is imported.`,
	RunE: runCatalogImport,
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	categories := make([]sheet.Category, 0, len(args))
	for _, arg := range args {
		category, ok := sheet.ParseCategory(arg)
		if !ok {
			return errors.InvalidArgumentf("unknown category %q", arg)
		}
		categories = append(categories, category)
	}

	svc, err := buildServices(cfg, afero.NewOsFs(), catalogsForImport)
	if err != nil {
		return err
	}
	defer svc.close()

	out, err := svc.sheets.ImportCatalogs(cmd.Context(), &sheetorchestrator.ImportCatalogsInput{
		Categories: categories,
	})
	if err != nil {
		return err
	}

	for _, category := range sheet.Categories() {
		if n, ok := out.Entries[category]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", category, n)
		}
	}
	return nil
}
