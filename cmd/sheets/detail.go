package main

import (
	"fmt"
	"html/template"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	sheetorchestrator "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/sheet"
)

var detailFormat string

var detailCmd = &cobra.Command{
	Use:   "detail [character-id] [action]",
	Short: "Print one detail view",
	Long: `Detail prints the detail view a card button opens. Actions are armas, magias,
truques, equipamentos and tracos. Examples:

  detail flip armas
  detail flip magias --format markdown`,
	Args: cobra.ExactArgs(2),
	RunE: runDetail,
}

func init() {
	detailCmd.Flags().StringVarP(&detailFormat, "format", "f", sheetorchestrator.FormatHTML, "html or markdown")
}

func runDetail(cmd *cobra.Command, args []string) error {
	svc, err := buildServices(cfg, afero.NewOsFs(), catalogsFromConfig)
	if err != nil {
		return err
	}
	defer svc.close()

	ctx := cmd.Context()
	loaded, err := svc.sheets.LoadRoster(ctx, &sheetorchestrator.LoadRosterInput{})
	if err != nil {
		return err
	}

	out, err := svc.sheets.OpenDetail(ctx, &sheetorchestrator.OpenDetailInput{
		Characters:  loaded.Characters,
		CharacterID: args[0],
		Action:      args[1],
		Format:      detailFormat,
	})
	if err != nil {
		return err
	}

	writeDetail(cmd.OutOrStdout(), detailFormat, out)
	return nil
}

// writeDetail prints a detail view. The HTML title is authored text and is
// escaped; the content is already safe HTML.
func writeDetail(w io.Writer, format string, out *sheetorchestrator.OpenDetailOutput) {
	if format == sheetorchestrator.FormatMarkdown {
		fmt.Fprint(w, out.Markdown)
		return
	}
	fmt.Fprintf(w, "<h2>%s</h2>\n%s\n", template.HTMLEscapeString(out.Title), out.Content)
}
