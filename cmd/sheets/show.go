package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	sheetorchestrator "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [character-id...]",
	Short: "Print character cards in the terminal",
	Long: `Show prints the card of each named character, or of every character when
none is given.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, err := buildServices(cfg, afero.NewOsFs(), catalogsFromConfig)
	if err != nil {
		return err
	}
	defer svc.close()

	loaded, err := svc.sheets.LoadRoster(cmd.Context(), &sheetorchestrator.LoadRosterInput{})
	if err != nil {
		return err
	}

	characters := loaded.Characters
	if len(args) > 0 {
		characters = make([]*sheet.Character, 0, len(args))
		for _, id := range args {
			c, ok := sheet.FindCharacter(loaded.Characters, id)
			if !ok {
				return errors.NotFoundf("character %s not found", id)
			}
			characters = append(characters, c)
		}
	}

	for _, c := range characters {
		fmt.Fprintln(cmd.OutOrStdout(), render.Terminal(c))
	}
	return nil
}
