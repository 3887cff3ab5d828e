package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheets/internal/orchestrators/dice"
	sheetorchestrator "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/sheet"
)

var rollCmd = &cobra.Command{
	Use:   "roll [notation | character-id weapon]",
	Short: "Roll damage dice",
	Long: `Roll a damage expression, or the damage of a character's weapon. Examples:

  roll 1d8
  roll 2d6+3
  roll flip Adaga`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRoll,
}

func runRoll(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	roller, err := dice.NewOrchestrator(&dice.Config{})
	if err != nil {
		return err
	}

	if len(args) == 1 {
		out, err := roller.RollDamage(ctx, &dice.RollDamageInput{Notation: args[0]})
		if err != nil {
			return err
		}
		printRoll(cmd, out.Roll)
		return nil
	}

	svc, err := buildServices(cfg, afero.NewOsFs(), catalogsFromConfig)
	if err != nil {
		return err
	}
	defer svc.close()

	loaded, err := svc.sheets.LoadRoster(ctx, &sheetorchestrator.LoadRosterInput{})
	if err != nil {
		return err
	}

	out, err := roller.RollWeaponDamage(ctx, &dice.RollWeaponDamageInput{
		Characters:  loaded.Characters,
		CharacterID: args[0],
		Weapon:      args[1],
	})
	if err != nil {
		return err
	}

	if out.DamageType != "" {
		fmt.Fprintf(w, "%s (%s)\n", out.Weapon, out.DamageType)
	} else {
		fmt.Fprintln(w, out.Weapon)
	}
	printRoll(cmd, out.Roll)
	return nil
}

func printRoll(cmd *cobra.Command, roll *dice.Roll) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Notation: %s\n", roll.Notation)
	fmt.Fprintf(w, "Dice:     %v\n", roll.Dice)
	if roll.Modifier != 0 {
		fmt.Fprintf(w, "Modifier: %+d\n", roll.Modifier)
	}
	fmt.Fprintf(w, "Total:    %d\n", roll.Total)
}
