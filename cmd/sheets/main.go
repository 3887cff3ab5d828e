// Package main is the entry point for the sheets CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheets/internal/config"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

var (
	cfg *config.Config

	rosterPath string
	catalogDir string
	outputDir  string
	imageDir   string
	pageTitle  string
	redisAddr  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Render RPG character sheets from YAML",
	Long: `sheets reads a roster of characters and the item catalogs they reference,
and renders them as a static HTML page, in the terminal or as Markdown.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rosterPath, "roster", "", "roster file (env SHEETS_ROSTER)")
	flags.StringVar(&catalogDir, "catalog-dir", "", "catalog directory (env SHEETS_CATALOG_DIR)")
	flags.StringVar(&outputDir, "output", "", "output directory for render (env SHEETS_OUTPUT_DIR)")
	flags.StringVar(&imageDir, "image-dir", "", "image path prefix used on the page (env SHEETS_IMAGE_DIR)")
	flags.StringVar(&pageTitle, "title", "", "page title (env SHEETS_TITLE)")
	flags.StringVar(&redisAddr, "redis", "", "read catalogs from redis at this address (env SHEETS_REDIS_ADDR)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env SHEETS_LOG_LEVEL)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(rollCmd)
}

// setup loads the environment, applies the flags that were set and installs
// the logger
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, target *string, value string) {
		if flags.Changed(name) {
			*target = value
		}
	}
	override("roster", &loaded.Roster, rosterPath)
	override("catalog-dir", &loaded.CatalogDir, catalogDir)
	override("output", &loaded.OutputDir, outputDir)
	override("image-dir", &loaded.ImageDir, imageDir)
	override("title", &loaded.Title, pageTitle)
	override("redis", &loaded.RedisAddr, redisAddr)
	override("log-level", &loaded.LogLevel, logLevel)

	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLogLevel(loaded.LogLevel)
	if err != nil {
		return err
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           charmlog.Level(level),
	})
	slog.SetDefault(slog.New(logger))

	cfg = loaded
	return nil
}
