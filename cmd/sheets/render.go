package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	sheetorchestrator "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/watch"
)

const pageFile = "index.html"

var watchFiles bool

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the roster to a static HTML page",
	Long: `Render loads the roster and every catalog and writes index.html to the output
directory. With --watch it keeps running and re-renders whenever the roster or a
catalog changes.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "re-render when the roster or catalogs change")
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()
	svc, err := buildServices(cfg, fs, catalogsFromConfig)
	if err != nil {
		return err
	}
	defer svc.close()

	renderErr := renderPage(ctx, fs, svc.sheets)
	if !watchFiles {
		return renderErr
	}

	paths := []string{cfg.Roster}
	if !cfg.UseRedis() {
		paths = append(paths, cfg.CatalogDir)
	}

	w, err := watch.New(&watch.Config{
		Paths: paths,
		OnChange: func(ctx context.Context) {
			// failures are logged and written to the error page; keep watching
			_ = renderPage(ctx, fs, svc.sheets)
		},
	})
	if err != nil {
		return err
	}

	slog.Info("Watching for changes", "paths", paths)
	return w.Run(ctx)
}

// renderPage writes the page, or the error page, to the output directory
func renderPage(ctx context.Context, fs afero.Fs, sheets sheetorchestrator.Service) error {
	if err := fs.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "failed to create %s", cfg.OutputDir)
	}

	path := filepath.Join(cfg.OutputDir, pageFile)
	f, err := fs.Create(path)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "failed to create %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	out, err := sheets.RenderPage(ctx, &sheetorchestrator.RenderPageInput{Writer: f})
	if err != nil {
		slog.Error("Failed to render page", "path", path, "error", err)
		return err
	}

	slog.Info("Wrote page",
		"path", path,
		"characters", out.Characters,
		"catalogs_degraded", out.CatalogsDegraded,
	)
	return nil
}
