// Package sheet implements the orchestrator that loads a roster with its
// catalogs and renders the resulting sheets
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheets/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/render"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-sheets/internal/services/resolver"
)

// Service defines the interface for sheet operations
type Service interface {
	// LoadRoster loads the roster and every catalog concurrently and resolves
	// each character's items
	LoadRoster(ctx context.Context, input *LoadRosterInput) (*LoadRosterOutput, error)

	// OpenDetail renders the detail view of one action for one character
	OpenDetail(ctx context.Context, input *OpenDetailInput) (*OpenDetailOutput, error)

	// RenderPage loads everything and writes the full page, or the error
	// page when the roster cannot be loaded
	RenderPage(ctx context.Context, input *RenderPageInput) (*RenderPageOutput, error)

	// ImportCatalogs copies every catalog from the reader to the writer
	ImportCatalogs(ctx context.Context, input *ImportCatalogsInput) (*ImportCatalogsOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	RosterRepo  roster.Repository
	CatalogRepo catalog.Repository
	Renderer    *render.Renderer
	RosterPath  string

	// CatalogWriter is only needed by ImportCatalogs
	CatalogWriter catalog.Writer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.RosterPath == "" {
		vb.RequiredField("RosterPath")
	}

	return vb.Build()
}

type orchestrator struct {
	rosterRepo    roster.Repository
	catalogRepo   catalog.Repository
	catalogWriter catalog.Writer
	renderer      *render.Renderer
	rosterPath    string
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rosterRepo:    cfg.RosterRepo,
		catalogRepo:   cfg.CatalogRepo,
		catalogWriter: cfg.CatalogWriter,
		renderer:      cfg.Renderer,
		rosterPath:    cfg.RosterPath,
	}, nil
}

// LoadRoster loads the roster and the catalogs concurrently. Catalogs are all
// or nothing: one failure empties all of them and only logs a warning. A
// roster failure is returned.
func (o *orchestrator) LoadRoster(ctx context.Context, _ *LoadRosterInput) (*LoadRosterOutput, error) {
	var (
		characters []*sheet.Character
		mu         sync.Mutex
		catalogs   = sheet.EmptyCatalogs()
		failures   = make(map[sheet.Category]error)
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out, err := o.rosterRepo.Get(gctx, roster.GetInput{Path: o.rosterPath})
		if err != nil {
			return errors.Wrapf(err, "failed to load roster %s", o.rosterPath)
		}
		characters = out.Characters
		return nil
	})

	for _, category := range sheet.Categories() {
		g.Go(func() error {
			out, err := o.catalogRepo.Get(gctx, catalog.GetInput{Category: category})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[category] = err
				return nil
			}
			catalogs[category] = out.Catalog
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	degraded := len(failures) > 0
	if degraded {
		for category, err := range failures {
			slog.WarnContext(ctx, "Catalog failed to load, rendering every item as a stub",
				"category", category,
				"error", err,
			)
		}
		catalogs = sheet.EmptyCatalogs()
	}

	resolver.ResolveAll(characters, catalogs)

	slog.DebugContext(ctx, "Roster loaded",
		"characters", len(characters),
		"catalogs_degraded", degraded,
	)

	return &LoadRosterOutput{
		Characters:       characters,
		Catalogs:         catalogs,
		CatalogsDegraded: degraded,
	}, nil
}

// OpenDetail renders one detail view for a character
func (o *orchestrator) OpenDetail(ctx context.Context, input *OpenDetailInput) (*OpenDetailOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	category, ok := sheet.ParseCategory(input.Action)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown action %q", input.Action).
			WithMeta("character_id", input.CharacterID)
	}

	character, ok := sheet.FindCharacter(input.Characters, input.CharacterID)
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.CharacterID)
	}

	output := &OpenDetailOutput{Title: render.DetailTitle(character, category)}

	switch input.Format {
	case "", FormatHTML:
		content, err := o.renderer.Detail(character, category)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render %s for %s", category, character.ID)
		}
		output.Content = content
	case FormatMarkdown:
		md, err := o.renderer.DetailMarkdown(character, category)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render %s for %s", category, character.ID)
		}
		output.Markdown = md
	default:
		return nil, errors.InvalidArgumentf("unknown format %q", input.Format)
	}

	slog.DebugContext(ctx, "Detail opened",
		"character_id", character.ID,
		"action", category,
		"format", input.Format,
	)

	return output, nil
}

// RenderPage writes the page for the current roster. When the roster fails
// the error page is written and the load error returned.
func (o *orchestrator) RenderPage(ctx context.Context, input *RenderPageInput) (*RenderPageOutput, error) {
	if input == nil || input.Writer == nil {
		return nil, errors.InvalidArgument("writer is required")
	}

	loaded, err := o.LoadRoster(ctx, &LoadRosterInput{})
	if err != nil {
		if renderErr := o.renderer.ErrorPage(input.Writer, err); renderErr != nil {
			slog.ErrorContext(ctx, "Failed to render error page", "error", renderErr)
		}
		return nil, err
	}

	if err := o.renderer.Page(input.Writer, loaded.Characters); err != nil {
		return nil, errors.Wrap(err, "failed to render page")
	}

	slog.InfoContext(ctx, "Page rendered",
		"characters", len(loaded.Characters),
		"catalogs_degraded", loaded.CatalogsDegraded,
	)

	return &RenderPageOutput{
		Characters:       len(loaded.Characters),
		CatalogsDegraded: loaded.CatalogsDegraded,
	}, nil
}

// ImportCatalogs reads each catalog and replaces it in the writer. The first
// failure stops the import.
func (o *orchestrator) ImportCatalogs(ctx context.Context, input *ImportCatalogsInput) (*ImportCatalogsOutput, error) {
	if o.catalogWriter == nil {
		return nil, errors.FailedPrecondition("no catalog writer configured")
	}

	categories := sheet.Categories()
	if input != nil && len(input.Categories) > 0 {
		categories = input.Categories
	}

	entries := make(map[sheet.Category]int, len(categories))
	for _, category := range categories {
		got, err := o.catalogRepo.Get(ctx, catalog.GetInput{Category: category})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s catalog", category)
		}

		put, err := o.catalogWriter.Put(ctx, catalog.PutInput{
			Category: category,
			Catalog:  got.Catalog,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to write %s catalog", category)
		}

		entries[category] = put.Entries
		slog.InfoContext(ctx, "Catalog imported",
			"category", category,
			"entries", put.Entries,
		)
	}

	return &ImportCatalogsOutput{Entries: entries}, nil
}
