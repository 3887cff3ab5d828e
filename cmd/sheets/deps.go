package main

import (
	"github.com/spf13/afero"

	"github.com/KirkDiggler/rpg-sheets/internal/config"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	sheetorchestrator "github.com/KirkDiggler/rpg-sheets/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheets/internal/redis"
	"github.com/KirkDiggler/rpg-sheets/internal/render"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-sheets/internal/repositories/roster"
)

// services holds everything a command needs, built from the config
type services struct {
	sheets   sheetorchestrator.Service
	renderer *render.Renderer
	close    func()
}

// catalogSource selects where catalogs are read from
type catalogSource int

const (
	// catalogsFromConfig reads redis when an address is set, files otherwise
	catalogsFromConfig catalogSource = iota
	// catalogsForImport reads files and writes redis
	catalogsForImport
)

// buildServices wires the repositories, renderer and orchestrator
func buildServices(c *config.Config, fs afero.Fs, source catalogSource) (*services, error) {
	renderer, err := render.New(&render.Config{
		ImageDir: c.ImageDir,
		Title:    c.Title,
		Clock:    clock.New(),
	})
	if err != nil {
		return nil, err
	}

	rosterRepo, err := roster.NewFile(&roster.FileConfig{Fs: fs})
	if err != nil {
		return nil, err
	}

	orchestratorCfg := &sheetorchestrator.Config{
		RosterRepo: rosterRepo,
		Renderer:   renderer,
		RosterPath: c.Roster,
	}

	closeFn := func() {}
	var store catalog.Store
	if c.UseRedis() {
		client, err := redis.NewClient(c.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		closeFn = func() { _ = client.Close() }

		store, err = catalog.NewRedis(&catalog.RedisConfig{Client: client})
		if err != nil {
			closeFn()
			return nil, err
		}
	}

	switch {
	case source == catalogsForImport:
		if store == nil {
			return nil, errors.FailedPrecondition("catalog import needs --redis or SHEETS_REDIS_ADDR")
		}
		files, err := catalog.NewFile(&catalog.FileConfig{Fs: fs, Dir: c.CatalogDir})
		if err != nil {
			closeFn()
			return nil, err
		}
		orchestratorCfg.CatalogRepo = files
		orchestratorCfg.CatalogWriter = store
	case store != nil:
		orchestratorCfg.CatalogRepo = store
	default:
		files, err := catalog.NewFile(&catalog.FileConfig{Fs: fs, Dir: c.CatalogDir})
		if err != nil {
			return nil, err
		}
		orchestratorCfg.CatalogRepo = files
	}

	sheets, err := sheetorchestrator.NewOrchestrator(orchestratorCfg)
	if err != nil {
		closeFn()
		return nil, errors.Wrap(err, "failed to create sheet orchestrator")
	}

	return &services{
		sheets:   sheets,
		renderer: renderer,
		close:    closeFn,
	}, nil
}
