// Package watch re-runs a callback when roster or catalog files change
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

// DefaultDebounce batches the burst of events an editor emits on save
const DefaultDebounce = 200 * time.Millisecond

// Config holds the watcher settings
type Config struct {
	// Paths are files or directories. Files are watched through their
	// directory so editors that replace the file on save are still seen.
	Paths    []string
	Debounce time.Duration
	OnChange func(ctx context.Context)
}

// Validate ensures all required settings are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.Paths) == 0 {
		vb.RequiredField("Paths")
	}
	if c.OnChange == nil {
		vb.RequiredField("OnChange")
	}
	if c.Debounce < 0 {
		vb.Field("Debounce", "must not be negative")
	}
	return vb.Build()
}

// Watcher calls OnChange once per burst of YAML changes. Calls never overlap:
// a burst that settles while OnChange runs waits for it to return.
type Watcher struct {
	running  sync.Mutex
	watcher  *fsnotify.Watcher
	files    map[string]bool
	dirs     map[string]bool
	debounce time.Duration
	onChange func(ctx context.Context)
}

// New starts watching the configured paths
func New(cfg *Config) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid watcher config")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create file watcher")
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: cfg.Debounce,
		onChange: cfg.OnChange,
	}
	if w.debounce == 0 {
		w.debounce = DefaultDebounce
	}

	for _, path := range cfg.Paths {
		clean := filepath.Clean(path)
		dir := clean
		if isYAMLFile(clean) {
			w.files[clean] = true
			dir = filepath.Dir(clean)
		} else {
			w.dirs[clean] = true
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to watch %s", dir)
		}
	}

	return w, nil
}

// relevant reports whether an event touches a watched YAML file
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	if !isYAMLFile(name) {
		return false
	}
	return w.files[name] || w.dirs[filepath.Dir(name)]
}

// Run blocks until ctx is done, calling OnChange after each debounced burst
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		_ = w.watcher.Close()
	}()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	trigger := func() {
		w.running.Lock()
		defer w.running.Unlock()
		if ctx.Err() != nil {
			return
		}
		w.onChange(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Detected file change, debouncing", "file", event.Name)

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, trigger)
			mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
