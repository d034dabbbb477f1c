package config

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/artpar/envschema/core/schema"
	"github.com/artpar/envschema/core/validation"
)

// Holder provides thread-safe access to a validated configuration with
// hot reload support. A reload that fails validation keeps the previous
// snapshot.
type Holder struct {
	mu       sync.RWMutex
	values   map[string]any
	schema   schema.Schema
	opts     []validation.Option
	path     string
	logger   zerolog.Logger
	watcher  *fsnotify.Watcher
	onChange []func(map[string]any)
	stopCh   chan struct{}
}

// NewHolder loads the env file at path, validates it against s, and
// returns a holder around the result.
func NewHolder(path string, s schema.Schema, logger zerolog.Logger, opts ...validation.Option) (*Holder, error) {
	values, err := load(path, s, opts)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	return &Holder{
		values: values,
		schema: s,
		opts:   opts,
		path:   absPath,
		logger: logger,
		stopCh: make(chan struct{}),
	}, nil
}

func load(path string, s schema.Schema, opts []validation.Option) (map[string]any, error) {
	src, err := LoadEnvFile(path)
	if err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	values, err := validation.Validate(s, src, opts...)
	if err != nil {
		return nil, fmt.Errorf("validate env file: %w", err)
	}

	return values, nil
}

// Get returns the current validated configuration (thread-safe). The
// returned map must not be mutated.
func (h *Holder) Get() map[string]any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.values
}

// Reload re-reads and re-validates the env file. On failure the old
// snapshot stays in place and the error is returned.
func (h *Holder) Reload() error {
	h.logger.Info().Str("path", h.path).Msg("reloading configuration")

	values, err := load(h.path, h.schema, h.opts)
	if err != nil {
		h.logger.Error().Err(err).Msg("reload failed, keeping old configuration")
		return fmt.Errorf("reload: %w", err)
	}

	h.mu.Lock()
	h.values = values
	listeners := h.onChange
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(values)
	}

	h.logger.Info().Msg("configuration reloaded")
	return nil
}

// OnChange registers a callback invoked after every successful reload.
func (h *Holder) OnChange(fn func(map[string]any)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = append(h.onChange, fn)
}

// WatchFile starts watching the env file for changes. Changes trigger
// automatic reload.
func (h *Holder) WatchFile() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = watcher

	// Watch the directory (more reliable for editors that do atomic saves)
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go h.watchLoop()

	h.logger.Info().Str("path", h.path).Msg("watching env file for changes")
	return nil
}

// WatchSignals starts listening for SIGHUP to trigger reload.
func (h *Holder) WatchSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)

	go func() {
		for {
			select {
			case <-sigCh:
				h.logger.Info().Msg("received SIGHUP, reloading configuration")
				if err := h.Reload(); err != nil {
					h.logger.Error().Err(err).Msg("SIGHUP reload failed")
				}
			case <-h.stopCh:
				signal.Stop(sigCh)
				return
			}
		}
	}()
}

// Stop stops watching for file changes and signals.
func (h *Holder) Stop() {
	close(h.stopCh)
	if h.watcher != nil {
		h.watcher.Close()
	}
}

func (h *Holder) watchLoop() {
	filename := filepath.Base(h.path)

	for {
		select {
		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			// Only react to our env file
			if filepath.Base(event.Name) != filename {
				continue
			}

			// React to write or create (atomic save = create)
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				h.logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("env file changed")

				if err := h.Reload(); err != nil {
					h.logger.Error().Err(err).Msg("file watch reload failed")
				}
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Msg("file watcher error")

		case <-h.stopCh:
			return
		}
	}
}
