package config

import (
	"context"
	"time"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// DefaultPollInterval is how often Run checks the settings file
const DefaultPollInterval = 250 * time.Millisecond

// Watcher polls a settings file and reports each new version once.
// It is not safe for concurrent use.
type Watcher struct {
	Path     string
	Interval time.Duration
	Logger   core.Logger

	lastModified time.Time
	loaded       bool
}

// NewWatcher creates a watcher; interval <= 0 uses DefaultPollInterval
// and a nil logger discards output
func NewWatcher(path string, interval time.Duration, logger core.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Watcher{Path: path, Interval: interval, Logger: logger}
}

// Poll loads the settings file and returns it when this is the first
// successful load or the modification time advanced since the last one.
// A failed load leaves the watcher state unchanged, so the file is retried
// on the next poll.
func (w *Watcher) Poll() (*RenderSettings, bool, error) {
	settings, modified, err := Load(w.Path)
	if err != nil {
		return nil, false, err
	}

	if w.loaded && !modified.After(w.lastModified) {
		return nil, false, nil
	}

	w.lastModified = modified
	w.loaded = true
	return settings, true, nil
}

// Run polls immediately and then on every tick, calling fn for each new
// version of the settings until ctx is cancelled. Load and callback errors
// are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, fn func(*RenderSettings) error) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		w.check(fn)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Watcher) check(fn func(*RenderSettings) error) {
	settings, changed, err := w.Poll()
	if err != nil {
		w.Logger.Printf("Config error: %v\n", err)
		return
	}
	if !changed {
		return
	}
	if err := fn(settings); err != nil {
		w.Logger.Printf("Render failed: %v\n", err)
	}
}
