package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/KilimcininKorOglu/oba/internal/logging"
)

// ConfigWatcher watches a settings file for changes using fsnotify and
// triggers a debounced reload callback. Editors typically replace a file
// via rename-into-place rather than an in-place write, so the watcher
// watches the file's containing directory and filters events by the file's
// base name, rather than watching the file itself.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	logger   logging.Logger
	onChange func(newCfg *Config)

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}

	mu      sync.Mutex
	running bool
}

// NewConfigWatcher creates a watcher for path. debounce of 0 defaults to
// 200ms, matching the settle time a rename-into-place write needs.
func NewConfigWatcher(path string, debounce time.Duration, logger logging.Logger, onChange func(newCfg *Config)) (*ConfigWatcher, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback is required")
	}
	if debounce == 0 {
		debounce = 200 * time.Millisecond
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &ConfigWatcher{
		path:     path,
		debounce: debounce,
		logger:   logger.WithFields("component", "config-watcher", "path", path),
		onChange: onChange,
		watcher:  w,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in the background. It is a no-op if already running.
func (w *ConfigWatcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.loop()
}

// Stop halts watching and releases the underlying fsnotify watch.
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.watcher.Close()
}

func (w *ConfigWatcher) loop() {
	defer close(w.doneCh)

	var timer *time.Timer
	var fireCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fireCh = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-fireCh:
			w.reload()
			timer = nil
			fireCh = nil
		}
	}
}

func (w *ConfigWatcher) reload() {
	newCfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "error", err)
		return
	}
	if errs := ValidateConfig(newCfg); len(errs) > 0 {
		w.logger.Warn("config reload rejected", "error", errs[0])
		return
	}
	w.onChange(newCfg)
}
