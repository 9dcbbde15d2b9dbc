package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/KilimcininKorOglu/oba/internal/logging"
)

// Manager holds the active Config and swaps it atomically on Reload or a
// watched file change, notifying registered subscribers.
type Manager struct {
	mu      sync.RWMutex
	cfg     *Config
	path    string
	logger  logging.Logger
	watcher *ConfigWatcher

	subsMu sync.Mutex
	subs   []func(oldCfg, newCfg *Config)
}

// NewManager creates a Manager already holding cfg. path is the file cfg
// was loaded from (used by Reload and Watch); it may be empty for a
// Manager built around a config that isn't backed by a file.
func NewManager(cfg *Config, path string, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{cfg: cfg, path: path, logger: logger}
}

// Current returns the active configuration. Callers must not mutate it;
// take Clone() first if a local copy needs changing.
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// OnChange registers fn to run whenever the active config changes, via
// either Reload or a watched file change. fn runs in its own goroutine.
func (m *Manager) OnChange(fn func(oldCfg, newCfg *Config)) {
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	m.subs = append(m.subs, fn)
}

// Reload re-parses the file Manager was constructed with, validates the
// result, and swaps it in on success. The previous config is left active
// on any failure.
func (m *Manager) Reload() error {
	if m.path == "" {
		return fmt.Errorf("no config file to reload from")
	}

	newCfg, err := Load(m.path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if errs := ValidateConfig(newCfg); len(errs) > 0 {
		return fmt.Errorf("validate config: %w", errs[0])
	}

	m.swap(newCfg)
	return nil
}

func (m *Manager) swap(newCfg *Config) {
	m.mu.Lock()
	oldCfg := m.cfg
	m.cfg = newCfg
	m.mu.Unlock()

	m.subsMu.Lock()
	subs := append([]func(oldCfg, newCfg *Config){}, m.subs...)
	m.subsMu.Unlock()

	for _, fn := range subs {
		go fn(oldCfg, newCfg)
	}
}

// Watch starts an fsnotify-backed watcher on Manager's config file,
// reloading automatically on change. StopWatch must be called to release it.
func (m *Manager) Watch(debounce time.Duration) error {
	if m.path == "" {
		return fmt.Errorf("no config file to watch")
	}

	w, err := NewConfigWatcher(m.path, debounce, m.logger, m.swap)
	if err != nil {
		return err
	}
	m.watcher = w
	w.Start()
	return nil
}

// StopWatch stops a watcher started with Watch, if any.
func (m *Manager) StopWatch() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}
