package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written and publishes every
// version that parses and validates. Invalid edits are logged and skipped.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	updates chan FlappyConfig
	logger  *log.Logger
}

// Watch starts watching path. The parent directory is watched rather than
// the file so that editors which replace the file on save are still seen.
func Watch(path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config watch: cannot resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config watch: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		fw:      fw,
		updates: make(chan FlappyConfig, 1),
		logger:  logger,
	}
	go w.loop()
	return w, nil
}

// Updates delivers reloaded configurations. It is closed after Close.
func (w *Watcher) Updates() <-chan FlappyConfig {
	return w.updates
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	defer close(w.updates)

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	if err := Validate(cfg); err != nil {
		w.logger.Warn("config reload rejected", "path", w.path, "error", err)
		return
	}

	// Keep only the newest version if the consumer is behind.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Info("config reloaded", "path", w.path)
}
