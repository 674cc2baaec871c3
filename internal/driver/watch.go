package driver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchOptions configures FileWatcher's debouncing and ignore rules.
type WatchOptions struct {
	DebounceMs     int
	IgnorePatterns []string
}

// DefaultWatchOptions returns the recommended watch options.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}

// FileWatcher watches a project root and re-runs a per-file callback on
// write/create, debouncing rapid-fire editor saves so a single logical
// edit triggers one retranslation, not several.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	onEvent func(path string, removed bool)
	logger  *slog.Logger
	options WatchOptions

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	mu       sync.Mutex
	stopped  bool
}

// NewFileWatcher creates a FileWatcher that calls onEvent(path, removed)
// after debouncing. onEvent is called from the watcher's own goroutine.
func NewFileWatcher(onEvent func(path string, removed bool), options WatchOptions, logger *slog.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("driver: create file watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileWatcher{
		watcher:        w,
		onEvent:        onEvent,
		logger:         logger,
		options:        options,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start adds rootPath (and every non-ignored subdirectory) to the
// watch set and begins the background event loop.
func (fw *FileWatcher) Start(rootPath string) error {
	if err := fw.watcher.Add(rootPath); err != nil {
		return fmt.Errorf("driver: watch %s: %w", rootPath, err)
	}

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if fw.shouldIgnore(path) {
			return filepath.SkipDir
		}
		if err := fw.watcher.Add(path); err != nil {
			fw.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("driver: set up watches: %w", err)
	}

	fw.logger.Info("file watcher started", "root", rootPath)
	go fw.eventLoop()
	return nil
}

// Stop shuts the watcher down. Safe to call multiple times.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.stopped {
		return nil
	}
	fw.stopped = true
	close(fw.stopChan)

	fw.debounceMu.Lock()
	for _, timer := range fw.debounceTimers {
		timer.Stop()
	}
	fw.debounceTimers = make(map[string]*time.Timer)
	fw.debounceMu.Unlock()

	return fw.watcher.Close()
}

func (fw *FileWatcher) eventLoop() {
	for {
		select {
		case <-fw.stopChan:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("file watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if fw.shouldIgnore(event.Name) {
		return
	}
	if DetectLanguageByExt(event.Name) == "" {
		return
	}

	switch {
	case event.Op&fsnotify.Write == fsnotify.Write, event.Op&fsnotify.Create == fsnotify.Create:
		fw.debounce(event.Name, false)
	case event.Op&fsnotify.Remove == fsnotify.Remove, event.Op&fsnotify.Rename == fsnotify.Rename:
		fw.debounce(event.Name, true)
	}
}

func (fw *FileWatcher) debounce(path string, removed bool) {
	fw.debounceMu.Lock()
	defer fw.debounceMu.Unlock()

	if timer, ok := fw.debounceTimers[path]; ok {
		timer.Stop()
	}
	fw.debounceTimers[path] = time.AfterFunc(time.Duration(fw.options.DebounceMs)*time.Millisecond, func() {
		fw.onEvent(path, removed)
		fw.debounceMu.Lock()
		delete(fw.debounceTimers, path)
		fw.debounceMu.Unlock()
	})
}

func (fw *FileWatcher) shouldIgnore(path string) bool {
	for _, pattern := range fw.options.IgnorePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
	}
	switch filepath.Base(path) {
	case "node_modules", ".git", "dist", "build":
		return true
	}
	return false
}

// DetectLanguageByExt returns "ts" for a .ts/.tsx file, "" otherwise —
// the watcher's own cheap filter ahead of internal/stparser.DetectLanguage.
func DetectLanguageByExt(path string) string {
	switch filepath.Ext(path) {
	case ".ts", ".tsx":
		return "ts"
	default:
		return ""
	}
}
