package watcher

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"seedoc/src/config"
)

// Watcher monitors the source icon and rebuilds image assets when it changes
type Watcher struct {
	cfg      *config.Config
	builder  ImageBuilder
	watcher  *fsnotify.Watcher
	events   chan Event
	target   string
	debounce time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]fsnotify.Op // ops merged while a timer is waiting
	stopped bool
}

// ImageBuilder rebuilds image assets without touching the HTML
type ImageBuilder interface {
	BuildImages() ([]string, error)
}

// Event represents a handled change of the source icon
type Event struct {
	Type     EventType
	FilePath string
	Files    []string // assets written by the rebuild
	Err      error    // rebuild failure, if any
}

// EventType represents the type of file event
type EventType int

const (
	EventCreated EventType = iota
	EventModified
	EventDeleted
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	case EventDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// NewWatcher creates a new source icon watcher
func NewWatcher(cfg *config.Config, builder ImageBuilder) (*Watcher, error) {
	target, err := filepath.Abs(cfg.Icon.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		cfg:      cfg,
		builder:  builder,
		watcher:  fsWatcher,
		events:   make(chan Event, 100),
		target:   target,
		debounce: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		timers:   make(map[string]*time.Timer),
		pending:  make(map[string]fsnotify.Op),
	}, nil
}

// Start begins monitoring the directory holding the source icon.
// Watching the directory keeps working when editors replace the file on save.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.target)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching %s", w.target)

	go w.processEvents()

	return nil
}

// processEvents filters fsnotify events down to the source icon
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			name, err := filepath.Abs(event.Name)
			if err != nil || name != w.target {
				continue
			}

			// Debounce: editors often emit several writes per save,
			// sometimes followed by a chmod
			w.mu.Lock()
			if w.stopped {
				w.mu.Unlock()
				return
			}
			w.pending[name] |= event.Op
			if timer, exists := w.timers[name]; exists {
				timer.Stop()
			}
			w.timers[name] = time.AfterFunc(w.debounce, func() {
				w.handleEvent(name)
			})
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// handleEvent rebuilds the assets for the ops merged during one debounce window
func (w *Watcher) handleEvent(name string) {
	w.mu.Lock()
	op := w.pending[name]
	delete(w.pending, name)
	delete(w.timers, name)
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}

	eventType, ok := classify(name, op)
	if !ok {
		return // chmod only
	}
	log.Printf("📄 Source %s: %s", eventType, name)

	result := Event{Type: eventType, FilePath: name}
	if eventType != EventDeleted {
		result.Files, result.Err = w.builder.BuildImages()
		if result.Err != nil {
			log.Printf("Rebuild failed: %v", result.Err)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.events <- result:
	default:
		log.Printf("Event channel full, dropping %s event", eventType)
	}
}

// classify maps a merged op to an event type. A removed or renamed source
// only counts as deleted when it is still gone.
func classify(name string, op fsnotify.Op) (EventType, bool) {
	if op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return EventDeleted, true
		}
	}
	switch {
	case op&fsnotify.Create == fsnotify.Create:
		return EventCreated, true
	case op&fsnotify.Write == fsnotify.Write:
		return EventModified, true
	case op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return EventModified, true // replaced in place
	default:
		return 0, false
	}
}

// Events returns the event channel
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher and closes the event channel
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	for _, timer := range w.timers {
		timer.Stop()
	}
	close(w.events)
	w.mu.Unlock()

	return w.watcher.Close()
}
