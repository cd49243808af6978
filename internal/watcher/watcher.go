// Package watcher reports settled changes to a fixed set of files.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is reported
const DefaultDebounce = 150 * time.Millisecond

// Event reports that a watched file changed and has settled
type Event struct {
	Path      string
	Timestamp time.Time
}

// Watcher watches files through their parent directories, so editors that
// replace a file by renaming over it are still seen.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]struct{}
	dirs      map[string]struct{}
	filesMu   sync.RWMutex
	debounce  time.Duration
	logger    *log.Logger

	// path -> time of the last raw event
	pending   map[string]time.Time
	pendingMu sync.Mutex

	events chan Event
	errors chan error

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a watcher for paths. Empty paths are ignored.
func New(paths []string, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		files:     make(map[string]struct{}),
		dirs:      make(map[string]struct{}),
		debounce:  debounce,
		logger:    logger.WithPrefix("watcher"),
		pending:   make(map[string]time.Time),
		events:    make(chan Event, 16),
		errors:    make(chan error, 4),
		done:      make(chan struct{}),
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			fsWatcher.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
	}
	return w, nil
}

// Events returns the channel of settled changes
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Start begins watching
func (w *Watcher) Start() error {
	w.filesMu.Lock()
	for path := range w.files {
		if err := w.watchDir(filepath.Dir(path)); err != nil {
			w.filesMu.Unlock()
			return err
		}
	}
	w.filesMu.Unlock()

	w.wg.Add(2)
	go w.eventLoop()
	go w.debounceLoop()
	return nil
}

// Stop shuts the watcher down. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.wg.Wait()
		close(w.events)
		close(w.errors)
	})
	return err
}

// Add starts watching another file and returns its absolute path. The file
// itself may not exist yet, but its directory must.
func (w *Watcher) Add(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	w.filesMu.Lock()
	defer w.filesMu.Unlock()
	if err := w.watchDir(filepath.Dir(abs)); err != nil {
		return "", err
	}
	w.files[abs] = struct{}{}
	return abs, nil
}

// watchDir must be called with filesMu held
func (w *Watcher) watchDir(dir string) error {
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	w.dirs[dir] = struct{}{}
	w.logger.Debug("watching directory", "dir", dir)
	return nil
}

// WatchedFiles returns the absolute paths being watched
func (w *Watcher) WatchedFiles() []string {
	w.filesMu.RLock()
	defer w.filesMu.RUnlock()
	out := make([]string, 0, len(w.files))
	for path := range w.files {
		out = append(out, path)
	}
	return out
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			path := filepath.Clean(event.Name)
			w.filesMu.RLock()
			_, watched := w.files[path]
			w.filesMu.RUnlock()
			if !watched {
				continue
			}

			w.pendingMu.Lock()
			w.pending[path] = time.Now()
			w.pendingMu.Unlock()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// debounceLoop emits one event per file once its raw events stop
func (w *Watcher) debounceLoop() {
	defer w.wg.Done()

	tick := w.debounce / 3
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case now := <-ticker.C:
			w.flushSettled(now)
		}
	}
}

func (w *Watcher) flushSettled(now time.Time) {
	threshold := now.Add(-w.debounce)

	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	for path, last := range w.pending {
		if last.After(threshold) {
			continue
		}
		select {
		case w.events <- Event{Path: path, Timestamp: now}:
			delete(w.pending, path)
		case <-w.done:
			return
		default:
			// Event channel full, try again on the next tick
		}
	}
}
