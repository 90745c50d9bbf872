// Package watch reports changes to note records in a storage directory
package watch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned when starting a watcher that has been stopped
var ErrClosed = errors.New("watcher is closed")

// Watcher calls OnChange once a burst of record changes in a directory has
// settled. Files without the configured extension are ignored.
type Watcher struct {
	dir       string
	extension string
	debounce  time.Duration
	onChange  func()
	logger    *slog.Logger

	fsw     *fsnotify.Watcher
	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func New(dir, extension string, onChange func(), opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		dir:       dir,
		extension: extension,
		debounce:  DefaultDebounce,
		onChange:  onChange,
		logger:    slog.Default(),
		fsw:       fsw,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start begins watching. It does not block; call Stop to release the watcher.
// A stopped watcher cannot be restarted.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	if w.fsw == nil {
		return ErrClosed
	}

	if err := w.fsw.Add(w.dir); err != nil {
		return err
	}

	w.running = true
	go w.run(ctx)

	w.logger.Info("Watching notes directory", "dir", w.dir)

	return nil
}

// Stop ends the event loop, waits for it to exit and closes the watcher
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		w.running = false
		close(w.stopCh)
		<-w.doneCh
	}

	if w.fsw != nil {
		if err := w.fsw.Close(); err != nil {
			w.logger.Error("Failed to close notes watcher", "error", err)
		}
		w.fsw = nil
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("Note record changed", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("fsnotify error", "error", err)

		case <-fire:
			fire = nil
			w.onChange()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(filepath.Base(event.Name), w.extension) {
		return false
	}

	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
