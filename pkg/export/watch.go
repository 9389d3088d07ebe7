package export

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cbodonnell/redracer/pkg/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a fixed set of files. Parent directories are
// watched so files replaced by rename are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration

	Events chan string
	Errors chan error

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

func NewWatcher(debounce time.Duration, files ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		watched[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
		dirs[dir] = struct{}{}
	}

	watcher := &Watcher{
		watcher:  w,
		files:    watched,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.doneCh)
	}()

	// A file is reported once it has been quiet for the debounce window,
	// so a build that writes in several steps is only picked up when done.
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := w.files[name]; !ok {
				continue
			}
			pending[name] = struct{}{}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			for name := range pending {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
				delete(pending, name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				log.Warn("Dropped watcher error: %v", err)
			}
		case <-w.closeCh:
			return
		}
	}
}

// RebuildOnChange rebuilds b whenever a watched file changes until ctx is
// done or the watcher is closed. Failed rebuilds are logged and the
// previous document keeps being served.
func RebuildOnChange(ctx context.Context, w *Watcher, b *Builder) {
	for {
		select {
		case <-ctx.Done():
			return
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			log.Debug("Export input changed: %s", name)
			if err := b.Rebuild(); err != nil {
				log.Error("Failed to rebuild export: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Error("Watcher error: %v", err)
		}
	}
}
