package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to prefab specs and scripts. Bursts of writes to the
// same file within debounce are collapsed into one change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	changes  chan string
	errors   chan error
	closeCh  chan struct{}
	once     sync.Once
	debounce time.Duration
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		changes:  make(chan string, 16),
		errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}
	go watcher.run()
	return watcher, nil
}

// Poll returns the next pending change without blocking, so the game loop
// can check it once per frame.
func (w *Watcher) Poll() (string, bool) {
	select {
	case name, ok := <-w.changes:
		return name, ok
	default:
		return "", false
	}
}

// Err returns the most recent watcher error, if any.
func (w *Watcher) Err() error {
	select {
	case err := <-w.errors:
		return err
	default:
		return nil
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsPrefabFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < w.debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.changes <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsPrefabFile reports whether path is a spec or script the game reloads.
func IsPrefabFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
