package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Quiet period a path must stay unchanged before its change is reported.
const settleDelay = 100 * time.Millisecond

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher reports changed animation definitions and sprite sheets on disk.
// Bursts of writes to one file collapse into a single report sent once the
// file has been quiet for the settle delay, so the last write always wins.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	settle  time.Duration
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := fw.Add(p); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		settle:  settleDelay,
		closeCh: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. Events and Errors are closed once the loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Events)
	defer close(w.Errors)

	timers := make(map[string]*time.Timer)
	settled := make(chan string)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&relevantOps == 0 || !IsWatchedFile(ev.Name) {
				continue
			}
			if t, ok := timers[ev.Name]; ok {
				t.Reset(w.settle)
				continue
			}
			name := ev.Name
			timers[name] = time.AfterFunc(w.settle, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})

		case name := <-settled:
			delete(timers, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.closeCh:
			return
		}
	}
}

// IsWatchedFile reports whether a change to path can affect the animation
// registry.
func IsWatchedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".png":
		return true
	}
	return false
}
