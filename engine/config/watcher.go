package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/pointillist/engine/core"
)

// Watcher reloads the render section of a config file when it changes on
// disk and fires EVENT_CODE_SETTINGS_CHANGED with the new Render value.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher

	mutex    sync.Mutex
	current  Render
	isClosed bool
	done     chan struct{}
	stopped  chan struct{}
}

func NewWatcher(path string, initial Render) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatch.Close()
		return nil, err
	}
	// watch the directory so editors that replace the file are seen
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		current:  initial,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Current returns the last successfully loaded render settings.
func (w *Watcher) Current() Render {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.current
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("config watcher already closed")
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e := <-w.fsnotify.Events:
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err := <-w.fsnotify.Errors:
			if err != nil {
				core.LogError("config watcher: %s", err)
			}

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

func (w *Watcher) reload() {
	// a truncated file is usually a write still in progress
	if fi, err := os.Stat(w.path); err != nil || fi.Size() == 0 {
		return
	}
	cfg, err := Load(w.path)
	if err != nil {
		// keep the previous settings until the file is valid again
		core.LogWarn("ignoring config change: %s", err)
		return
	}

	w.mutex.Lock()
	changed := cfg.Render != w.current
	w.current = cfg.Render
	w.mutex.Unlock()

	if !changed {
		return
	}
	core.LogInfo("render settings reloaded from %s", w.path)
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SETTINGS_CHANGED,
		Data: cfg.Render,
	})
}
