package file

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/doclens/doclens-cli/internal/logger"
)

// Watcher reloads a ConfigStore when its backing file changes on disk.
// The search surfaces read category suggestions and backend settings from
// config, so edits made outside the app are picked up without a restart.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	onReload func()
	done     chan struct{}
}

// NewWatcher starts watching the store's config file. onReload is invoked
// after each successful reload and may be nil.
func NewWatcher(store *ConfigStore, onReload func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory rather than the file: editors commonly replace
	// the file via rename, which drops a file-level watch.
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		store:    store,
		watcher:  fsw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
