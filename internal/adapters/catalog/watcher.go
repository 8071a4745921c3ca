package catalog

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// EventEmitter pushes a frontend event when the catalog changes on disk.
type EventEmitter interface {
	Emit(name string, payload any)
}

// Watcher hot-reloads a user section catalog file. Editors typically replace
// files on save, so it watches the parent directory and filters by name.
type Watcher struct {
	sections *Sections
	path     string
	fw       *fsnotify.Watcher
	em       EventEmitter
	done     chan struct{}
}

func NewWatcher(sections *Sections, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{sections: sections, path: path, fw: fw, done: make(chan struct{})}, nil
}

func (w *Watcher) SetEmitter(em EventEmitter) { w.em = em }

// Start consumes filesystem events until Close. Reload failures keep the
// previous catalog and are only logged; a half-written file must never take
// the section list down.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case ev, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if err := w.sections.LoadOverrideFile(w.path); err != nil {
					slog.Error("reload section catalog", "path", w.path, "err", err)
					continue
				}
				slog.Info("section catalog reloaded", "path", w.path)
				if w.em != nil {
					w.em.Emit("catalog.reloaded", w.sections.Sections())
				}
			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				slog.Error("catalog watcher", "err", err)
			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
