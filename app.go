package main

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/adapters/catalog"
)

// App is the Wails application shell. It owns the runtime context so
// background pieces can emit frontend events.
type App struct {
	ctx     context.Context
	watcher *catalog.Watcher
}

func NewApp() *App { return &App{} }

// startup saves the runtime context and wires the catalog watcher's events
// through to the frontend.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if a.watcher != nil {
		a.watcher.SetEmitter(wailsEmitter{ctx: a.ctx})
	}
}

func (a *App) shutdown(ctx context.Context) {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}

// SetCatalogWatcher lets main() hand over the watcher before the runtime
// context exists.
func (a *App) SetCatalogWatcher(w *catalog.Watcher) { a.watcher = w }

type wailsEmitter struct{ ctx context.Context }

func (w wailsEmitter) Emit(name string, payload any) {
	runtime.EventsEmit(w.ctx, name, payload)
}
