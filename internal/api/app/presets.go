package app

import (
	"context"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/library"
)

type PresetAPI struct {
	lib *library.Service
}

func NewPresetAPI(lib *library.Service) *PresetAPI { return &PresetAPI{lib: lib} }

func (a *PresetAPI) ListByKind(kind string) []domain.Preset {
	return a.lib.ListByKind(domain.SectionKind(kind))
}

// Save creates or overwrites a preset. A whitespace-only text returns nil
// without error; the frontend disables the save action in that state.
func (a *PresetAPI) Save(kind, name, text string) (*domain.Preset, error) {
	ctx := context.Background()
	return a.lib.Upsert(ctx, domain.SectionKind(kind), name, text)
}

func (a *PresetAPI) Remove(id string) error {
	ctx := context.Background()
	return a.lib.Remove(ctx, id)
}
