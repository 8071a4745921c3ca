package app

import (
	"context"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/defaults"
)

type DefaultsAPI struct {
	svc *defaults.Service
}

func NewDefaultsAPI(svc *defaults.Service) *DefaultsAPI { return &DefaultsAPI{svc: svc} }

func (a *DefaultsAPI) Global() (map[domain.SectionKind]string, error) {
	ctx := context.Background()
	return a.svc.Global(ctx)
}

// SetGlobal writes one app-wide default; empty text clears the entry.
func (a *DefaultsAPI) SetGlobal(kind, text string) error {
	ctx := context.Background()
	return a.svc.SetGlobal(ctx, domain.SectionKind(kind), text)
}

func (a *DefaultsAPI) ForCharacter(characterID int64) (map[domain.SectionKind]string, error) {
	ctx := context.Background()
	return a.svc.ForCharacter(ctx, characterID)
}

func (a *DefaultsAPI) SetForCharacter(characterID int64, kind, text string) error {
	ctx := context.Background()
	return a.svc.SetForCharacter(ctx, characterID, domain.SectionKind(kind), text)
}
