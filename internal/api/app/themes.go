package app

import (
	"context"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/themes"
)

type ThemeAPI struct {
	svc *themes.Service
}

func NewThemeAPI(svc *themes.Service) *ThemeAPI { return &ThemeAPI{svc: svc} }

func (a *ThemeAPI) List() []domain.Theme { return a.svc.Themes() }

func (a *ThemeAPI) GlobalID() string {
	ctx := context.Background()
	return a.svc.GlobalID(ctx)
}

func (a *ThemeAPI) SetGlobalID(id string) error {
	ctx := context.Background()
	return a.svc.SetGlobalID(ctx, id)
}

// SetOverride sets or, with an empty id, clears a character's theme override.
func (a *ThemeAPI) SetOverride(characterID int64, id string) error {
	ctx := context.Background()
	return a.svc.SetOverride(ctx, characterID, id)
}

func (a *ThemeAPI) Choice(characterID int64) (domain.ThemeChoice, error) {
	ctx := context.Background()
	return a.svc.Choice(ctx, characterID)
}

// Effective resolves and materializes the theme for a character screen;
// characterID 0 means the app-level screens.
func (a *ThemeAPI) Effective(characterID int64) (domain.Theme, error) {
	ctx := context.Background()
	return a.svc.Effective(ctx, characterID)
}
