package app

import (
	"context"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/adapters/catalog"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/ports"
)

// VariantSettingsKey stores which built-in section set the app uses.
const VariantSettingsKey = "catalog.variant"

type CatalogAPI struct {
	sections *catalog.Sections
	settings ports.SettingsRepository
}

func NewCatalogAPI(sections *catalog.Sections, settings ports.SettingsRepository) *CatalogAPI {
	return &CatalogAPI{sections: sections, settings: settings}
}

func (a *CatalogAPI) Sections() []domain.Section { return a.sections.Sections() }

func (a *CatalogAPI) Variant() string { return string(a.sections.Variant()) }

// SetVariant switches the built-in section set and persists the choice for
// the next launch.
func (a *CatalogAPI) SetVariant(v string) error {
	ctx := context.Background()
	if err := a.sections.SetVariant(catalog.Variant(v)); err != nil {
		return err
	}
	return a.settings.Set(ctx, VariantSettingsKey, v)
}
