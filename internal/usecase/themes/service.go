// Package themes applies tiered override resolution to visual theme
// selection: character override -> app-wide choice -> built-in fallback.
package themes

import (
	"context"
	"fmt"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/ports"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/resolve"
)

// SettingsKey is where the app-wide theme id lives in the settings table.
const SettingsKey = "theme.global"

type Service struct {
	catalog    ports.ThemeCatalog
	settings   ports.SettingsRepository
	characters ports.CharacterRepository
}

func New(catalog ports.ThemeCatalog, settings ports.SettingsRepository, characters ports.CharacterRepository) *Service {
	return &Service{catalog: catalog, settings: settings, characters: characters}
}

func (s *Service) Themes() []domain.Theme { return s.catalog.Themes() }

// GlobalID returns the stored app-wide theme id, or "" when none has been
// chosen yet. Resolution treats "" and unknown ids the same way, so a missing
// settings row is not an error.
func (s *Service) GlobalID(ctx context.Context) string {
	id, err := s.settings.Get(ctx, SettingsKey)
	if err != nil {
		return ""
	}
	return id
}

// SetGlobalID stores the app-wide theme id. Unknown ids are rejected so the
// stored choice always references a real theme.
func (s *Service) SetGlobalID(ctx context.Context, id string) error {
	if !s.catalog.Exists(id) {
		return fmt.Errorf("unknown theme %q", id)
	}
	if err := s.settings.Set(ctx, SettingsKey, id); err != nil {
		return fmt.Errorf("store theme choice: %w", err)
	}
	return nil
}

// SetOverride stores a character's theme override. An empty id clears the
// override, restoring inheritance of the app-wide choice.
func (s *Service) SetOverride(ctx context.Context, characterID int64, id string) error {
	if id != "" && !s.catalog.Exists(id) {
		return fmt.Errorf("unknown theme %q", id)
	}
	c, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return fmt.Errorf("load character %d: %w", characterID, err)
	}
	c.ThemeOverride = id
	if err := s.characters.Update(ctx, c); err != nil {
		return fmt.Errorf("store theme override: %w", err)
	}
	return nil
}

// Choice returns the raw selection state for a character: the app-wide id
// plus the character's override, unresolved.
func (s *Service) Choice(ctx context.Context, characterID int64) (domain.ThemeChoice, error) {
	c, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return domain.ThemeChoice{}, fmt.Errorf("load character %d: %w", characterID, err)
	}
	return domain.ThemeChoice{GlobalID: s.GlobalID(ctx), OverrideID: c.ThemeOverride}, nil
}

// Effective materializes the winning theme for a character. characterID 0
// means "no character context" and resolves override-free. Resolution is
// re-run from both inputs on every call; nothing is cached.
func (s *Service) Effective(ctx context.Context, characterID int64) (domain.Theme, error) {
	override := ""
	if characterID != 0 {
		c, err := s.characters.Get(ctx, characterID)
		if err != nil {
			return domain.Theme{}, fmt.Errorf("load character %d: %w", characterID, err)
		}
		override = c.ThemeOverride
	}
	id := resolve.Theme(override, s.GlobalID(ctx), s.catalog.Exists)
	t, ok := s.catalog.Get(id)
	if !ok {
		// The fallback id ships in the embedded catalog; a miss here means a
		// broken override catalog, so fall back to the built-in id directly.
		t, _ = s.catalog.Get(domain.FallbackThemeID)
	}
	return t, nil
}
