package ports

import (
	"context"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

type CharacterRepository interface {
	Create(ctx context.Context, c *domain.Character) error
	Get(ctx context.Context, id int64) (*domain.Character, error)
	List(ctx context.Context) ([]*domain.Character, error)
	Update(ctx context.Context, c *domain.Character) error
	Delete(ctx context.Context, id int64) error
}

type PromptRepository interface {
	Create(ctx context.Context, p *domain.Prompt) error
	Get(ctx context.Context, id int64) (*domain.Prompt, error)
	ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Prompt, error)
	Update(ctx context.Context, p *domain.Prompt) error
	Delete(ctx context.Context, id int64) error
	// SetSection writes one slot; DeleteSection removes it (blank slots are
	// never stored).
	SetSection(ctx context.Context, promptID int64, kind domain.SectionKind, s domain.PromptSection) error
	DeleteSection(ctx context.Context, promptID int64, kind domain.SectionKind) error
}

// PresetRepository persists the preset library. List returns presets in
// insertion order within each kind.
type PresetRepository interface {
	List(ctx context.Context) ([]domain.Preset, error)
	Put(ctx context.Context, p domain.Preset) error
	Delete(ctx context.Context, id string) error
}

// DefaultsRepository persists the two defaults maps. Empty-text entries are
// never stored; the services above this interface enforce that by calling
// the Delete variants.
type DefaultsRepository interface {
	Global(ctx context.Context) (map[domain.SectionKind]string, error)
	SetGlobal(ctx context.Context, kind domain.SectionKind, text string) error
	DeleteGlobal(ctx context.Context, kind domain.SectionKind) error
	ForCharacter(ctx context.Context, characterID int64) (map[domain.SectionKind]string, error)
	SetForCharacter(ctx context.Context, characterID int64, kind domain.SectionKind, text string) error
	DeleteForCharacter(ctx context.Context, characterID int64, kind domain.SectionKind) error
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
