package app

import (
	"context"
	"os"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/ports"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/composer"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/defaults"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/resolve"
)

type ComposeAPI struct {
	characters ports.CharacterRepository
	prompts    ports.PromptRepository
	defaults   *defaults.Service
	sections   ports.SectionCatalog
}

func NewComposeAPI(characters ports.CharacterRepository, prompts ports.PromptRepository, defs *defaults.Service, sections ports.SectionCatalog) *ComposeAPI {
	return &ComposeAPI{characters: characters, prompts: prompts, defaults: defs, sections: sections}
}

// Compose renders the copy-ready document for one prompt.
func (a *ComposeAPI) Compose(promptID int64) (string, error) {
	ctx := context.Background()
	p, err := a.prompts.Get(ctx, promptID)
	if err != nil {
		return "", err
	}
	c, err := a.characters.Get(ctx, p.CharacterID)
	if err != nil {
		return "", err
	}
	charDefaults, err := a.defaults.ForCharacter(ctx, p.CharacterID)
	if err != nil {
		return "", err
	}
	global, err := a.defaults.Global(ctx)
	if err != nil {
		return "", err
	}
	return composer.Compose(c, p, charDefaults, global, a.sections.Sections()), nil
}

// EffectiveDefault previews what a blank slot of this character will resolve
// to: the character default, else the global default, else "".
func (a *ComposeAPI) EffectiveDefault(characterID int64, kind string) (string, error) {
	ctx := context.Background()
	charDefaults, err := a.defaults.ForCharacter(ctx, characterID)
	if err != nil {
		return "", err
	}
	global, err := a.defaults.Global(ctx)
	if err != nil {
		return "", err
	}
	k := domain.SectionKind(kind)
	value, _ := resolve.First(charDefaults[k], global[k])
	return value, nil
}

// Export writes the composed document to a text file picked by the user.
func (a *ComposeAPI) Export(promptID int64, path string) error {
	doc, err := a.Compose(promptID)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc+"\n"), 0o644)
}

// Duplicates returns the ids of the character's other prompts whose composed
// output is byte-identical to this one. Composition is deterministic, so
// plain string comparison is exact.
func (a *ComposeAPI) Duplicates(promptID int64) ([]int64, error) {
	ctx := context.Background()
	p, err := a.prompts.Get(ctx, promptID)
	if err != nil {
		return nil, err
	}
	self, err := a.Compose(promptID)
	if err != nil {
		return nil, err
	}
	siblings, err := a.prompts.ListByCharacter(ctx, p.CharacterID)
	if err != nil {
		return nil, err
	}
	var dups []int64
	for _, s := range siblings {
		if s.ID == promptID {
			continue
		}
		other, err := a.Compose(s.ID)
		if err != nil {
			return nil, err
		}
		if other == self {
			dups = append(dups, s.ID)
		}
	}
	return dups, nil
}
