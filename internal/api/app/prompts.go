package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/ports"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/binding"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/defaults"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/library"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/resolve"
)

type PromptAPI struct {
	prompts  ports.PromptRepository
	lib      *library.Service
	tracker  *binding.Tracker
	defaults *defaults.Service
}

func NewPromptAPI(prompts ports.PromptRepository, lib *library.Service, tracker *binding.Tracker, defs *defaults.Service) *PromptAPI {
	return &PromptAPI{prompts: prompts, lib: lib, tracker: tracker, defaults: defs}
}

func (a *PromptAPI) Create(characterID int64, title string) (*domain.Prompt, error) {
	ctx := context.Background()
	if characterID == 0 {
		return nil, errors.New("character_id is required")
	}
	p := &domain.Prompt{CharacterID: characterID, Title: title}
	if err := a.prompts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *PromptAPI) Get(id int64) (*domain.Prompt, error) {
	ctx := context.Background()
	return a.prompts.Get(ctx, id)
}

func (a *PromptAPI) ListByCharacter(characterID int64) ([]*domain.Prompt, error) {
	ctx := context.Background()
	return a.prompts.ListByCharacter(ctx, characterID)
}

func (a *PromptAPI) UpdateMeta(id int64, title, notes string) (*domain.Prompt, error) {
	ctx := context.Background()
	p, err := a.prompts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Title, p.Notes = title, notes
	if err := a.prompts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *PromptAPI) Delete(id int64) error {
	ctx := context.Background()
	return a.prompts.Delete(ctx, id)
}

// SetSectionText is the edit path: it stores the new text and re-derives the
// preset binding in the same step. Blank text removes the slot so the
// section falls back to defaults.
func (a *PromptAPI) SetSectionText(promptID int64, kind, text string) (domain.PromptSection, error) {
	ctx := context.Background()
	p, err := a.prompts.Get(ctx, promptID)
	if err != nil {
		return domain.PromptSection{}, err
	}
	k := domain.SectionKind(kind)

	if strings.TrimSpace(text) == "" {
		if err := a.prompts.DeleteSection(ctx, promptID, k); err != nil {
			return domain.PromptSection{}, err
		}
		return domain.PromptSection{}, nil
	}

	current := binding.Unbound
	if name := p.Sections[k].PresetName; name != "" {
		current = binding.Bound(name)
	}
	b := a.tracker.Evaluate(k, text, current)

	sec := domain.PromptSection{Text: text, PresetName: b.Name}
	if err := a.prompts.SetSection(ctx, promptID, k, sec); err != nil {
		return domain.PromptSection{}, err
	}
	return sec, nil
}

// ApplyPreset fills a slot with a preset's text, which by construction binds
// the slot to that preset.
func (a *PromptAPI) ApplyPreset(promptID int64, kind, presetID string) (domain.PromptSection, error) {
	ctx := context.Background()
	p, ok := a.lib.Find(presetID)
	if !ok {
		return domain.PromptSection{}, fmt.Errorf("unknown preset %q", presetID)
	}
	k := domain.SectionKind(kind)
	if p.Kind != k {
		return domain.PromptSection{}, fmt.Errorf("preset %q is for section %q", p.Name, p.Kind)
	}
	sec := domain.PromptSection{Text: p.Text, PresetName: p.Name}
	if err := a.prompts.SetSection(ctx, promptID, k, sec); err != nil {
		return domain.PromptSection{}, err
	}
	return sec, nil
}

// FillFromDefaults copies the effective default (character, then global)
// into the slot as explicit text. A slot with no default anywhere stays
// blank; that is not an error.
func (a *PromptAPI) FillFromDefaults(promptID int64, kind string) (domain.PromptSection, error) {
	ctx := context.Background()
	p, err := a.prompts.Get(ctx, promptID)
	if err != nil {
		return domain.PromptSection{}, err
	}
	k := domain.SectionKind(kind)

	charDefaults, err := a.defaults.ForCharacter(ctx, p.CharacterID)
	if err != nil {
		return domain.PromptSection{}, err
	}
	global, err := a.defaults.Global(ctx)
	if err != nil {
		return domain.PromptSection{}, err
	}
	value, ok := resolve.First(charDefaults[k], global[k])
	if !ok {
		return p.Sections[k], nil
	}
	return a.SetSectionText(promptID, string(k), value)
}
