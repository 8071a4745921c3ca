// Package library holds the preset library: named reusable snippets grouped
// by section kind, in insertion order. The in-memory state is authoritative
// at runtime and written through to the repository on every mutation.
package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/ports"
)

type Service struct {
	repo   ports.PresetRepository
	byKind map[domain.SectionKind][]domain.Preset
}

func New(repo ports.PresetRepository) *Service {
	return &Service{repo: repo, byKind: make(map[domain.SectionKind][]domain.Preset)}
}

// Load replaces the in-memory library with the repository contents.
func (s *Service) Load(ctx context.Context) error {
	presets, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}
	s.byKind = make(map[domain.SectionKind][]domain.Preset)
	for _, p := range presets {
		s.byKind[p.Kind] = append(s.byKind[p.Kind], p)
	}
	return nil
}

// ListByKind returns the presets of one kind in insertion order. The returned
// slice is a copy; callers may not mutate library state through it.
func (s *Service) ListByKind(kind domain.SectionKind) []domain.Preset {
	src := s.byKind[kind]
	out := make([]domain.Preset, len(src))
	copy(out, src)
	return out
}

// Upsert saves a preset. Whitespace-only text is a silent no-op (returns nil,
// nil) so a stray save can never create a junk preset. A name collision
// within the kind, compared case-insensitively, updates that preset's text in
// place; otherwise a new preset is appended with a fresh id.
func (s *Service) Upsert(ctx context.Context, kind domain.SectionKind, name, text string) (*domain.Preset, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	if text == "" || name == "" {
		return nil, nil
	}
	if i, ok := s.indexByName(kind, name); ok {
		p := s.byKind[kind][i]
		p.Text = text
		if err := s.repo.Put(ctx, p); err != nil {
			return nil, fmt.Errorf("update preset %q: %w", p.Name, err)
		}
		s.byKind[kind][i] = p
		return &p, nil
	}
	p := domain.Preset{ID: uuid.NewString(), Kind: kind, Name: name, Text: text}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("create preset %q: %w", name, err)
	}
	s.byKind[kind] = append(s.byKind[kind], p)
	return &p, nil
}

// Remove deletes a preset by id. Unknown ids are ignored.
func (s *Service) Remove(ctx context.Context, id string) error {
	for kind, presets := range s.byKind {
		for i, p := range presets {
			if p.ID != id {
				continue
			}
			if err := s.repo.Delete(ctx, id); err != nil {
				return fmt.Errorf("delete preset %q: %w", p.Name, err)
			}
			s.byKind[kind] = append(presets[:i], presets[i+1:]...)
			return nil
		}
	}
	return nil
}

// Find looks up a preset by id across all kinds.
func (s *Service) Find(id string) (domain.Preset, bool) {
	for _, presets := range s.byKind {
		for _, p := range presets {
			if p.ID == id {
				return p, true
			}
		}
	}
	return domain.Preset{}, false
}

// FindByName looks up a preset by case-insensitive name within a kind.
func (s *Service) FindByName(kind domain.SectionKind, name string) (domain.Preset, bool) {
	if i, ok := s.indexByName(kind, name); ok {
		return s.byKind[kind][i], true
	}
	return domain.Preset{}, false
}

// FindByText returns the first preset of the kind whose trimmed text equals
// the given trimmed text. This is the binding tracker's scan path.
func (s *Service) FindByText(kind domain.SectionKind, text string) (domain.Preset, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Preset{}, false
	}
	for _, p := range s.byKind[kind] {
		if strings.TrimSpace(p.Text) == text {
			return p, true
		}
	}
	return domain.Preset{}, false
}

func (s *Service) indexByName(kind domain.SectionKind, name string) (int, bool) {
	for i, p := range s.byKind[kind] {
		if strings.EqualFold(p.Name, name) {
			return i, true
		}
	}
	return 0, false
}
