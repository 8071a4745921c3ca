// Package defaults manages the two defaults maps that back prompt sections:
// the app-wide map and one map per character. An entry with empty or
// whitespace-only text is absence, never a stored value, so setting a key to
// "" removes it.
package defaults

import (
	"context"
	"fmt"
	"strings"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/ports"
)

type Service struct {
	repo ports.DefaultsRepository
}

func New(repo ports.DefaultsRepository) *Service { return &Service{repo: repo} }

func (s *Service) Global(ctx context.Context) (map[domain.SectionKind]string, error) {
	m, err := s.repo.Global(ctx)
	if err != nil {
		return nil, fmt.Errorf("load global defaults: %w", err)
	}
	return m, nil
}

// SetGlobal writes one app-wide default. Empty text clears the key.
func (s *Service) SetGlobal(ctx context.Context, kind domain.SectionKind, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		if err := s.repo.DeleteGlobal(ctx, kind); err != nil {
			return fmt.Errorf("clear global default %s: %w", kind, err)
		}
		return nil
	}
	if err := s.repo.SetGlobal(ctx, kind, text); err != nil {
		return fmt.Errorf("set global default %s: %w", kind, err)
	}
	return nil
}

func (s *Service) ForCharacter(ctx context.Context, characterID int64) (map[domain.SectionKind]string, error) {
	m, err := s.repo.ForCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("load defaults for character %d: %w", characterID, err)
	}
	return m, nil
}

// SetForCharacter writes one character-level default. Empty text clears the
// key, which makes the character inherit the app-wide value again.
func (s *Service) SetForCharacter(ctx context.Context, characterID int64, kind domain.SectionKind, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		if err := s.repo.DeleteForCharacter(ctx, characterID, kind); err != nil {
			return fmt.Errorf("clear default %s for character %d: %w", kind, characterID, err)
		}
		return nil
	}
	if err := s.repo.SetForCharacter(ctx, characterID, kind, text); err != nil {
		return fmt.Errorf("set default %s for character %d: %w", kind, characterID, err)
	}
	return nil
}
