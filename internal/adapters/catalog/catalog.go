// Package catalog supplies the section list and the theme set as data. Both
// ship embedded in the binary; the section list can additionally be
// overridden from a user file so section sets stay configuration, not code.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

//go:embed sections_full.yaml
var sectionsFullYAML []byte

//go:embed sections_compact.yaml
var sectionsCompactYAML []byte

//go:embed themes.yaml
var themesYAML []byte

// Variant selects one of the built-in section sets. The compact set omits
// the physical-description section.
type Variant string

const (
	VariantFull    Variant = "full"
	VariantCompact Variant = "compact"
)

type sectionsFile struct {
	Sections []domain.Section `yaml:"sections"`
}

type themesFile struct {
	Themes []domain.Theme `yaml:"themes"`
}

// Sections implements ports.SectionCatalog. It is safe for concurrent reads
// while the watcher goroutine swaps in an override.
type Sections struct {
	mu       sync.RWMutex
	variant  Variant
	sections []domain.Section
}

func NewSections(variant Variant) (*Sections, error) {
	s := &Sections{}
	if err := s.SetVariant(variant); err != nil {
		return nil, err
	}
	return s, nil
}

// SetVariant swaps in one of the built-in section sets, discarding any
// loaded override.
func (s *Sections) SetVariant(v Variant) error {
	var raw []byte
	switch v {
	case VariantFull, "":
		v, raw = VariantFull, sectionsFullYAML
	case VariantCompact:
		raw = sectionsCompactYAML
	default:
		return fmt.Errorf("unknown section variant %q", v)
	}
	parsed, err := parseSections(raw)
	if err != nil {
		return fmt.Errorf("built-in catalog %q: %w", v, err)
	}
	s.mu.Lock()
	s.variant, s.sections = v, parsed
	s.mu.Unlock()
	return nil
}

func (s *Sections) Variant() Variant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.variant
}

// LoadOverrideFile replaces the section list with the contents of a user
// catalog file. The built-in variant is untouched and comes back via
// SetVariant.
func (s *Sections) LoadOverrideFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog override: %w", err)
	}
	parsed, err := parseSections(raw)
	if err != nil {
		return fmt.Errorf("catalog override %s: %w", path, err)
	}
	s.mu.Lock()
	s.sections = parsed
	s.mu.Unlock()
	return nil
}

func (s *Sections) Sections() []domain.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

func (s *Sections) Section(kind domain.SectionKind) (domain.Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.sections {
		if sec.Kind == kind {
			return sec, true
		}
	}
	return domain.Section{}, false
}

func parseSections(raw []byte) ([]domain.Section, error) {
	var f sectionsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if len(f.Sections) == 0 {
		return nil, fmt.Errorf("no sections defined")
	}
	seen := make(map[domain.SectionKind]bool, len(f.Sections))
	for _, sec := range f.Sections {
		if sec.Kind == "" || sec.Title == "" {
			return nil, fmt.Errorf("section %q needs both kind and title", sec.Kind)
		}
		if seen[sec.Kind] {
			return nil, fmt.Errorf("duplicate section kind %q", sec.Kind)
		}
		seen[sec.Kind] = true
	}
	return f.Sections, nil
}

// Themes implements ports.ThemeCatalog over the embedded theme set.
type Themes struct {
	themes []domain.Theme
	byID   map[string]domain.Theme
}

func NewThemes() (*Themes, error) {
	var f themesFile
	if err := yaml.Unmarshal(themesYAML, &f); err != nil {
		return nil, fmt.Errorf("built-in themes: %w", err)
	}
	t := &Themes{themes: f.Themes, byID: make(map[string]domain.Theme, len(f.Themes))}
	for _, th := range f.Themes {
		t.byID[th.ID] = th
	}
	if _, ok := t.byID[domain.FallbackThemeID]; !ok {
		return nil, fmt.Errorf("built-in themes missing fallback %q", domain.FallbackThemeID)
	}
	return t, nil
}

func (t *Themes) Themes() []domain.Theme {
	out := make([]domain.Theme, len(t.themes))
	copy(out, t.themes)
	return out
}

func (t *Themes) Get(id string) (domain.Theme, bool) {
	th, ok := t.byID[id]
	return th, ok
}

func (t *Themes) Exists(id string) bool {
	_, ok := t.byID[id]
	return ok
}
