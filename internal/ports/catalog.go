package ports

import "github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"

// SectionCatalog supplies the ordered section list the composer iterates.
type SectionCatalog interface {
	Sections() []domain.Section
	Section(kind domain.SectionKind) (domain.Section, bool)
}

// ThemeCatalog is the known theme set. Exists feeds theme resolution; Get
// materializes a resolved id into a palette.
type ThemeCatalog interface {
	Themes() []domain.Theme
	Get(id string) (domain.Theme, bool)
	Exists(id string) bool
}
