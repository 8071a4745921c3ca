// Package binding derives the advisory "Using: <preset>" label for a prompt
// slot. A slot is Bound when its trimmed text exactly equals some preset's
// trimmed text; the label is recomputed on every text change and never
// trusted across changes.
package binding

import (
	"strings"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

// Binding is a tagged value: either Unbound or Bound(name).
type Binding struct {
	Bound bool
	Name  string
}

// Unbound is the zero Binding.
var Unbound = Binding{}

func Bound(name string) Binding { return Binding{Bound: true, Name: name} }

// Library is the lookup surface the tracker needs from the preset library.
type Library interface {
	FindByName(kind domain.SectionKind, name string) (domain.Preset, bool)
	FindByText(kind domain.SectionKind, text string) (domain.Preset, bool)
}

type Tracker struct {
	lib Library
}

func New(lib Library) *Tracker { return &Tracker{lib: lib} }

// Evaluate returns the binding for a slot given its current text and the
// binding recorded before the change. The confirmation of the current bound
// name runs before any scan so that renaming a preset without changing its
// text does not flip a matching slot to a different preset.
func (t *Tracker) Evaluate(kind domain.SectionKind, text string, current Binding) Binding {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Unbound
	}
	if current.Bound {
		if p, ok := t.lib.FindByName(kind, current.Name); ok && strings.TrimSpace(p.Text) == trimmed {
			return current
		}
	}
	if p, ok := t.lib.FindByText(kind, trimmed); ok {
		return Bound(p.Name)
	}
	return Unbound
}
