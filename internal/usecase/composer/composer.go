// Package composer assembles the final prompt document from resolved section
// values. Composition is a pure function of its inputs: identical inputs
// produce byte-identical output, which duplicate detection relies on.
package composer

import (
	"strings"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/resolve"
)

const (
	nameTitle     = "Name"
	bioTitle      = "Biography"
	notesTitle    = "Additional information"
	negativeWords = "negative prompt"
)

// Compose renders the document for one prompt: name block, biography block,
// each catalog section in declared order (absent sections are omitted
// outright), then the prompt's free-form notes. Blocks are joined by exactly
// one blank line with no trailing newline. Missing inputs shrink the output;
// nothing here fails.
func Compose(character *domain.Character, prompt *domain.Prompt, characterDefaults, globalDefaults map[domain.SectionKind]string, sections []domain.Section) string {
	var blocks []string

	if character != nil {
		if name := strings.TrimSpace(character.Name); name != "" {
			blocks = append(blocks, nameTitle+":\n"+name)
		}
		if bio := strings.TrimSpace(character.Bio); bio != "" {
			blocks = append(blocks, bioTitle+":\n"+bio)
		}
	}

	for _, sec := range sections {
		value, ok := resolve.Section(prompt.SectionText(sec.Kind), characterDefaults[sec.Kind], globalDefaults[sec.Kind])
		if !ok {
			continue
		}
		if sec.Negative {
			blocks = append(blocks, negativeLine(value))
			continue
		}
		blocks = append(blocks, sec.Title+":\n"+value)
	}

	if prompt != nil {
		if notes := strings.TrimSpace(prompt.Notes); notes != "" {
			blocks = append(blocks, notesTitle+":\n"+notes)
		}
	}

	return strings.Join(blocks, "\n\n")
}

// negativeLine renders the negative section as a single line. Text that
// already leads with "negative prompt" (any case) passes through untouched.
func negativeLine(text string) string {
	if len(text) >= len(negativeWords) && strings.EqualFold(text[:len(negativeWords)], negativeWords) {
		return text
	}
	return "Negative prompt: " + text
}
