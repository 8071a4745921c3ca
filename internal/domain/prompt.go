package domain

import "time"

// PromptSection is one editable slot of a prompt: its current text plus, when
// the text exactly matches a preset, the advisory preset name the UI shows as
// "Using: <name>". The name is derived state and is recomputed on every text
// change; it must never be treated as a foreign key.
type PromptSection struct {
	Text       string `json:"text"`
	PresetName string `json:"preset_name,omitempty"`
}

// Prompt is a single composable document belonging to a character. A section
// kind missing from Sections means the slot is blank and defaults apply.
type Prompt struct {
	ID          int64                         `json:"id"`
	CharacterID int64                         `json:"character_id"`
	Title       string                        `json:"title"`
	Sections    map[SectionKind]PromptSection `json:"sections"`
	Notes       string                        `json:"notes"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   time.Time                     `json:"updated_at"`
}

// SectionText returns the current text for kind, or "" when the slot is blank.
func (p *Prompt) SectionText(kind SectionKind) string {
	if p == nil {
		return ""
	}
	return p.Sections[kind].Text
}
