package domain

// FallbackThemeID is used when neither the app-wide choice nor a character
// override names a known theme.
const FallbackThemeID = "midnight"

// Theme is a renderable palette bundle, materialized from the theme catalog
// by id once selection is resolved.
type Theme struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Background string `json:"background" yaml:"background"`
	Surface    string `json:"surface" yaml:"surface"`
	Foreground string `json:"foreground" yaml:"foreground"`
	Accent     string `json:"accent" yaml:"accent"`
	Dark       bool   `json:"dark" yaml:"dark"`
}

// ThemeChoice pairs the app-wide theme id with a character's optional
// override. An empty OverrideID means "inherit global".
type ThemeChoice struct {
	GlobalID   string `json:"global_id"`
	OverrideID string `json:"override_id,omitempty"`
}
