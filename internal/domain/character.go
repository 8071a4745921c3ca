package domain

import "time"

// Character owns prompts and character-level section defaults. ThemeOverride
// is empty when the character inherits the app-wide theme.
type Character struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Bio           string    `json:"bio"`
	ThemeOverride string    `json:"theme_override"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
