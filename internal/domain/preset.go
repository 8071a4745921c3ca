package domain

// Preset is a named reusable snippet scoped to one section kind. Names are
// unique per kind, compared case-insensitively.
type Preset struct {
	ID   string      `json:"id"`
	Kind SectionKind `json:"kind"`
	Name string      `json:"name"`
	Text string      `json:"text"`
}
