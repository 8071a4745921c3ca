package domain

// SectionKind identifies one composable prompt category. The set of kinds in
// play comes from the section catalog, not from a fixed list, so adding a
// section is a catalog change rather than a code change.
type SectionKind string

// Kinds referenced by the built-in catalogs.
const (
	SectionPhysical    SectionKind = "physical"
	SectionOutfit      SectionKind = "outfit"
	SectionPose        SectionKind = "pose"
	SectionEnvironment SectionKind = "environment"
	SectionLighting    SectionKind = "lighting"
	SectionStyle       SectionKind = "style"
	SectionTechnical   SectionKind = "technical"
	SectionNegative    SectionKind = "negative"
)

// Section is one catalog entry: a kind plus its presentation metadata.
// Negative marks the section that renders as a "Negative prompt:" line.
type Section struct {
	Kind     SectionKind `json:"kind" yaml:"kind"`
	Title    string      `json:"title" yaml:"title"`
	Negative bool        `json:"negative,omitempty" yaml:"negative,omitempty"`
}
