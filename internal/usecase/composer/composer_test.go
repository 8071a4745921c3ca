package composer_test

import (
	"strings"
	"testing"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/composer"
)

var testSections = []domain.Section{
	{Kind: domain.SectionOutfit, Title: "Outfit"},
	{Kind: domain.SectionLighting, Title: "Lighting"},
	{Kind: domain.SectionNegative, Title: "Negative", Negative: true},
}

func TestComposeOrdersAndJoinsBlocks(t *testing.T) {
	ch := &domain.Character{Name: "Mira", Bio: "A wandering cartographer."}
	p := &domain.Prompt{
		Sections: map[domain.SectionKind]domain.PromptSection{
			domain.SectionOutfit: {Text: "travel cloak"},
		},
		Notes: "waist-up portrait",
	}
	global := map[domain.SectionKind]string{domain.SectionLighting: "soft dusk light"}

	got := composer.Compose(ch, p, nil, global, testSections)
	want := strings.Join([]string{
		"Name:\nMira",
		"Biography:\nA wandering cartographer.",
		"Outfit:\ntravel cloak",
		"Lighting:\nsoft dusk light",
		"Additional information:\nwaist-up portrait",
	}, "\n\n")
	if got != want {
		t.Fatalf("Compose mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatal("output must not end with a newline")
	}
}

func TestComposeOmitsAbsentSections(t *testing.T) {
	ch := &domain.Character{Name: "Mira"}
	got := composer.Compose(ch, &domain.Prompt{}, nil, nil, testSections)
	if got != "Name:\nMira" {
		t.Fatalf("expected only the name block, got %q", got)
	}
	if strings.Contains(got, "Outfit") || strings.Contains(got, "Lighting") {
		t.Fatal("absent sections must not emit headings or placeholders")
	}
}

func TestComposeEverythingAbsentIsEmpty(t *testing.T) {
	got := composer.Compose(&domain.Character{}, &domain.Prompt{}, nil, nil, testSections)
	if got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := composer.Compose(nil, nil, nil, nil, testSections); got != "" {
		t.Fatalf("nil inputs must compose to empty output, got %q", got)
	}
}

func TestComposeNegativePrefix(t *testing.T) {
	p := &domain.Prompt{Sections: map[domain.SectionKind]domain.PromptSection{
		domain.SectionNegative: {Text: "no text, no watermark"},
	}}
	got := composer.Compose(nil, p, nil, nil, testSections)
	if got != "Negative prompt: no text, no watermark" {
		t.Fatalf("expected prefixed single line, got %q", got)
	}

	p.Sections[domain.SectionNegative] = domain.PromptSection{Text: "Negative prompt: clean"}
	got = composer.Compose(nil, p, nil, nil, testSections)
	if got != "Negative prompt: clean" {
		t.Fatalf("already-prefixed text must pass through, got %q", got)
	}

	p.Sections[domain.SectionNegative] = domain.PromptSection{Text: "NEGATIVE PROMPT: blurry"}
	got = composer.Compose(nil, p, nil, nil, testSections)
	if got != "NEGATIVE PROMPT: blurry" {
		t.Fatalf("prefix check must be case-insensitive, got %q", got)
	}
}

func TestComposeTierOverrides(t *testing.T) {
	// Global default applies while the slot is blank, then a character
	// default shadows it without any edit to the prompt itself.
	p := &domain.Prompt{Sections: map[domain.SectionKind]domain.PromptSection{
		domain.SectionOutfit: {Text: ""},
	}}
	global := map[domain.SectionKind]string{domain.SectionOutfit: "casual"}

	got := composer.Compose(nil, p, nil, global, testSections)
	if got != "Outfit:\ncasual" {
		t.Fatalf("expected the global default, got %q", got)
	}

	charDefaults := map[domain.SectionKind]string{domain.SectionOutfit: "armor"}
	got = composer.Compose(nil, p, charDefaults, global, testSections)
	if got != "Outfit:\narmor" {
		t.Fatalf("expected the character default to win, got %q", got)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	ch := &domain.Character{Name: "Mira", Bio: "Cartographer."}
	p := &domain.Prompt{
		Sections: map[domain.SectionKind]domain.PromptSection{
			domain.SectionOutfit:   {Text: "travel cloak"},
			domain.SectionNegative: {Text: "blurry"},
		},
		Notes: "portrait",
	}
	global := map[domain.SectionKind]string{domain.SectionLighting: "dusk"}

	first := composer.Compose(ch, p, nil, global, testSections)
	second := composer.Compose(ch, p, nil, global, testSections)
	if first != second {
		t.Fatalf("composition must be deterministic:\n%q\nvs\n%q", first, second)
	}
}
