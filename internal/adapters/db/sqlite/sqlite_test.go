package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/adapters/db/sqlite"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "studio.db"))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPresetRepoRoundTrip(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewPresetRepo(db)
	ctx := context.Background()

	presets := []domain.Preset{
		{ID: "a", Kind: domain.SectionOutfit, Name: "Casual", Text: "jeans, hoodie"},
		{ID: "b", Kind: domain.SectionOutfit, Name: "Armor", Text: "plate armor"},
		{ID: "c", Kind: domain.SectionLighting, Name: "Dusk", Text: "soft dusk light"},
	}
	for _, p := range presets {
		if err := repo.Put(ctx, p); err != nil {
			t.Fatalf("Put(%s): %v", p.ID, err)
		}
	}

	// Text update must not move the row in the order.
	if err := repo.Put(ctx, domain.Preset{ID: "a", Kind: domain.SectionOutfit, Name: "Casual", Text: "jeans, hoodie, scarf"}); err != nil {
		t.Fatalf("Put update: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(got))
	}
	wantOrder := []string{"a", "b", "c"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: expected id %q, got %q", i, id, got[i].ID)
		}
	}
	if got[0].Text != "jeans, hoodie, scarf" {
		t.Fatalf("update lost: %+v", got[0])
	}

	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "b"); err != nil {
		t.Fatalf("repeat Delete: %v", err)
	}
	got, _ = repo.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 presets after delete, got %d", len(got))
	}
}

func TestDefaultsRepoNeverStoresWhatWasDeleted(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewDefaultsRepo(db)
	ctx := context.Background()

	if err := repo.SetGlobal(ctx, domain.SectionOutfit, "casual"); err != nil {
		t.Fatalf("SetGlobal: %v", err)
	}
	if err := repo.SetGlobal(ctx, domain.SectionOutfit, "formal"); err != nil {
		t.Fatalf("SetGlobal overwrite: %v", err)
	}
	m, err := repo.Global(ctx)
	if err != nil {
		t.Fatalf("Global: %v", err)
	}
	if len(m) != 1 || m[domain.SectionOutfit] != "formal" {
		t.Fatalf("unexpected global defaults: %v", m)
	}

	if err := repo.DeleteGlobal(ctx, domain.SectionOutfit); err != nil {
		t.Fatalf("DeleteGlobal: %v", err)
	}
	m, _ = repo.Global(ctx)
	if _, ok := m[domain.SectionOutfit]; ok {
		t.Fatal("deleted key must not round-trip")
	}
}

func TestCharacterDefaultsAreScoped(t *testing.T) {
	db := openDB(t)
	chars := sqlite.NewCharacterRepo(db)
	repo := sqlite.NewDefaultsRepo(db)
	ctx := context.Background()

	a := &domain.Character{Name: "Mira"}
	b := &domain.Character{Name: "Torv"}
	if err := chars.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := chars.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	repo.SetForCharacter(ctx, a.ID, domain.SectionOutfit, "armor")
	m, err := repo.ForCharacter(ctx, b.ID)
	if err != nil {
		t.Fatalf("ForCharacter: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("defaults leaked across characters: %v", m)
	}
	m, _ = repo.ForCharacter(ctx, a.ID)
	if m[domain.SectionOutfit] != "armor" {
		t.Fatalf("expected armor, got %v", m)
	}
}

func TestPromptSectionsRoundTrip(t *testing.T) {
	db := openDB(t)
	chars := sqlite.NewCharacterRepo(db)
	prompts := sqlite.NewPromptRepo(db)
	ctx := context.Background()

	c := &domain.Character{Name: "Mira", Bio: "Cartographer."}
	if err := chars.Create(ctx, c); err != nil {
		t.Fatalf("Create character: %v", err)
	}

	p := &domain.Prompt{
		CharacterID: c.ID,
		Title:       "Portrait",
		Notes:       "waist-up",
		Sections: map[domain.SectionKind]domain.PromptSection{
			domain.SectionOutfit: {Text: "travel cloak", PresetName: "Traveler"},
		},
	}
	if err := prompts.Create(ctx, p); err != nil {
		t.Fatalf("Create prompt: %v", err)
	}

	got, err := prompts.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Portrait" || got.Notes != "waist-up" {
		t.Fatalf("prompt meta mismatch: %+v", got)
	}
	sec := got.Sections[domain.SectionOutfit]
	if sec.Text != "travel cloak" || sec.PresetName != "Traveler" {
		t.Fatalf("section mismatch: %+v", sec)
	}

	// Clearing a slot removes the row entirely.
	if err := prompts.DeleteSection(ctx, p.ID, domain.SectionOutfit); err != nil {
		t.Fatalf("DeleteSection: %v", err)
	}
	got, _ = prompts.Get(ctx, p.ID)
	if _, ok := got.Sections[domain.SectionOutfit]; ok {
		t.Fatal("cleared slot must not round-trip")
	}
}

func TestSettingsRepo(t *testing.T) {
	db := openDB(t)
	repo := sqlite.NewSettingsRepo(db)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "theme.global"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for unset key, got %v", err)
	}
	if err := repo.Set(ctx, "theme.global", "daylight"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "theme.global", "midnight"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, err := repo.Get(ctx, "theme.global")
	if err != nil || v != "midnight" {
		t.Fatalf("Get = %q, %v", v, err)
	}
}
