package library_test

import (
	"context"
	"testing"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/usecase/library"
)

// memRepo is an in-memory ports.PresetRepository for tests.
type memRepo struct {
	presets []domain.Preset
}

func (r *memRepo) List(ctx context.Context) ([]domain.Preset, error) {
	out := make([]domain.Preset, len(r.presets))
	copy(out, r.presets)
	return out, nil
}

func (r *memRepo) Put(ctx context.Context, p domain.Preset) error {
	for i, q := range r.presets {
		if q.ID == p.ID {
			r.presets[i] = p
			return nil
		}
	}
	r.presets = append(r.presets, p)
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	for i, q := range r.presets {
		if q.ID == id {
			r.presets = append(r.presets[:i], r.presets[i+1:]...)
			return nil
		}
	}
	return nil
}

func newService(t *testing.T) (*library.Service, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	svc := library.New(repo)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return svc, repo
}

func TestUpsertRoundTrip(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.Upsert(ctx, domain.SectionOutfit, "Foo", "bar")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if p == nil || p.ID == "" {
		t.Fatalf("expected a preset with an id, got %+v", p)
	}

	got := svc.ListByKind(domain.SectionOutfit)
	if len(got) != 1 || got[0].Name != "Foo" || got[0].Text != "bar" {
		t.Fatalf("unexpected library state: %+v", got)
	}
}

func TestUpsertCaseInsensitiveNameReplaces(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, _ := svc.Upsert(ctx, domain.SectionOutfit, "Foo", "bar")
	second, err := svc.Upsert(ctx, domain.SectionOutfit, "foo", "baz")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got := svc.ListByKind(domain.SectionOutfit)
	if len(got) != 1 {
		t.Fatalf("expected one preset after case-insensitive overwrite, got %d", len(got))
	}
	if got[0].Text != "baz" {
		t.Fatalf("expected text %q, got %q", "baz", got[0].Text)
	}
	if got[0].Name != "Foo" {
		t.Fatalf("original display name should survive the overwrite, got %q", got[0].Name)
	}
	if second.ID != first.ID {
		t.Fatalf("overwrite must keep the id: %q vs %q", second.ID, first.ID)
	}
}

func TestUpsertEmptyTextIsNoOp(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	p, err := svc.Upsert(ctx, domain.SectionPose, "Blank", "   \t ")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if p != nil {
		t.Fatalf("whitespace-only text should be a no-op, got %+v", p)
	}
	if len(repo.presets) != 0 {
		t.Fatalf("no-op must not touch the repository, got %d rows", len(repo.presets))
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, _ := svc.Upsert(ctx, domain.SectionStyle, "Painterly", "oil painting, impasto")
	if err := svc.Remove(ctx, p.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := svc.Remove(ctx, p.ID); err != nil {
		t.Fatalf("second Remove of same id: %v", err)
	}
	if err := svc.Remove(ctx, "never-existed"); err != nil {
		t.Fatalf("Remove of unknown id: %v", err)
	}
	if got := svc.ListByKind(domain.SectionStyle); len(got) != 0 {
		t.Fatalf("expected empty kind, got %+v", got)
	}
}

func TestListByKindKeepsInsertionOrder(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	names := []string{"Casual", "Armor", "Ballgown"}
	for _, n := range names {
		svc.Upsert(ctx, domain.SectionOutfit, n, n+" text")
	}
	// Updating the first entry must not move it.
	svc.Upsert(ctx, domain.SectionOutfit, "casual", "updated text")

	got := svc.ListByKind(domain.SectionOutfit)
	if len(got) != len(names) {
		t.Fatalf("expected %d presets, got %d", len(names), len(got))
	}
	for i, n := range names {
		if got[i].Name != n {
			t.Fatalf("position %d: expected %q, got %q", i, n, got[i].Name)
		}
	}
}

func TestFindByTextTrims(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	svc.Upsert(ctx, domain.SectionLighting, "Golden hour", "warm backlight, long shadows")

	p, ok := svc.FindByText(domain.SectionLighting, "  warm backlight, long shadows \n")
	if !ok || p.Name != "Golden hour" {
		t.Fatalf("FindByText = %+v, %v", p, ok)
	}
	if _, ok := svc.FindByText(domain.SectionLighting, ""); ok {
		t.Fatal("empty text must never match")
	}
}

func TestLoadSurvivesRestart(t *testing.T) {
	repo := &memRepo{}
	svc := library.New(repo)
	ctx := context.Background()
	svc.Load(ctx)
	svc.Upsert(ctx, domain.SectionNegative, "Clean", "no text, no watermark")

	again := library.New(repo)
	if err := again.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := again.ListByKind(domain.SectionNegative)
	if len(got) != 1 || got[0].Name != "Clean" {
		t.Fatalf("expected reloaded preset, got %+v", got)
	}
}
