package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

type PromptRepo struct{ *Repo }

func NewPromptRepo(db *sql.DB) *PromptRepo { return &PromptRepo{NewRepo(db)} }

// Create inserts the prompt row and any pre-filled section slots in one
// transaction.
func (r *PromptRepo) Create(ctx context.Context, p *domain.Prompt) error {
	now := time.Now().UTC()
	err := WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		q := r.SQ.Insert("prompts").Columns("character_id", "title", "notes", "created_at", "updated_at").
			Values(p.CharacterID, p.Title, p.Notes, now.Format(time.RFC3339), now.Format(time.RFC3339))
		sqlStr, args, _ := q.ToSql()
		res, err := tx.ExecContext(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
		id, _ := res.LastInsertId()
		p.ID = id
		for kind, s := range p.Sections {
			q := r.SQ.Insert("prompt_sections").Columns("prompt_id", "kind", "text", "preset_name").
				Values(id, kind, s.Text, s.PresetName)
			sqlStr, args, _ := q.ToSql()
			if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Sections == nil {
		p.Sections = map[domain.SectionKind]domain.PromptSection{}
	}
	return nil
}

func (r *PromptRepo) Get(ctx context.Context, id int64) (*domain.Prompt, error) {
	q := r.SQ.Select("id", "character_id", "title", "notes", "created_at", "updated_at").
		From("prompts").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	p, err := scanPrompt(r.DB.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		return nil, err
	}
	if err := r.loadSections(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PromptRepo) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Prompt, error) {
	q := r.SQ.Select("id", "character_id", "title", "notes", "created_at", "updated_at").
		From("prompts").Where(sq.Eq{"character_id": characterID}).OrderBy("id DESC")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		if err := r.loadSections(ctx, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update persists title and notes. Section slots go through SetSection and
// DeleteSection so the empty-means-absent rule stays in one place.
func (r *PromptRepo) Update(ctx context.Context, p *domain.Prompt) error {
	now := time.Now().UTC()
	q := r.SQ.Update("prompts").Set("title", p.Title).Set("notes", p.Notes).
		Set("updated_at", now.Format(time.RFC3339)).
		Where(sq.Eq{"id": p.ID})
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

func (r *PromptRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("prompts").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *PromptRepo) SetSection(ctx context.Context, promptID int64, kind domain.SectionKind, s domain.PromptSection) error {
	q := r.SQ.Insert("prompt_sections").Columns("prompt_id", "kind", "text", "preset_name").
		Values(promptID, kind, s.Text, s.PresetName).
		Suffix("ON CONFLICT(prompt_id, kind) DO UPDATE SET text = excluded.text, preset_name = excluded.preset_name")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *PromptRepo) DeleteSection(ctx context.Context, promptID int64, kind domain.SectionKind) error {
	q := r.SQ.Delete("prompt_sections").Where(sq.Eq{"prompt_id": promptID, "kind": kind})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *PromptRepo) loadSections(ctx context.Context, p *domain.Prompt) error {
	q := r.SQ.Select("kind", "text", "preset_name").From("prompt_sections").Where(sq.Eq{"prompt_id": p.ID})
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	p.Sections = make(map[domain.SectionKind]domain.PromptSection)
	for rows.Next() {
		var kind domain.SectionKind
		var s domain.PromptSection
		if err := rows.Scan(&kind, &s.Text, &s.PresetName); err != nil {
			return err
		}
		p.Sections[kind] = s
	}
	return rows.Err()
}

func scanPrompt(row rowScanner) (*domain.Prompt, error) {
	var p domain.Prompt
	var created, updated string
	if err := row.Scan(&p.ID, &p.CharacterID, &p.Title, &p.Notes, &created, &updated); err != nil {
		return nil, err
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &p, nil
}
