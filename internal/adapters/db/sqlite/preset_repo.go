package sqlite

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

type PresetRepo struct{ *Repo }

func NewPresetRepo(db *sql.DB) *PresetRepo { return &PresetRepo{NewRepo(db)} }

// List returns every preset ordered by insertion position, so per-kind
// grouping in the library preserves save order.
func (r *PresetRepo) List(ctx context.Context) ([]domain.Preset, error) {
	q := r.SQ.Select("id", "kind", "name", "text").From("presets").OrderBy("position")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Preset
	for rows.Next() {
		var p domain.Preset
		if err := rows.Scan(&p.ID, &p.Kind, &p.Name, &p.Text); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Put inserts a preset at the end of the order, or updates name and text in
// place when the id already exists (position is untouched).
func (r *PresetRepo) Put(ctx context.Context, p domain.Preset) error {
	q := r.SQ.Insert("presets").Columns("id", "kind", "name", "text", "position").
		Values(p.ID, p.Kind, p.Name, p.Text, sq.Expr("COALESCE((SELECT MAX(position) FROM presets), 0) + 1")).
		Suffix("ON CONFLICT(id) DO UPDATE SET name = excluded.name, text = excluded.text")
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *PresetRepo) Delete(ctx context.Context, id string) error {
	q := r.SQ.Delete("presets").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
